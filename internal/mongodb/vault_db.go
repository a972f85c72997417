package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// VaultEntryDb is one cached narrative report. One row per subject; the report
// column holds the serialized payload exactly as the generator returned it.
type VaultEntryDb struct {
	SubjectName string    `json:"subjectName" bson:"subjectName"`
	Report      string    `json:"report" bson:"report"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}

func (db *DB) GetVaultEntry(ctx context.Context, subjectName string) (VaultEntryDb, error) {
	coll := db.Collection(VaultCollection)

	var entry VaultEntryDb
	err := coll.FindOne(ctx, bson.M{"subjectName": subjectName}).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return VaultEntryDb{}, ErrRecordNotFound
		}
		return VaultEntryDb{}, err
	}

	return entry, nil
}

// UpsertVaultEntry replaces the cached report for a subject, inserting it if
// none exists yet. Whole-document replacement keyed on subjectName, so
// concurrent writers are last-write-wins.
func (db *DB) UpsertVaultEntry(ctx context.Context, subjectName, report string) error {
	coll := db.Collection(VaultCollection)

	update := bson.M{"$set": bson.M{
		"subjectName": subjectName,
		"report":      report,
		"createdAt":   time.Now(),
	}}
	opts := options.Update().SetUpsert(true)

	_, err := coll.UpdateOne(ctx, bson.M{"subjectName": subjectName}, update, opts)
	return err
}

func (db *DB) DeleteVaultEntry(ctx context.Context, subjectName string) (bool, error) {
	coll := db.Collection(VaultCollection)

	res, err := coll.DeleteOne(ctx, bson.M{"subjectName": subjectName})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
