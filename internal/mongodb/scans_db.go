package mongodb

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ----- Types for the database -----

// ScanDb is one raw review record as stored by the ingestion side. The result
// payload is an open document with no guaranteed keys, so it stays a bson.M
// here and is decoded into a canonical shape by the scans service.
type ScanDb struct {
	ID           string    `json:"id" bson:"_id"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	Mode         string    `json:"mode" bson:"mode"`
	SubjectName  string    `json:"subjectName" bson:"subjectName"`
	ReviewerName string    `json:"reviewerName" bson:"reviewerName"`
	Title        string    `json:"title" bson:"title"`
	Thumbnail    string    `json:"thumbnail,omitempty" bson:"thumbnail,omitempty"`
	VideoURL     string    `json:"videoUrl,omitempty" bson:"videoUrl,omitempty"`
	Result       bson.M    `json:"result,omitempty" bson:"result,omitempty"`
}

// ----- Methods for the database -----

func (db *DB) GetScans(ctx context.Context, args ...any) ([]ScanDb, error) {
	coll := db.Collection(ScansCollection)

	filter, opts := ResolveFilterAndOptionsSearch(args...)
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var allScans []ScanDb
	if err := cursor.All(ctx, &allScans); err != nil {
		return []ScanDb{}, err
	}

	return allScans, nil
}

func (db *DB) CountScans(ctx context.Context, args ...any) (int, error) {
	coll := db.Collection(ScansCollection)

	filter, _ := ResolveFilterAndOptionsSearch(args...)
	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, err
	}

	return int(total), nil
}

// GetScansBySubject fetches every scan whose subject name matches the given
// name, ignoring case. Detail lookups arrive as un-slugged names, so an exact
// match would miss records stored with different casing.
func (db *DB) GetScansBySubject(ctx context.Context, subjectName string) ([]ScanDb, error) {
	filter := bson.M{"subjectName": primitive.Regex{
		Pattern: "^" + regexp.QuoteMeta(subjectName) + "$",
		Options: "i",
	}}
	return db.GetScans(ctx, filter)
}

func (db *DB) AddScan(ctx context.Context, scan ScanDb) error {
	coll := db.Collection(ScansCollection)
	_, err := coll.InsertOne(ctx, scan)
	return err
}
