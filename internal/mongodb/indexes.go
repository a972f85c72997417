package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the app relies on:
// - a unique index on memory_vault.subjectName (upsert key for cached reports)
// - a compound index on scans(subjectName, createdAt) for per-subject lookups
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	vault := db.Collection(VaultCollection)
	_, err := vault.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "subjectName", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("subjectName_unique"),
	})
	if err != nil {
		return fmt.Errorf("failed to create vault index: %w", err)
	}
	fmt.Printf("✅ Created unique index on %s.subjectName\n", VaultCollection)

	scans := db.Collection(ScansCollection)
	_, err = scans.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "subjectName", Value: 1}, {Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("subject_createdAt"),
	})
	if err != nil {
		return fmt.Errorf("failed to create scans index: %w", err)
	}
	fmt.Printf("✅ Created compound index on %s(subjectName, createdAt)\n", ScansCollection)

	return nil
}

// DeleteAllIndexes deletes all indexes from all collections in the database
// (except the default _id_ index which cannot be deleted)
func DeleteAllIndexes(ctx context.Context, db *mongo.Database) error {
	collections, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}

	for _, collName := range collections {
		coll := db.Collection(collName)

		cursor, err := coll.Indexes().List(ctx)
		if err != nil {
			return fmt.Errorf("failed to list indexes for collection '%s': %w", collName, err)
		}

		for cursor.Next(ctx) {
			var index bson.M
			if err := cursor.Decode(&index); err != nil {
				cursor.Close(ctx)
				return fmt.Errorf("failed to decode index for collection '%s': %w", collName, err)
			}

			indexName, ok := index["name"].(string)
			if !ok {
				continue
			}

			// Skip the default _id_ index as it cannot be deleted
			if indexName == "_id_" {
				continue
			}

			_, err := coll.Indexes().DropOne(ctx, indexName)
			if err != nil {
				cursor.Close(ctx)
				return fmt.Errorf("failed to delete index '%s' from collection '%s': %w", indexName, collName, err)
			}
			fmt.Printf("🗑️  Deleted index '%s' from collection '%s'\n", indexName, collName)
		}

		if err := cursor.Err(); err != nil {
			cursor.Close(ctx)
			return fmt.Errorf("cursor error for collection '%s': %w", collName, err)
		}
		cursor.Close(ctx)
	}

	return nil
}
