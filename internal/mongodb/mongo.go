package mongodb

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	ScansCollection = "scans"
	VaultCollection = "memory_vault"
)

var ErrRecordNotFound = errors.New("record not found in the database")

// DB wraps a mongo database handle so the rest of the code never touches the
// client directly.
type DB struct {
	database *mongo.Database
}

func NewDB(client *mongo.Client, name string) *DB {
	return &DB{database: client.Database(name)}
}

func (db *DB) Collection(name string) *mongo.Collection {
	return db.database.Collection(name)
}

func (db *DB) Database() *mongo.Database {
	return db.database
}

func ResolveFilterAndOptionsSearch(args ...any) (bson.M, []*options.FindOptions) {
	filter := bson.M{}
	var opts []*options.FindOptions

	for _, arg := range args {
		switch v := arg.(type) {
		case bson.M:
			filter = v
		case *options.FindOptions:
			opts = append(opts, v)
		default:
			// Just ignore if no args match
		}
	}

	return filter, opts
}
