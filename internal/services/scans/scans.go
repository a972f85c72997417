package scans

import (
	"context"

	"github.com/purushothaman-98/cinema-wall/internal/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// The aggregation engine recomputes everything on each read, so the fetch is
// bounded to the most recent scans rather than the whole collection.
const recentScansLimit = 1000

// GetRecentScans fetches the newest scans, newest first.
func GetRecentScans(db *mongodb.DB, ctx context.Context) ([]Scan, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(recentScansLimit)

	dbScans, err := db.GetScans(ctx, opts)
	if err != nil {
		return nil, err
	}

	return mapAll(dbScans), nil
}

// GetScansBySubject fetches every scan for one subject, matched
// case-insensitively (detail lookups arrive as un-slugged names).
func GetScansBySubject(db *mongodb.DB, ctx context.Context, subjectName string) ([]Scan, error) {
	dbScans, err := db.GetScansBySubject(ctx, subjectName)
	if err != nil {
		return nil, err
	}

	return mapAll(dbScans), nil
}

func mapAll(dbScans []mongodb.ScanDb) []Scan {
	allScans := make([]Scan, len(dbScans))
	for i, dbScan := range dbScans {
		allScans[i] = MapDbScanToScan(dbScan)
	}
	return allScans
}
