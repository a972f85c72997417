package tests

import (
	"context"
	"encoding/json"
	"log"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/purushothaman-98/cinema-wall/internal/mongodb"
	"github.com/purushothaman-98/cinema-wall/internal/narrative"
	"github.com/purushothaman-98/cinema-wall/internal/server"
	"github.com/purushothaman-98/cinema-wall/internal/services/consensus"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	testClient    *mongo.Client
	testServer    *httptest.Server
	testGenerator *stubGenerator
)

const TEST_DB_NAME = "testDb"

// stubGenerator stands in for the LLM-backed narrative generator so the suite
// stays hermetic. Tests toggle fail to exercise the placeholder path.
type stubGenerator struct {
	mu    sync.Mutex
	calls int
	fail  bool
}

func (s *stubGenerator) Generate(ctx context.Context, req narrative.Request) (narrative.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.fail {
		return narrative.Report{}, context.DeadlineExceeded
	}
	return narrative.Report{
		Tagline: "Stubbed Consensus",
		Summary: "Generated narrative for " + req.Movie,
	}, nil
}

func (s *stubGenerator) reset(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = 0
	s.fail = fail
}

func (s *stubGenerator) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func TestMain(m *testing.M) {
	ctx := context.Background()

	os.Setenv("MONGODB_DB", TEST_DB_NAME)
	req := testcontainers.ContainerRequest{
		Image:        "mongo:7.0",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp"),
	}
	mongoC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		log.Fatalf("failed to start mongo container: %v", err)
	}

	endpoint, err := mongoC.Endpoint(ctx, "")
	if err != nil {
		log.Fatalf("failed to get mongo endpoint: %v", err)
	}
	uri := "mongodb://" + endpoint

	testClient, err = mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("failed to connect to test mongo: %v", err)
	}

	db := mongodb.NewDB(testClient, TEST_DB_NAME)
	aggregator := consensus.NewAggregator(nil, nil)
	testGenerator = &stubGenerator{}
	narrativeService := narrative.NewService(db, testGenerator)

	handler := server.NewServer(db, aggregator, narrativeService)
	testServer = httptest.NewServer(handler)

	code := m.Run()

	// Cleanup
	testServer.Close()
	_ = testClient.Disconnect(ctx)
	_ = mongoC.Terminate(ctx)

	os.Exit(code)
}

func resetDB(t *testing.T) {
	t.Helper()

	ctx := context.Background()
	db := testClient.Database(TEST_DB_NAME)

	collections, err := db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		t.Fatalf("failed to list collections: %v", err)
	}

	for _, coll := range collections {
		if err := db.Collection(coll).Drop(ctx); err != nil {
			t.Fatalf("failed to drop collection %s: %v", coll, err)
		}
	}
}

func seedScans(t *testing.T, docs []interface{}) {
	t.Helper()

	ctx := context.Background()
	coll := testClient.Database(TEST_DB_NAME).Collection(mongodb.ScansCollection)

	_, err := coll.InsertMany(ctx, docs)
	if err != nil {
		t.Fatalf("failed to insert seed scans: %v", err)
	}
}

// loadFixture reads a JSON array of extended-JSON documents, so fixtures can
// carry real dates via {"$date": ...}.
func loadFixture(t *testing.T, path string) []interface{} {
	t.Helper()

	absPath, err := filepath.Abs(path)
	if err != nil {
		t.Fatalf("failed to get abs path: %v", err)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		t.Fatalf("failed to read fixture file %s: %v", absPath, err)
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		t.Fatalf("failed to unmarshal fixture JSON: %v", err)
	}

	result := make([]interface{}, len(raws))
	for i, raw := range raws {
		var doc bson.M
		if err := bson.UnmarshalExtJSON(raw, false, &doc); err != nil {
			t.Fatalf("failed to parse fixture document %d: %v", i, err)
		}
		result[i] = doc
	}

	return result
}
