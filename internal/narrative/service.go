package narrative

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/purushothaman-98/cinema-wall/internal/logx"
	"github.com/purushothaman-98/cinema-wall/internal/mongodb"
	"github.com/purushothaman-98/cinema-wall/internal/services/consensus"
	"golang.org/x/sync/singleflight"
)

// Service serves the consensus narrative for a subject: vault cache first,
// generation on miss, upsert on real success. Concurrent requests for the
// same subject share one in-flight generation.
type Service struct {
	db        *mongodb.DB
	generator Generator
	group     singleflight.Group
}

// NewService builds the service. A nil generator (no API key configured)
// degrades every miss to the placeholder report.
func NewService(db *mongodb.DB, generator Generator) *Service {
	return &Service{db: db, generator: generator}
}

// ReportFor returns the cached narrative for the aggregate's subject, or
// generates, caches and returns a fresh one. Generation failures come back
// as a placeholder, never as an error; the only errors raised here are
// context cancellations.
func (s *Service) ReportFor(ctx context.Context, agg consensus.SubjectAggregate) (Report, error) {
	logger := logx.FromContext(ctx)

	entry, err := s.db.GetVaultEntry(ctx, agg.SubjectName)
	if err == nil {
		report, decodeErr := DecodeReport(entry.Report)
		if decodeErr == nil {
			return report, nil
		}
		// Corrupt cache row; fall through and regenerate.
		logger.Printf("Discarding unreadable vault entry for %q: %v", agg.SubjectName, decodeErr)
	} else if !errors.Is(err, mongodb.ErrRecordNotFound) {
		// The vault is a cache; a read failure just means we regenerate.
		logger.Printf("Vault read failed for %q: %v", agg.SubjectName, err)
	}

	if s.generator == nil {
		return PlaceholderReport(), nil
	}

	result, err, _ := s.group.Do(agg.SubjectName, func() (any, error) {
		report, genErr := s.generator.Generate(ctx, BuildRequest(agg))
		if genErr != nil {
			logger.Printf("Narrative generation failed for %q: %v", agg.SubjectName, genErr)
			return PlaceholderReport(), nil
		}

		// Persist only real reports; a cached placeholder would block
		// regeneration forever.
		if raw, marshalErr := json.Marshal(report); marshalErr == nil {
			if upsertErr := s.db.UpsertVaultEntry(ctx, agg.SubjectName, string(raw)); upsertErr != nil {
				logger.Printf("Vault upsert failed for %q: %v", agg.SubjectName, upsertErr)
			}
		}

		return report, nil
	})
	if err != nil {
		return Report{}, err
	}

	return result.(Report), nil
}
