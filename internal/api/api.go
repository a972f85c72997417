package api

import (
	"github.com/purushothaman-98/cinema-wall/internal/mongodb"
	"github.com/purushothaman-98/cinema-wall/internal/narrative"
	"github.com/purushothaman-98/cinema-wall/internal/services/consensus"
)

type API struct {
	Db         *mongodb.DB
	Aggregator *consensus.Aggregator
	Narrative  *narrative.Service
}

func NewAPI(db *mongodb.DB, aggregator *consensus.Aggregator, narrativeService *narrative.Service) *API {
	return &API{
		Db:         db,
		Aggregator: aggregator,
		Narrative:  narrativeService,
	}
}
