package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mixto_gestao/internal/domain/entities"
	"mixto_gestao/internal/logger"
	"mixto_gestao/internal/metrics"
	"mixto_gestao/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const schemaVersion = 1

// envelope wraps every stored collection. A document that is a bare JSON
// array predates the envelope and is read as schema version 0.
type envelope struct {
	SchemaVersion int             `json:"schema_version"`
	Items         json.RawMessage `json:"items"`
}

// DocumentRepository maps the dataset onto one document per collection in
// any IDocumentStore.
type DocumentRepository struct {
	store  interfaces.IDocumentStore
	prefix string
	seed   bool
	log    *zap.Logger
}

var _ interfaces.ICollectionRepository = (*DocumentRepository)(nil)

func NewDocumentRepository(store interfaces.IDocumentStore, keyPrefix string, seed bool, log *zap.Logger) *DocumentRepository {
	return &DocumentRepository{
		store:  store,
		prefix: keyPrefix,
		seed:   seed,
		log:    logger.OrNop(log).Named("repository"),
	}
}

// Load reads every collection. Missing client, service and material
// documents are seeded with demo rows when seeding is enabled.
func (r *DocumentRepository) Load(ctx context.Context) (entities.Dataset, error) {
	var d entities.Dataset
	seeded := make([]entities.Collection, 0)

	for _, c := range entities.Collections() {
		payload, found, err := r.store.Get(ctx, storageKey(r.prefix, c))
		if err != nil {
			return entities.Dataset{}, fmt.Errorf("loading %s: %w", c, err)
		}
		if !found {
			if r.seedInto(&d, c) {
				seeded = append(seeded, c)
			}
			continue
		}
		if err := decodeCollection(c, payload, &d); err != nil {
			return entities.Dataset{}, fmt.Errorf("decoding %s: %w", c, err)
		}
	}

	if d.Sequences == nil {
		d.Sequences = entities.BudgetSequences{}
	}
	if d.Budgets == nil {
		d.Budgets = []entities.Budget{}
	}

	for _, c := range seeded {
		if err := r.Save(ctx, c, d); err != nil {
			return entities.Dataset{}, err
		}
		r.log.Info("seeded demo data", zap.String("collection", string(c)))
	}
	return d, nil
}

// Save rewrites the whole document for collection.
func (r *DocumentRepository) Save(ctx context.Context, collection entities.Collection, data entities.Dataset) error {
	start := time.Now()
	payload, err := encodeCollection(collection, data)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", collection, err)
	}

	err = r.store.Put(ctx, storageKey(r.prefix, collection), payload)
	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.RecordStoreWrite(string(collection), status, time.Since(start))
	if err != nil {
		r.log.Error("collection write failed", zap.String("collection", string(collection)), zap.Error(err))
		return fmt.Errorf("saving %s: %w", collection, err)
	}
	return nil
}

func (r *DocumentRepository) seedInto(d *entities.Dataset, c entities.Collection) bool {
	if !r.seed {
		return false
	}
	switch c {
	case entities.CollectionClients:
		d.Clients = seedClients()
	case entities.CollectionServices:
		d.Services = seedServices()
	case entities.CollectionMaterials:
		d.Materials = seedMaterials()
	default:
		return false
	}
	return true
}

func encodeCollection(c entities.Collection, d entities.Dataset) ([]byte, error) {
	var items any
	switch c {
	case entities.CollectionClients:
		items = toClientRecords(d.Clients)
	case entities.CollectionServices:
		items = toServiceRecords(d.Services)
	case entities.CollectionMaterials:
		items = toMaterialRecords(d.Materials)
	case entities.CollectionBudgets:
		items = toBudgetRecords(d.Budgets)
	case entities.CollectionBudgetSequences:
		items = toSequenceRecord(d.Sequences)
	default:
		return nil, fmt.Errorf("unknown collection %q", c)
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	return json.Marshal(envelope{SchemaVersion: schemaVersion, Items: raw})
}

func decodeCollection(c entities.Collection, payload []byte, d *entities.Dataset) error {
	items, err := unwrap(payload)
	if err != nil {
		return err
	}

	switch c {
	case entities.CollectionClients:
		var recs []clientRecord
		if err := json.Unmarshal(items, &recs); err != nil {
			return err
		}
		d.Clients = fromClientRecords(recs)
	case entities.CollectionServices:
		var recs []serviceRecord
		if err := json.Unmarshal(items, &recs); err != nil {
			return err
		}
		d.Services = fromServiceRecords(recs)
	case entities.CollectionMaterials:
		var recs []materialRecord
		if err := json.Unmarshal(items, &recs); err != nil {
			return err
		}
		d.Materials = fromMaterialRecords(recs)
	case entities.CollectionBudgets:
		var recs []budgetRecord
		if err := json.Unmarshal(items, &recs); err != nil {
			return err
		}
		d.Budgets = fromBudgetRecords(recs)
	case entities.CollectionBudgetSequences:
		var rec map[string]int
		if err := json.Unmarshal(items, &rec); err != nil {
			return err
		}
		d.Sequences = fromSequenceRecord(rec)
	default:
		return fmt.Errorf("unknown collection %q", c)
	}
	return nil
}

// unwrap returns the items of a stored document, accepting both the
// envelope and the bare legacy array.
func unwrap(payload []byte) (json.RawMessage, error) {
	payload = bytes.TrimSpace(payload)
	if len(payload) == 0 || bytes.Equal(payload, []byte("null")) {
		return json.RawMessage("null"), nil
	}
	if payload[0] == '[' {
		return payload, nil
	}

	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, err
	}
	if env.SchemaVersion > schemaVersion {
		return nil, fmt.Errorf("unsupported schema version %d", env.SchemaVersion)
	}
	if len(env.Items) == 0 {
		return json.RawMessage("null"), nil
	}
	return env.Items, nil
}
