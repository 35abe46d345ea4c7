package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/sportsdata-go/internal/domain/rawdata"
)

const upsertRawPayloadSQL = `INSERT INTO raw_payloads (
    source, entity_type, entity_key, payload, payload_hash, fetched_at, updated_at
) VALUES (
    :source, :entity_type, :entity_key, :payload, :payload_hash, :fetched_at, :updated_at
)
ON CONFLICT (source, entity_key)
DO UPDATE SET
    entity_type = EXCLUDED.entity_type,
    payload = EXCLUDED.payload,
    payload_hash = EXCLUDED.payload_hash,
    fetched_at = EXCLUDED.fetched_at,
    updated_at = EXCLUDED.updated_at`

type RawPayloadRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewRawPayloadRepository(db *sqlx.DB) *RawPayloadRepository {
	return &RawPayloadRepository{db: db, now: time.Now}
}

// UpsertMany keeps the latest body per (source, entity_key) in one transaction.
func (r *RawPayloadRepository) UpsertMany(ctx context.Context, items []rawdata.Payload) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx upsert raw payloads: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	updatedAt := r.now().UTC()
	for _, item := range items {
		model := rawPayloadInsertModel{
			Source:      item.Source,
			EntityType:  item.EntityType,
			EntityKey:   item.EntityKey,
			Payload:     item.PayloadJSON,
			PayloadHash: item.PayloadHash,
			FetchedAt:   item.FetchedAt.UTC(),
			UpdatedAt:   updatedAt,
		}
		if _, err := tx.NamedExecContext(ctx, upsertRawPayloadSQL, model); err != nil {
			return fmt.Errorf("upsert raw payload entity=%s key=%s: %w", item.EntityType, item.EntityKey, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert raw payloads tx: %w", err)
	}

	return nil
}

type rawPayloadInsertModel struct {
	Source      string    `db:"source"`
	EntityType  string    `db:"entity_type"`
	EntityKey   string    `db:"entity_key"`
	Payload     string    `db:"payload"`
	PayloadHash string    `db:"payload_hash"`
	FetchedAt   time.Time `db:"fetched_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
