package postgres

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/sportsdata-go/internal/domain/rawdata"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

const rawPayloadsSQLiteSchema = `CREATE TABLE raw_payloads (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    source TEXT NOT NULL,
    entity_type TEXT NOT NULL,
    entity_key TEXT NOT NULL,
    payload TEXT NOT NULL,
    payload_hash TEXT NOT NULL,
    fetched_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL,
    UNIQUE (source, entity_key)
)`

func init() {
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

func openRawPayloadDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Open("sqlite", filepath.Join(t.TempDir(), "archive.db"))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(rawPayloadsSQLiteSchema)
	require.NoError(t, err)
	return db
}

type storedPayload struct {
	EntityType  string `db:"entity_type"`
	EntityKey   string `db:"entity_key"`
	Payload     string `db:"payload"`
	PayloadHash string `db:"payload_hash"`
}

func TestRawPayloadRepository_UpsertMany(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := openRawPayloadDB(t)
	repo := NewRawPayloadRepository(db)
	repo.now = func() time.Time { return time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC) }

	first := rawdata.Payload{
		Source:      "sportsdata",
		EntityType:  "/v3/nfl/scores/{format}/byes/{season}",
		EntityKey:   "/v3/nfl/scores/json/byes/2023?format=json",
		PayloadJSON: `[]`,
		PayloadHash: "hash-1",
		FetchedAt:   time.Date(2026, 10, 15, 7, 0, 0, 0, time.UTC),
	}
	other := first
	other.EntityKey = "/v3/nfl/scores/json/byes/2024?format=json"

	require.NoError(t, repo.UpsertMany(ctx, []rawdata.Payload{first, other}))

	updated := first
	updated.PayloadJSON = `[{"Team":"CAR"}]`
	updated.PayloadHash = "hash-2"
	require.NoError(t, repo.UpsertMany(ctx, []rawdata.Payload{updated}))

	var rows []storedPayload
	require.NoError(t, db.SelectContext(ctx, &rows,
		`SELECT entity_type, entity_key, payload, payload_hash FROM raw_payloads ORDER BY entity_key`))
	require.Len(t, rows, 2)
	require.Equal(t, storedPayload{
		EntityType:  first.EntityType,
		EntityKey:   first.EntityKey,
		Payload:     `[{"Team":"CAR"}]`,
		PayloadHash: "hash-2",
	}, rows[0])
	require.Equal(t, other.EntityKey, rows[1].EntityKey)
	require.Equal(t, "hash-1", rows[1].PayloadHash)
}

func TestRawPayloadRepository_UpsertManyEmptyIsNoop(t *testing.T) {
	t.Parallel()

	repo := NewRawPayloadRepository(openRawPayloadDB(t))
	require.NoError(t, repo.UpsertMany(context.Background(), nil))
}

func TestRawPayloadRepository_UpsertManyRollsBackOnFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := openRawPayloadDB(t)
	repo := NewRawPayloadRepository(db)

	_, err := db.Exec(`CREATE TRIGGER reject_bad BEFORE INSERT ON raw_payloads
WHEN NEW.payload_hash = 'bad' BEGIN SELECT RAISE(ABORT, 'rejected'); END`)
	require.NoError(t, err)

	good := rawdata.Payload{Source: "sportsdata", EntityType: "t", EntityKey: "/a", PayloadJSON: "1", PayloadHash: "ok", FetchedAt: time.Now()}
	bad := rawdata.Payload{Source: "sportsdata", EntityType: "t", EntityKey: "/b", PayloadJSON: "2", PayloadHash: "bad", FetchedAt: time.Now()}

	err = repo.UpsertMany(ctx, []rawdata.Payload{good, bad})
	require.Error(t, err)
	require.Contains(t, err.Error(), "key=/b")

	var count int
	require.NoError(t, db.GetContext(ctx, &count, `SELECT COUNT(*) FROM raw_payloads`))
	require.Zero(t, count)
}
