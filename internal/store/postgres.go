package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/donaldgifford/happy-arz/pkg/types"
)

// DB is the subset of *pgxpool.Pool used by PostgresStore. It is satisfied
// by pgxmock pools in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
type PostgresStore struct {
	db DB
}

// NewPostgresStore creates a new PostgresStore with connection pooling. The
// pool size comes from pool_max_conns in connString.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{db: pool}, nil
}

// NewPostgresStoreFromDB wraps an existing connection pool.
func NewPostgresStoreFromDB(db DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.db.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.db)
}

// GetVerifiedBusinesses returns the verified set in upload order.
func (s *PostgresStore) GetVerifiedBusinesses(ctx context.Context) ([]domain.Business, error) {
	rows, err := s.db.Query(ctx, querySelectVerified)
	if err != nil {
		return nil, fmt.Errorf("querying verified businesses: %w", err)
	}
	defer rows.Close()

	businesses := []domain.Business{}
	for rows.Next() {
		var b domain.Business
		if err := scanBusiness(rows, &b); err != nil {
			return nil, err
		}
		businesses = append(businesses, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating verified businesses: %w", err)
	}
	return businesses, nil
}

// ReplaceVerifiedBusinesses deletes the verified set and copies in the new
// one inside a single transaction. A transaction-scoped advisory lock keeps
// concurrent replacements from interleaving.
func (s *PostgresStore) ReplaceVerifiedBusinesses(ctx context.Context, businesses []domain.Business) (err error) {
	rows := make([][]any, 0, len(businesses))
	for i := range businesses {
		row, err := businessRow(i, &businesses[i])
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, queryLockReplace, replaceLockKey); err != nil {
		return fmt.Errorf("acquiring replace lock: %w", err)
	}
	if _, err = tx.Exec(ctx, queryDeleteVerified); err != nil {
		return fmt.Errorf("deleting verified businesses: %w", err)
	}
	if len(rows) > 0 {
		if _, err = tx.CopyFrom(ctx,
			pgx.Identifier{"verified_businesses"},
			verifiedColumns,
			pgx.CopyFromRows(rows),
		); err != nil {
			return fmt.Errorf("copying verified businesses: %w", err)
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing verified businesses: %w", err)
	}
	return nil
}

// AppendUploadHistory inserts e, filling in its ID and timestamp when unset.
func (s *PostgresStore) AppendUploadHistory(ctx context.Context, e *domain.UploadHistoryEntry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}

	if _, err := s.db.Exec(ctx, queryInsertHistory,
		e.ID, e.Timestamp, e.FileName, e.TotalRows, e.ProcessedRows, e.Errors,
	); err != nil {
		return fmt.Errorf("inserting upload history: %w", err)
	}
	return nil
}

// ListUploadHistory returns upload history entries newest first.
func (s *PostgresStore) ListUploadHistory(
	ctx context.Context,
	q *HistoryQuery,
) ([]domain.UploadHistoryEntry, error) {
	sql, args := q.ToSQL()

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("querying upload history: %w", err)
	}
	defer rows.Close()

	entries := []domain.UploadHistoryEntry{}
	for rows.Next() {
		var e domain.UploadHistoryEntry
		if err := rows.Scan(
			&e.ID, &e.Timestamp, &e.FileName, &e.TotalRows, &e.ProcessedRows, &e.Errors,
		); err != nil {
			return nil, fmt.Errorf("scanning upload history: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating upload history: %w", err)
	}
	return entries, nil
}

// GetUploadStats aggregates the whole upload history.
func (s *PostgresStore) GetUploadStats(ctx context.Context) (*domain.UploadStats, error) {
	st := &domain.UploadStats{}
	if err := s.db.QueryRow(ctx, queryUploadStats).Scan(
		&st.Uploads, &st.ProcessedRows, &st.ErrorRows, &st.LastUpload,
	); err != nil {
		return nil, fmt.Errorf("querying upload stats: %w", err)
	}
	return st, nil
}

// ListBookmarkedIDs returns owner's bookmarks, oldest first.
func (s *PostgresStore) ListBookmarkedIDs(ctx context.Context, owner string) ([]string, error) {
	if owner == "" {
		return nil, ErrEmptyOwner
	}

	rows, err := s.db.Query(ctx, querySelectBookmarks, owner)
	if err != nil {
		return nil, fmt.Errorf("querying bookmarks: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scanning bookmarks: %w", err)
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

// ToggleBookmark removes the bookmark when present, otherwise adds it.
func (s *PostgresStore) ToggleBookmark(ctx context.Context, owner, businessID string) (bool, error) {
	if owner == "" {
		return false, ErrEmptyOwner
	}

	tag, err := s.db.Exec(ctx, queryDeleteBookmark, owner, businessID)
	if err != nil {
		return false, fmt.Errorf("deleting bookmark: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return false, nil
	}

	if _, err := s.db.Exec(ctx, queryInsertBookmark, owner, businessID); err != nil {
		return false, fmt.Errorf("inserting bookmark: %w", err)
	}
	return true, nil
}

// businessRow flattens b into verifiedColumns order.
func businessRow(position int, b *domain.Business) ([]any, error) {
	discount, err := jsonColumn(b.CurrentDiscount)
	if err != nil {
		return nil, fmt.Errorf("encoding discount for %s: %w", b.ID, err)
	}
	verification, err := jsonColumn(b.Verification)
	if err != nil {
		return nil, fmt.Errorf("encoding verification for %s: %w", b.ID, err)
	}

	return []any{
		b.ID, position, b.Name, b.Description, b.Image, string(b.Category), b.Rating,
		b.Location.Latitude, b.Location.Longitude, b.Location.Address, b.IsActive,
		discount, verification,
	}, nil
}

// jsonColumn encodes v for a nullable JSONB column.
func jsonColumn[T any](v *T) (any, error) {
	if v == nil {
		return nil, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(data), nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanBusiness(row scannable, b *domain.Business) error {
	var (
		category     string
		discount     []byte
		verification []byte
	)
	if err := row.Scan(
		&b.ID, &b.Name, &b.Description, &b.Image, &category, &b.Rating,
		&b.Location.Latitude, &b.Location.Longitude, &b.Location.Address, &b.IsActive,
		&discount, &verification,
	); err != nil {
		return fmt.Errorf("scanning verified business: %w", err)
	}

	b.Category = domain.Category(category)
	b.IsVerified = true

	if len(discount) > 0 {
		b.CurrentDiscount = &domain.Discount{}
		if err := json.Unmarshal(discount, b.CurrentDiscount); err != nil {
			return fmt.Errorf("decoding discount for %s: %w", b.ID, err)
		}
	}
	if len(verification) > 0 {
		b.Verification = &domain.VerificationData{}
		if err := json.Unmarshal(verification, b.Verification); err != nil {
			return fmt.Errorf("decoding verification for %s: %w", b.ID, err)
		}
	}
	return nil
}
