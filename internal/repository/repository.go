package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/medscan/medscan-api/internal/models"
	"github.com/medscan/medscan-api/internal/verification"
)

// DefaultHistoryLimit caps the scan history; inserting beyond it evicts the
// oldest records first.
const DefaultHistoryLimit = 50

type Repository interface {
	SaveScan(ctx context.Context, scan *models.ScanRecord) error
	LatestScans(ctx context.Context, limit int) ([]*models.ScanRecord, error)
	GetScan(ctx context.Context, id string) (*models.ScanRecord, error)
	ClearScans(ctx context.Context) error

	AddFavorite(ctx context.Context, favorite *models.Favorite) error
	RemoveFavorite(ctx context.Context, name string) error
	ListFavorites(ctx context.Context) ([]*models.Favorite, error)
}

type repository struct {
	db           *sqlx.DB
	historyLimit int
}

func NewRepository(db *sqlx.DB, historyLimit int) Repository {
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	return &repository{db: db, historyLimit: historyLimit}
}

// SaveScan inserts the record and evicts anything beyond the history cap.
// Eviction is FIFO by insertion order (rowid), not by the timestamp field.
func (r *repository) SaveScan(ctx context.Context, scan *models.ScanRecord) error {
	verified := outcomeToNullBool(scan.Verification.Outcome)

	var registryJSON sql.NullString
	if scan.Verification.Registry != nil {
		data, err := json.Marshal(scan.Verification.Registry)
		if err != nil {
			return fmt.Errorf("failed to marshal registry info: %w", err)
		}
		registryJSON = sql.NullString{String: string(data), Valid: true}
	}

	query := `
		INSERT INTO scans (id, name, info, verification_status, verified, verification_message, registry_info, image_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(ctx, query,
		scan.ID,
		scan.Name,
		scan.Info,
		string(scan.Verification.Status),
		verified,
		scan.Verification.Message,
		registryJSON,
		scan.ImageKey,
		scan.CreatedAt,
	)
	if err != nil {
		return err
	}

	evict := `
		DELETE FROM scans
		WHERE rowid NOT IN (SELECT rowid FROM scans ORDER BY rowid DESC LIMIT $1)
	`
	_, err = r.db.ExecContext(ctx, evict, r.historyLimit)
	return err
}

func (r *repository) LatestScans(ctx context.Context, limit int) ([]*models.ScanRecord, error) {
	if limit <= 0 || limit > r.historyLimit {
		limit = r.historyLimit
	}

	query := `
		SELECT id, name, info, verification_status, verified, verification_message, registry_info, image_key, created_at
		FROM scans
		ORDER BY rowid DESC
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scans []*models.ScanRecord
	for rows.Next() {
		scan, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		scans = append(scans, scan)
	}
	return scans, rows.Err()
}

func (r *repository) GetScan(ctx context.Context, id string) (*models.ScanRecord, error) {
	query := `
		SELECT id, name, info, verification_status, verified, verification_message, registry_info, image_key, created_at
		FROM scans
		WHERE id = $1
	`

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	return scanRow(rows)
}

func (r *repository) ClearScans(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM scans`)
	return err
}

func (r *repository) AddFavorite(ctx context.Context, favorite *models.Favorite) error {
	query := `
		INSERT INTO favorites (name, info, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT(name) DO UPDATE SET info = excluded.info
	`
	_, err := r.db.ExecContext(ctx, query, favorite.Name, favorite.Info, favorite.CreatedAt)
	return err
}

func (r *repository) RemoveFavorite(ctx context.Context, name string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM favorites WHERE name = $1`, name)
	return err
}

func (r *repository) ListFavorites(ctx context.Context) ([]*models.Favorite, error) {
	var favorites []*models.Favorite
	err := r.db.SelectContext(ctx, &favorites, `SELECT name, info, created_at FROM favorites ORDER BY created_at DESC`)
	return favorites, err
}

func scanRow(rows *sql.Rows) (*models.ScanRecord, error) {
	var (
		scan         models.ScanRecord
		status       string
		verified     sql.NullBool
		message      string
		registryJSON sql.NullString
		createdAt    time.Time
	)

	err := rows.Scan(
		&scan.ID,
		&scan.Name,
		&scan.Info,
		&status,
		&verified,
		&message,
		&registryJSON,
		&scan.ImageKey,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	scan.Verification = verification.Verdict{
		Outcome: nullBoolToOutcome(verified),
		Status:  verification.Status(status),
		Message: message,
	}
	scan.CreatedAt = createdAt

	if registryJSON.Valid && registryJSON.String != "" {
		var registry verification.RegistryInfo
		if err := json.Unmarshal([]byte(registryJSON.String), &registry); err != nil {
			return nil, err
		}
		scan.Verification.Registry = &registry
	}

	return &scan, nil
}

func outcomeToNullBool(outcome verification.Outcome) sql.NullBool {
	switch outcome {
	case verification.Verified:
		return sql.NullBool{Bool: true, Valid: true}
	case verification.NotVerified:
		return sql.NullBool{Bool: false, Valid: true}
	default:
		return sql.NullBool{}
	}
}

func nullBoolToOutcome(verified sql.NullBool) verification.Outcome {
	switch {
	case !verified.Valid:
		return verification.Indeterminate
	case verified.Bool:
		return verification.Verified
	default:
		return verification.NotVerified
	}
}
