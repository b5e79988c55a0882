package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/invoicing_app/internal/apperrors"
	portsrepo "github.com/SscSPs/invoicing_app/internal/core/ports/repositories"
	"github.com/SscSPs/invoicing_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxCompanySettingsRepository stores JSON settings by key.
type PgxCompanySettingsRepository struct {
	BaseRepository
}

func newPgxCompanySettingsRepository(pool *pgxpool.Pool) *PgxCompanySettingsRepository {
	return &PgxCompanySettingsRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CompanySettingsRepository = (*PgxCompanySettingsRepository)(nil)

// GetSetting returns the raw value stored under key.
func (r *PgxCompanySettingsRepository) GetSetting(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT key, value, last_updated_at FROM company_settings WHERE key = $1;`

	var setting models.CompanySetting
	err := r.Pool.QueryRow(ctx, query, key).Scan(&setting.Key, &setting.Value, &setting.LastUpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("setting %q: %w", key, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read setting %q: %w", key, err)
	}
	return setting.Value, nil
}

// PutSetting inserts or replaces the value stored under key.
func (r *PgxCompanySettingsRepository) PutSetting(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO company_settings (key, value, last_updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			last_updated_at = EXCLUDED.last_updated_at;
	`
	if _, err := r.Pool.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to save setting %q: %w", key, err)
	}
	return nil
}
