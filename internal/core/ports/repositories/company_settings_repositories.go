package repositories

import "context"

// CompanySettingsRepository is a key-value store for company configuration.
type CompanySettingsRepository interface {
	// GetSetting returns the raw JSON value stored under key, or apperrors.ErrNotFound.
	GetSetting(ctx context.Context, key string) ([]byte, error)

	// PutSetting inserts or replaces the value stored under key.
	PutSetting(ctx context.Context, key string, value []byte) error
}
