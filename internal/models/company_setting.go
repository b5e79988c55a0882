package models

import "time"

// CompanySetting is one key-value row of the company_settings table.
type CompanySetting struct {
	Key           string    `db:"key"`
	Value         []byte    `db:"value"` // JSON document
	LastUpdatedAt time.Time `db:"last_updated_at"`
}
