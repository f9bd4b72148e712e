package model

import "time"

// Metadata is the audit block embedded in every table row.
type Metadata struct {
	CreatedAt  time.Time `db:"created_at"  json:"created_at"`
	ModifiedAt time.Time `db:"modified_at" json:"modified_at"`
	CreatedBy  string    `db:"created_by"`
	ModifiedBy string    `db:"modified_by"`
}

// NewMetadata stamps a fresh row as created and last modified by actor at t.
func NewMetadata(actor string, t time.Time) Metadata {
	return Metadata{CreatedAt: t, ModifiedAt: t, CreatedBy: actor, ModifiedBy: actor}
}
