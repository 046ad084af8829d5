package models

import (
	"fmt"
	"time"

	"github.com/cybervault/crypto-engine/internal/domain/keys"
)

// KeyRecordModel is the GORM database model for stored key material
type KeyRecordModel struct {
	ID              string    `gorm:"primaryKey;type:varchar(36)"`
	Kind            string    `gorm:"not null;type:varchar(16)"`
	Material        []byte    `gorm:"not null"`
	SizeBits        uint32    `gorm:"not null;type:integer"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (KeyRecordModel) TableName() string {
	return "key_records"
}

// ToDomain converts the row to a domain record. Unknown kinds are rejected.
func (m *KeyRecordModel) ToDomain() (*keys.KeyRecord, error) {
	kind, err := keys.ParseKind(m.Kind)
	if err != nil {
		return nil, fmt.Errorf("corrupt key record %s: %w", m.ID, err)
	}

	return &keys.KeyRecord{
		ID:              m.ID,
		Kind:            kind,
		Material:        append([]byte(nil), m.Material...),
		SizeBits:        m.SizeBits,
		DateTimeCreated: m.DateTimeCreated.UTC(),
	}, nil
}

// FromDomain converts a domain record to a row
func (m *KeyRecordModel) FromDomain(r *keys.KeyRecord) {
	m.ID = r.ID
	m.Kind = string(r.Kind)
	m.Material = append([]byte(nil), r.Material...)
	m.SizeBits = r.SizeBits
	m.DateTimeCreated = r.DateTimeCreated
}
