package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// DocumentType classifies an attached document
type DocumentType string

const (
	DocumentTypeDeed     DocumentType = "Escritura"
	DocumentTypeContract DocumentType = "Contrato"
	DocumentTypeReceipt  DocumentType = "Recibo"
	DocumentTypeTax      DocumentType = "Impuesto"
	DocumentTypeOther    DocumentType = "Otro"
)

// Valid reports whether t is a known document type
func (t DocumentType) Valid() bool {
	switch t {
	case DocumentTypeDeed, DocumentTypeContract, DocumentTypeReceipt, DocumentTypeTax, DocumentTypeOther:
		return true
	}
	return false
}

// Document is a file reference attached to a property or a tenant.
// URL is either a remote URL or an embedded data URL.
type Document struct {
	ID   string       `json:"id"`
	Name string       `json:"name"`
	Type DocumentType `json:"type"`
	Date string       `json:"date"`
	URL  string       `json:"url,omitempty"`
}

// Documents is an ordered document list stored as a single JSON column
type Documents []Document

// Value marshals the list, a nil list is stored as an empty array
func (d Documents) Value() (driver.Value, error) {
	if d == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]Document(d))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// MarshalJSON renders a nil list as an empty array
func (d Documents) MarshalJSON() ([]byte, error) {
	if d == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Document(d))
}

// Scan reads the JSON column through datatypes.JSON so every driver representation is accepted
func (d *Documents) Scan(value interface{}) error {
	if value == nil {
		*d = Documents{}
		return nil
	}
	var raw datatypes.JSON
	if err := raw.Scan(value); err != nil {
		return fmt.Errorf("documents column: %w", err)
	}
	if len(raw) == 0 || string(raw) == "null" {
		*d = Documents{}
		return nil
	}
	var list []Document
	if err := json.Unmarshal(raw, &list); err != nil {
		return fmt.Errorf("documents column: %w", err)
	}
	*d = Documents(list)
	return nil
}

// GormDBDataType ensures the correct data type is used for each database driver.
// MSSQL does not support the 'json' data type.
func (Documents) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "mysql":
		return "JSON"
	case "postgres":
		return "JSONB"
	case "sqlserver", "mssql":
		return "NVARCHAR(MAX)"
	case "sqlite":
		return "JSON"
	}
	return "TEXT"
}

// Without returns a copy of the list without the document with the given id.
// The second result reports whether anything was removed.
func (d Documents) Without(id string) (Documents, bool) {
	out := make(Documents, 0, len(d))
	removed := false
	for _, doc := range d {
		if doc.ID == id {
			removed = true
			continue
		}
		out = append(out, doc)
	}
	return out, removed
}
