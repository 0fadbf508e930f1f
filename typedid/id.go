// Package typedid provides UUID-backed strong identifiers. ID[Tag] is a
// strong typedef over uuid.UUID: IDs with different tags are different
// types, so a user ID can never be passed where an order ID is expected,
// while every tag shares one implementation of generation, parsing,
// encoding, and database round-tripping.
//
//	type userTag struct{}
//	type orderTag struct{}
//
//	type UserID = typedid.ID[userTag]
//	type OrderID = typedid.ID[orderTag]
//
// IDs encode as the canonical UUID string in JSON, YAML, and text, and
// implement driver.Valuer and sql.Scanner so they store in a TEXT column
// unchanged.
package typedid

import (
	"database/sql/driver"
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/typesafe-go/strongtype"
)

// ID is a strong identifier distinguished by Tag. The zero value is the
// nil UUID.
type ID[Tag any] struct {
	strongtype.Typedef[Tag, uuid.UUID]
}

// New returns a freshly generated random ID.
func New[Tag any]() ID[Tag] {
	return From[Tag](uuid.New())
}

// From wraps an existing UUID.
func From[Tag any](u uuid.UUID) ID[Tag] {
	return ID[Tag]{strongtype.New[Tag](u)}
}

// Parse converts the canonical string form back into an ID.
func Parse[Tag any](s string) (ID[Tag], error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return ID[Tag]{}, fmt.Errorf("parse typed id: %w", err)
	}
	return From[Tag](u), nil
}

// String returns the canonical UUID string.
func (id ID[Tag]) String() string {
	return id.Get().String()
}

// IsZero reports whether the ID is the nil UUID.
func (id ID[Tag]) IsZero() bool {
	return id.Get() == uuid.Nil
}

func (id ID[Tag]) Equal(o ID[Tag]) bool {
	return id.Get() == o.Get()
}

// MarshalText implements encoding.TextMarshaler; JSON encoding goes
// through it as well.
func (id ID[Tag]) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID[Tag]) UnmarshalText(text []byte) error {
	parsed, err := Parse[Tag](string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (id ID[Tag]) MarshalYAML() (any, error) {
	return id.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (id *ID[Tag]) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("unmarshal typed id: %w", err)
	}
	return id.UnmarshalText([]byte(s))
}

// Value implements driver.Valuer, storing the canonical string.
func (id ID[Tag]) Value() (driver.Value, error) {
	return id.String(), nil
}

// Scan implements sql.Scanner, accepting the string and byte forms a
// driver may hand back.
func (id *ID[Tag]) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return id.UnmarshalText([]byte(v))
	case []byte:
		return id.UnmarshalText(v)
	default:
		return fmt.Errorf("scan typed id: unsupported source type %T", src)
	}
}
