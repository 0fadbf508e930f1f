package strongtype

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"
)

// Formatted is a strong typedef that forwards Go's stream protocols: it
// prints as its representation through fmt.Stringer and fmt.Formatter, and
// reads back through fmt.Scanner.
type Formatted[Tag any, T any] struct {
	Typedef[Tag, T]
}

// NewFormatted wraps a representation value.
func NewFormatted[Tag any, T any](v T) Formatted[Tag, T] {
	return Formatted[Tag, T]{New[Tag](v)}
}

// String returns the representation's default formatting.
func (f Formatted[Tag, T]) String() string {
	return fmt.Sprint(f.value)
}

// Format implements fmt.Formatter by forwarding the verb and flags to the
// representation, so %d, %x, %6.2f and friends behave as they would on the
// bare value.
func (f Formatted[Tag, T]) Format(st fmt.State, verb rune) {
	fmt.Fprintf(st, fmt.FormatString(st, verb), f.value)
}

// Scan implements fmt.Scanner by reading one representation value. The
// verb is ignored; the representation's own scanning rules apply.
func (f *Formatted[Tag, T]) Scan(st fmt.ScanState, _ rune) error {
	if _, err := fmt.Fscan(st, &f.value); err != nil {
		return fmt.Errorf("scan strong typedef: %w", err)
	}
	return nil
}

// Encoded is a strong typedef that forwards the serialized-stream forms:
// JSON, YAML, and plain text all encode exactly as the bare representation
// does, so a strong typedef field changes nothing on the wire.
type Encoded[Tag any, T any] struct {
	Typedef[Tag, T]
}

// NewEncoded wraps a representation value.
func NewEncoded[Tag any, T any](v T) Encoded[Tag, T] {
	return Encoded[Tag, T]{New[Tag](v)}
}

// MarshalJSON implements json.Marshaler.
func (e Encoded[Tag, T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.value)
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *Encoded[Tag, T]) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &e.value); err != nil {
		return fmt.Errorf("unmarshal strong typedef: %w", err)
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (e Encoded[Tag, T]) MarshalYAML() (any, error) {
	return e.value, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *Encoded[Tag, T]) UnmarshalYAML(node *yaml.Node) error {
	if err := node.Decode(&e.value); err != nil {
		return fmt.Errorf("unmarshal strong typedef: %w", err)
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler using the representation's
// default formatting.
func (e Encoded[Tag, T]) MarshalText() ([]byte, error) {
	return fmt.Appendf(nil, "%v", e.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. String-kind
// representations take the text verbatim, mirroring MarshalText; other
// representations are scanned and must consume the whole input.
func (e *Encoded[Tag, T]) UnmarshalText(text []byte) error {
	rv := reflect.ValueOf(&e.value).Elem()
	if rv.Kind() == reflect.String {
		rv.SetString(string(text))
		return nil
	}
	r := strings.NewReader(string(text))
	if _, err := fmt.Fscan(r, &e.value); err != nil {
		return fmt.Errorf("unmarshal strong typedef text: %w", err)
	}
	if rem := r.Len(); rem > 0 {
		if rest := text[len(text)-rem:]; len(bytes.TrimSpace(rest)) > 0 {
			return fmt.Errorf("unmarshal strong typedef text: trailing %q", rest)
		}
	}
	return nil
}
