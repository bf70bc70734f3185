package persist

import (
	"bytes"
	"encoding/gob"
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/c360/history/errors"
)

// Codec turns snapshot values into bytes and back. Implementations must
// round-trip exactly: Unmarshal(Marshal(v)) reproduces v.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// Binary encodes with encoding/gob. Compact and fast, but Go-specific;
// use JSON or YAML when other tooling needs to read the files.
type Binary struct{}

func (Binary) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, errors.WrapInvalid(err, "Binary", "Marshal", "gob encoding")
	}
	return buf.Bytes(), nil
}

func (Binary) Unmarshal(data []byte, v any) error {
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(v); err != nil {
		return errors.WrapInvalid(errors.ErrInvalidEncoding, "Binary", "Unmarshal", err.Error())
	}
	return nil
}

// JSON encodes with encoding/json.
type JSON struct{}

func (JSON) Marshal(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.WrapInvalid(err, "JSON", "Marshal", "json encoding")
	}
	return data, nil
}

func (JSON) Unmarshal(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return errors.WrapInvalid(errors.ErrInvalidEncoding, "JSON", "Unmarshal", err.Error())
	}
	return nil
}

// YAML encodes with gopkg.in/yaml.v3.
type YAML struct{}

func (YAML) Marshal(v any) ([]byte, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, errors.WrapInvalid(err, "YAML", "Marshal", "yaml encoding")
	}
	return data, nil
}

func (YAML) Unmarshal(data []byte, v any) error {
	if err := yaml.Unmarshal(data, v); err != nil {
		return errors.WrapInvalid(errors.ErrInvalidEncoding, "YAML", "Unmarshal", err.Error())
	}
	return nil
}
