package series

import (
	"encoding/json"
	"os"

	"github.com/chartkit/chartkit/pkg/errors"
)

// =============================================================================
// JSON Codec
// =============================================================================

// Marshal encodes a series as indented JSON.
func Marshal(s Series) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to encode series")
	}
	return data, nil
}

// Unmarshal decodes and validates a JSON series.
func Unmarshal(data []byte) (Series, error) {
	var s Series
	if err := json.Unmarshal(data, &s); err != nil {
		return Series{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "invalid series JSON")
	}
	if err := s.Validate(); err != nil {
		return Series{}, err
	}
	return s, nil
}

// ReadFile loads and validates a JSON series file.
func ReadFile(path string) (Series, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Series{}, errors.Wrap(errors.ErrCodeNotFound, err, "failed to read series file %q", path)
	}
	return Unmarshal(data)
}

// WriteFile writes a series as an indented JSON file.
func WriteFile(path string, s Series) error {
	data, err := Marshal(s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to write series file %q", path)
	}
	return nil
}
