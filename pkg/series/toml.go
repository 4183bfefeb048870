package series

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/chartkit/chartkit/pkg/errors"
)

// =============================================================================
// TOML Manifest
// =============================================================================

// ManifestChart holds the chart options a manifest may set. Zero values
// mean "use the default".
type ManifestChart struct {
	Title      string  `toml:"title"`
	Width      float64 `toml:"width"`
	Height     float64 `toml:"height"`
	Axes       string  `toml:"axes"`
	FontSize   float64 `toml:"font_size"`
	Steps      int     `toml:"steps"`
	AnchorZero bool    `toml:"anchor_zero"`
	Packed     bool    `toml:"packed"`
	Style      string  `toml:"style"`
}

// Manifest is a self-contained chart description: options plus data in
// one TOML file.
type Manifest struct {
	Chart  ManifestChart `toml:"chart"`
	Points []Point       `toml:"points"`
}

// Series returns the manifest's data as a series.
func (m Manifest) Series() Series {
	return Series{Title: m.Chart.Title, Points: m.Points}
}

// DecodeManifest parses and validates a TOML manifest.
func DecodeManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return Manifest{}, errors.Wrap(errors.ErrCodeInvalidManifest, err, "invalid manifest TOML")
	}
	if err := m.Series().Validate(); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

// ReadManifest loads and validates a TOML manifest file.
func ReadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, errors.Wrap(errors.ErrCodeNotFound, err, "failed to read manifest %q", path)
	}
	return DecodeManifest(data)
}
