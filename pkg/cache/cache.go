// Package cache provides caching for computed layouts and rendered
// artifacts.
//
// Two backends ship with the library: a file cache for CLI usage and a
// Redis cache for server deployments. A null cache disables caching
// without branching at the call sites.
package cache

import (
	"context"
	"time"
)

// TTL values for different cached content types.
const (
	// TTLLayout is how long computed layouts are cached. Layouts are
	// deterministic in their inputs, so this is generous.
	TTLLayout = 24 * time.Hour

	// TTLArtifact is how long rendered artifacts are cached.
	TTLArtifact = 24 * time.Hour
)

// Cache is the storage interface for cached bytes.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// LayoutKeyOpts are the layout options that affect the computed layout
// and therefore participate in the cache key.
type LayoutKeyOpts struct {
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Axes       string  `json:"axes"`
	FontSize   float64 `json:"font_size"`
	Steps      int     `json:"steps"`
	AnchorZero bool    `json:"anchor_zero"`
	Packed     bool    `json:"packed"`
}

// ArtifactKeyOpts are the render options that affect an artifact and
// therefore participate in the cache key.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
	Style  string `json:"style"`
	Title  string `json:"title,omitempty"`
}

// Keyer generates cache keys for the two cacheable pipeline stages.
type Keyer interface {
	// LayoutKey generates a key for a computed layout, keyed on the
	// series hash and the layout options.
	LayoutKey(seriesHash string, opts LayoutKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact, keyed on the
	// layout hash and the render options.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key generation strategy: a stage prefix
// plus a SHA-256 hash of the inputs.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// LayoutKey generates a key for layout caching.
func (k *DefaultKeyer) LayoutKey(seriesHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", seriesHash, opts)
}

// ArtifactKey generates a key for artifact caching.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
