package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/matzehuels/scoresheet/pkg/render/sheet/layout"
)

// Keyer derives cache keys from render inputs.
type Keyer interface {
	// ArtifactKey returns the key of the sheet rendered from the chart
	// with the given content hash.
	ArtifactKey(chartHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts holds every render input besides the chart itself.
type ArtifactKeyOpts struct {
	Format string          `json:"format"`
	Layout layout.Settings `json:"layout"`
	// FontHash is the content hash of a custom metadata font, empty for
	// the embedded face.
	FontHash   string  `json:"font_hash,omitempty"`
	FontSize   float64 `json:"font_size"`
	NoMetadata bool    `json:"no_metadata,omitempty"`
}

// DefaultKeyer hashes the key inputs with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey returns "artifact:<sha256>" over the chart hash and opts.
func (DefaultKeyer) ArtifactKey(chartHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", chartHash, opts)
}

var _ Keyer = DefaultKeyer{}

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey returns "<prefix>:<sha256>" over the JSON encoding of parts.
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return prefix + ":" + Hash(data)
}
