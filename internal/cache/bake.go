// Package cache bakes parsed spec index pairs to disk so later runs can
// skip OpenAPI parsing entirely.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/linode/legacy-to-techdocs/internal/spec"
)

// FormatVersion is bumped whenever the baked layout changes; caches with a
// different version are ignored.
const FormatVersion = 1

// Header identifies a baked cache and the spec files it was built from.
type Header struct {
	Version   int       `json:"version"`
	BuildID   string    `json:"buildId"`
	CreatedAt time.Time `json:"createdAt"`
	Sources   []Source  `json:"sources,omitempty"`
}

// Source fingerprints one input spec file.
type Source struct {
	Path    string    `json:"path"`
	ModTime time.Time `json:"modTime"`
	SHA256  string    `json:"sha256"`
}

// Bundle is the on-disk form: a header plus both condensed indexes.
type Bundle struct {
	Header Header      `json:"header"`
	Legacy *spec.Index `json:"legacy"`
	Target *spec.Index `json:"target"`
}

// Bake serializes the index pair to path. sources are the spec files the
// indexes were built from; their fingerprints drive staleness checks.
func Bake(path string, legacy, target *spec.Index, sources ...string) error {
	header := Header{
		Version:   FormatVersion,
		BuildID:   uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}

	for _, src := range sources {
		fp, err := fingerprint(src)
		if err != nil {
			return fmt.Errorf("fingerprinting %s: %w", src, err)
		}
		header.Sources = append(header.Sources, fp)
	}

	data, err := json.Marshal(Bundle{Header: header, Legacy: legacy, Target: target})
	if err != nil {
		return fmt.Errorf("encoding baked cache: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing baked cache: %w", err)
	}

	return nil
}

// Load reads a baked cache and rebuilds the index lookup tables. The header
// version is sniffed before decoding the full document so incompatible
// caches are rejected cheaply.
func Load(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	version := gjson.GetBytes(data, "header.version")
	if !version.Exists() || version.Int() != FormatVersion {
		return nil, fmt.Errorf("baked cache %s has unsupported format version %s", path, version.Raw)
	}

	var bundle Bundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return nil, fmt.Errorf("decoding baked cache %s: %w", path, err)
	}
	if bundle.Legacy == nil || bundle.Target == nil {
		return nil, fmt.Errorf("baked cache %s is missing an index", path)
	}

	if err := bundle.Legacy.Reindex(); err != nil {
		return nil, fmt.Errorf("rebuilding legacy index: %w", err)
	}
	if err := bundle.Target.Reindex(); err != nil {
		return nil, fmt.Errorf("rebuilding new index: %w", err)
	}

	return &bundle, nil
}

// LoadIfFresh returns the baked bundle when the cache exists and is newer
// than every given source spec. A missing or stale cache returns (nil, nil);
// a corrupt cache returns an error so callers can warn and re-parse.
func LoadIfFresh(path string, sources ...string) (*Bundle, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil
	}

	for _, src := range sources {
		srcInfo, err := os.Stat(src)
		if err != nil {
			continue
		}
		if srcInfo.ModTime().After(info.ModTime()) {
			return nil, nil
		}
	}

	return Load(path)
}

func fingerprint(path string) (Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Source{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Source{}, err
	}
	sum := sha256.Sum256(data)
	return Source{
		Path:    path,
		ModTime: info.ModTime().UTC(),
		SHA256:  hex.EncodeToString(sum[:]),
	}, nil
}
