package gtable

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// MaxSnapshotSize is the maximum allowed snapshot size (100MB).
const MaxSnapshotSize = 100 * 1024 * 1024

// SnapshotVersion is the current snapshot format version.
const SnapshotVersion = "1.0"

// Snapshot errors.
var (
	// ErrSnapshotTooLarge is returned when a snapshot exceeds MaxSnapshotSize.
	ErrSnapshotTooLarge = errors.New("gtable: snapshot exceeds 100MB size limit")

	// ErrUnsupportedVersion is returned when reading a snapshot with unknown version.
	ErrUnsupportedVersion = errors.New("gtable: unsupported snapshot version")
)

var supportedVersions = map[string]bool{
	"1.0": true,
}

// TableSnapshot is a point-in-time capture of a table's structure.
type TableSnapshot struct {
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
	tableDescription
}

// SnapshotOption configures snapshot creation behavior.
type SnapshotOption func(*snapshotConfig)

type snapshotConfig struct {
	excludeOptions []string
}

// WithExcludeOptions leaves the named table options out of the snapshot.
// Matching is case-insensitive.
func WithExcludeOptions(names ...string) SnapshotOption {
	return func(cfg *snapshotConfig) {
		cfg.excludeOptions = append(cfg.excludeOptions, names...)
	}
}

// CreateSnapshot captures the current structure of t.
func CreateSnapshot(t *Table, opts ...SnapshotOption) (*TableSnapshot, error) {
	if !t.initialized() {
		return nil, ErrNilTable
	}

	cfg := &snapshotConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	desc := describe(t)
	for _, name := range cfg.excludeOptions {
		for key := range desc.Options {
			if strings.EqualFold(key, name) {
				delete(desc.Options, key)
			}
		}
	}

	return &TableSnapshot{
		Version:          SnapshotVersion,
		Timestamp:        time.Now().UTC(),
		tableDescription: desc,
	}, nil
}

// ExpandPathWithTime replaces every {{timestamp}} in template with t
// formatted as 20060102-150405 (UTC).
func ExpandPathWithTime(template string, t time.Time) string {
	return strings.ReplaceAll(template, "{{timestamp}}", t.UTC().Format("20060102-150405"))
}

// WriteSnapshot persists a snapshot atomically. {{timestamp}} in pathTemplate
// expands to the snapshot's own timestamp, so file name and content agree.
// It returns the path written.
func WriteSnapshot(snapshot *TableSnapshot, pathTemplate string) (string, error) {
	if snapshot == nil {
		return "", ErrNilTable
	}

	targetPath := ExpandPathWithTime(pathTemplate, snapshot.Timestamp)

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", err
	}
	if len(data) > MaxSnapshotSize {
		return "", ErrSnapshotTooLarge
	}

	if dir := filepath.Dir(targetPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return "", err
		}
	}

	tempPath, err := generateTempFileName(targetPath)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(tempPath, data, 0o600); err != nil {
		return "", err
	}
	if err := os.Rename(tempPath, targetPath); err != nil {
		_ = os.Remove(tempPath)
		return "", err
	}
	return targetPath, nil
}

// ReadSnapshot loads a snapshot written by WriteSnapshot.
func ReadSnapshot(path string) (*TableSnapshot, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > MaxSnapshotSize {
		return nil, ErrSnapshotTooLarge
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var snap TableSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", path, err)
	}
	if !supportedVersions[snap.Version] {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVersion, snap.Version)
	}
	return &snap, nil
}

// generateTempFileName returns targetPath + ".tmp." + 16 random hex chars,
// in the target's directory so the final rename stays on one filesystem.
func generateTempFileName(targetPath string) (string, error) {
	randomBytes := make([]byte, 8)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", err
	}
	return targetPath + ".tmp." + hex.EncodeToString(randomBytes), nil
}
