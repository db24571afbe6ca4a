package version

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Build information (set during build with -ldflags -X)
var (
	// Fallback is reported when the package metadata cannot be read
	Fallback  = "2.6.2"
	BuildTime = "unknown"
	Commit    = "none"
)

// MetadataFile is the metadata file name looked up next to the install root
const MetadataFile = "package.json"

// Metadata holds the fields read from package metadata.
// package.json is valid YAML flow syntax, so one decoder covers both formats.
type Metadata struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// ReadMetadata loads and decodes the metadata file at path
func ReadMetadata(path string) (*Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata: %w", err)
	}

	var meta Metadata
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("failed to parse metadata %s: %w", path, err)
	}

	return &meta, nil
}

// Lookup returns the version recorded in the metadata at path.
// On any failure it returns Fallback together with the reason.
func Lookup(path string) (string, error) {
	meta, err := ReadMetadata(path)
	if err != nil {
		return Fallback, err
	}
	if meta.Version == "" {
		return Fallback, fmt.Errorf("metadata %s has no version field", path)
	}
	return meta.Version, nil
}

// Resolve is Lookup without the error
func Resolve(path string) string {
	v, _ := Lookup(path)
	return v
}

// DefaultMetadataPath returns <executable dir>/../package.json, mirroring
// an install layout of bin/leo next to package.json.
func DefaultMetadataPath() string {
	exe, err := os.Executable()
	if err != nil {
		return MetadataFile
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), "..", MetadataFile)
}

// GoVersion reports the toolchain the binary was built with
func GoVersion() string {
	return runtime.Version()
}
