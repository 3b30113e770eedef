package packfs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ManifestFileName is the manifest's fixed name at the package root.
const ManifestFileName = "Leo.toml"

// Manifest identifies one package. It is loaded once per build and
// read-only afterwards.
type Manifest struct {
	Package PackageInfo `toml:"package"`
}

type PackageInfo struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
	// Curve names the scalar field the build targets; empty selects the
	// default.
	Curve string `toml:"curve"`
}

// ManifestError reports a missing or malformed package manifest.
type ManifestError struct {
	Path string
	Err  error
}

func (e *ManifestError) Error() string {
	return fmt.Sprintf("manifest %s: %v", e.Path, e.Err)
}

func (e *ManifestError) Unwrap() error { return e.Err }

// LoadManifest reads the manifest at the package root. dir may point at a
// file inside the package, in which case its directory is used.
func LoadManifest(dir string) (*Manifest, error) {
	path := filepath.Join(packageRoot(dir), ManifestFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ManifestError{Path: path, Err: err}
	}
	m := &Manifest{}
	if err := toml.Unmarshal(data, m); err != nil {
		return nil, &ManifestError{Path: path, Err: err}
	}
	if m.Package.Name == "" {
		return nil, &ManifestError{Path: path, Err: fmt.Errorf("missing package name")}
	}
	return m, nil
}
