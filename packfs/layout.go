// Package packfs resolves the well-known locations inside one package
// directory and performs the build's file reads and writes.
package packfs

import (
	"os"
	"path/filepath"
)

const (
	SourceDirectoryName  = "src"
	OutputsDirectoryName = "outputs"

	LibraryFileName = "lib.leo"
	MainFileName    = "main.leo"

	InputFileExtension    = ".in"
	StateFileExtension    = ".state"
	CircuitFileExtension  = ".circuit.json"
	ChecksumFileExtension = ".checksum"
)

// Layout is a pure path computation over one package root. It never writes;
// the only filesystem access is boolean existence checks.
type Layout struct {
	root string
	name string
}

// NewLayout resolves the layout for a package. root may point at a file, in
// which case its parent directory is taken as the package root.
func NewLayout(root, packageName string) Layout {
	return Layout{root: packageRoot(root), name: packageName}
}

func packageRoot(path string) string {
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return filepath.Dir(path)
	}
	return path
}

func (l Layout) Root() string        { return l.root }
func (l Layout) PackageName() string { return l.name }

func (l Layout) LibraryFile() string {
	return filepath.Join(l.root, SourceDirectoryName, LibraryFileName)
}

func (l Layout) MainFile() string {
	return filepath.Join(l.root, SourceDirectoryName, MainFileName)
}

func (l Layout) InputFile() string {
	return filepath.Join(l.root, l.name+InputFileExtension)
}

func (l Layout) StateFile() string {
	return filepath.Join(l.root, l.name+StateFileExtension)
}

func (l Layout) OutputsDirectory() string {
	return filepath.Join(l.root, OutputsDirectoryName)
}

func (l Layout) CircuitFile() string {
	return filepath.Join(l.OutputsDirectory(), l.name+CircuitFileExtension)
}

func (l Layout) ChecksumFile() string {
	return filepath.Join(l.OutputsDirectory(), l.name+ChecksumFileExtension)
}

func (l Layout) HasLibrary() bool {
	return fileExists(l.LibraryFile())
}

func (l Layout) HasMain() bool {
	return fileExists(l.MainFile())
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
