package build

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/leo-lang/leo-go/frontend"
	"github.com/leo-lang/leo-go/packfs"
)

const trivialMain = "let x = 2 * 3;\nassert x == 6;\n"

func newPackage(t *testing.T, name string) string {
	t.Helper()
	dir := t.TempDir()
	manifest := "[package]\nname = \"" + name + "\"\nversion = \"0.1.0\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, packfs.ManifestFileName), []byte(manifest), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0o755))
	return dir
}

func writeMain(t *testing.T, dir, src string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "main.leo"), []byte(src), 0o644))
}

func writeLibrary(t *testing.T, dir, src string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "lib.leo"), []byte(src), 0o644))
}

func TestBuildWithoutMainReturnsNone(t *testing.T) {
	dir := newPackage(t, "demo")

	res, err := Run(dir)
	require.NoError(t, err)
	require.Nil(t, res)

	// a publish-only package leaves no outputs directory behind
	_, err = os.Stat(filepath.Join(dir, "outputs"))
	require.True(t, os.IsNotExist(err))
}

func TestFirstBuildReportsChanged(t *testing.T) {
	dir := newPackage(t, "demo")
	writeMain(t, dir, trivialMain)

	res, err := Run(dir)
	require.NoError(t, err)
	require.NotNil(t, res)
	require.True(t, res.ChecksumChanged)
	require.NotNil(t, res.Program)

	layout := packfs.NewLayout(dir, "demo")
	require.FileExists(t, layout.CircuitFile())
	require.FileExists(t, layout.ChecksumFile())
}

func TestRebuildUnchangedReportsUnchanged(t *testing.T) {
	dir := newPackage(t, "demo")
	writeMain(t, dir, trivialMain)

	res, err := Run(dir)
	require.NoError(t, err)
	require.True(t, res.ChecksumChanged)

	layout := packfs.NewLayout(dir, "demo")
	before, err := os.ReadFile(layout.ChecksumFile())
	require.NoError(t, err)

	res, err = Run(dir)
	require.NoError(t, err)
	require.False(t, res.ChecksumChanged)

	after, err := os.ReadFile(layout.ChecksumFile())
	require.NoError(t, err)
	require.Equal(t, string(before), string(after))
}

func TestSourceChangeReportsChanged(t *testing.T) {
	dir := newPackage(t, "demo")
	writeMain(t, dir, trivialMain)

	first, err := Run(dir)
	require.NoError(t, err)

	writeMain(t, dir, "let x = 2 * 4;\nassert x == 8;\n")
	second, err := Run(dir)
	require.NoError(t, err)
	require.True(t, second.ChecksumChanged)
	require.NotEqual(t, first.Checksum, second.Checksum)
}

func TestBuildDeterministicChecksum(t *testing.T) {
	dir := newPackage(t, "demo")
	writeMain(t, dir, trivialMain)

	first, err := Run(dir)
	require.NoError(t, err)
	second, err := Run(dir)
	require.NoError(t, err)
	require.Equal(t, first.Checksum, second.Checksum)
}

func TestBuildWithInputFile(t *testing.T) {
	dir := newPackage(t, "demo")
	writeMain(t, dir, "input a;\nlet b = a * a;\nassert b == 25;\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "demo.in"), []byte("a = 5\n"), 0o644))

	res, err := Run(dir)
	require.NoError(t, err)
	require.True(t, res.ChecksumChanged)
}

func TestBuildCompilesLibraryFirst(t *testing.T) {
	dir := newPackage(t, "demo")
	writeLibrary(t, dir, "let helper = 1 + 1;\nassert helper == 2;\n")
	writeMain(t, dir, trivialMain)

	res, err := Run(dir)
	require.NoError(t, err)
	require.NotNil(t, res)
}

func TestLibraryErrorAbortsBeforeMain(t *testing.T) {
	dir := newPackage(t, "demo")
	writeLibrary(t, dir, "let ;")
	writeMain(t, dir, trivialMain)

	_, err := Run(dir)
	require.Error(t, err)
	var ce *frontend.CompileError
	require.ErrorAs(t, err, &ce)

	// main was never compiled, so no outputs directory was created
	_, statErr := os.Stat(filepath.Join(dir, "outputs"))
	require.True(t, os.IsNotExist(statErr))
}

func TestMainCompileErrorAborts(t *testing.T) {
	dir := newPackage(t, "demo")
	writeMain(t, dir, "assert ==;\n")

	_, err := Run(dir)
	var ce *frontend.CompileError
	require.ErrorAs(t, err, &ce)
}

func TestFailingAssertionAborts(t *testing.T) {
	dir := newPackage(t, "demo")
	writeMain(t, dir, "let x = 2 * 3;\nassert x == 7;\n")

	_, err := Run(dir)
	var se *frontend.SynthesisError
	require.ErrorAs(t, err, &se)
}

func TestMissingManifest(t *testing.T) {
	dir := t.TempDir()

	_, err := Run(dir)
	var me *packfs.ManifestError
	require.ErrorAs(t, err, &me)
}

func TestUnknownCurveInManifest(t *testing.T) {
	dir := t.TempDir()
	manifest := "[package]\nname = \"demo\"\ncurve = \"nope\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, packfs.ManifestFileName), []byte(manifest), 0o644))

	_, err := Run(dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown curve")
}

func TestSkipCircuitVerify(t *testing.T) {
	dir := newPackage(t, "demo")
	writeMain(t, dir, trivialMain)

	res, err := Run(dir, WithSkipCircuitVerify())
	require.NoError(t, err)
	require.NotNil(t, res)
	require.FileExists(t, packfs.NewLayout(dir, "demo").CircuitFile())
}

func TestBuildOnBn254(t *testing.T) {
	dir := t.TempDir()
	manifest := "[package]\nname = \"demo\"\ncurve = \"bn254\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, packfs.ManifestFileName), []byte(manifest), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0o755))
	writeMain(t, dir, trivialMain)

	res, err := Run(dir)
	require.NoError(t, err)
	require.True(t, res.ChecksumChanged)
}

// recordingFrontend wraps another frontend and records which entry points
// were used.
type recordingFrontend struct {
	inner            frontend.Frontend
	libraryCompiles  int
	mainCompiles     int
	failLibrary      bool
}

func (r *recordingFrontend) CompileWithoutInput(pkg, path, outputsDir string) (frontend.Program, error) {
	r.libraryCompiles++
	if r.failLibrary {
		return nil, &frontend.CompileError{Package: pkg, Path: path, Message: "boom"}
	}
	return r.inner.CompileWithoutInput(pkg, path, outputsDir)
}

func (r *recordingFrontend) CompileWithInput(pkg, path, outputsDir, input, state string) (frontend.Program, error) {
	r.mainCompiles++
	return r.inner.CompileWithInput(pkg, path, outputsDir, input, state)
}

func TestWithFrontendLibraryFailureSkipsMain(t *testing.T) {
	dir := newPackage(t, "demo")
	writeLibrary(t, dir, trivialMain)
	writeMain(t, dir, trivialMain)

	rec := &recordingFrontend{failLibrary: true}
	_, err := Run(dir, WithFrontend(rec))
	require.Error(t, err)
	require.Equal(t, 1, rec.libraryCompiles)
	require.Equal(t, 0, rec.mainCompiles)
}
