package packfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLayoutPaths(t *testing.T) {
	l := NewLayout("/tmp/pkg", "demo")

	require.Equal(t, "/tmp/pkg", l.Root())
	require.Equal(t, "demo", l.PackageName())
	require.Equal(t, filepath.Join("/tmp/pkg", "src", "lib.leo"), l.LibraryFile())
	require.Equal(t, filepath.Join("/tmp/pkg", "src", "main.leo"), l.MainFile())
	require.Equal(t, filepath.Join("/tmp/pkg", "demo.in"), l.InputFile())
	require.Equal(t, filepath.Join("/tmp/pkg", "demo.state"), l.StateFile())
	require.Equal(t, filepath.Join("/tmp/pkg", "outputs"), l.OutputsDirectory())
	require.Equal(t, filepath.Join("/tmp/pkg", "outputs", "demo.circuit.json"), l.CircuitFile())
	require.Equal(t, filepath.Join("/tmp/pkg", "outputs", "demo.checksum"), l.ChecksumFile())
}

func TestLayoutTruncatesFileRoot(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "Leo.toml")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	l := NewLayout(file, "demo")
	require.Equal(t, dir, l.Root())
}

func TestExistenceChecks(t *testing.T) {
	dir := t.TempDir()
	l := NewLayout(dir, "demo")

	require.False(t, l.HasLibrary())
	require.False(t, l.HasMain())

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0o755))
	require.NoError(t, os.WriteFile(l.MainFile(), []byte("// empty"), 0o644))

	require.False(t, l.HasLibrary())
	require.True(t, l.HasMain())
}

func TestCreateOutputsDirectoryIsIdempotent(t *testing.T) {
	l := NewLayout(t.TempDir(), "demo")

	require.NoError(t, CreateOutputsDirectory(l))
	require.NoError(t, CreateOutputsDirectory(l))

	info, err := os.Stat(l.OutputsDirectory())
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestReadInputAbsentYieldsEmpty(t *testing.T) {
	l := NewLayout(t.TempDir(), "demo")

	text, err := ReadInput(l)
	require.NoError(t, err)
	require.Equal(t, "", text)

	text, err = ReadState(l)
	require.NoError(t, err)
	require.Equal(t, "", text)
}

func TestReadInputContent(t *testing.T) {
	dir := t.TempDir()
	l := NewLayout(dir, "demo")
	require.NoError(t, os.WriteFile(l.InputFile(), []byte("a = 5\n"), 0o644))

	text, err := ReadInput(l)
	require.NoError(t, err)
	require.Equal(t, "a = 5\n", text)
}

func TestCircuitFileRoundTrip(t *testing.T) {
	l := NewLayout(t.TempDir(), "demo")
	require.NoError(t, CreateOutputsDirectory(l))

	require.NoError(t, WriteCircuit(l, `{"at":[]}`))
	text, err := ReadCircuit(l)
	require.NoError(t, err)
	require.Equal(t, `{"at":[]}`, text)
}
