package packfs

import "os"

// CreateOutputsDirectory creates the outputs directory. It is idempotent:
// an already existing directory is not an error.
func CreateOutputsDirectory(l Layout) error {
	return os.MkdirAll(l.OutputsDirectory(), 0o755)
}

// ReadInput returns the package's input text, or "" when no input file
// exists.
func ReadInput(l Layout) (string, error) {
	return readOptional(l.InputFile())
}

// ReadState returns the package's state text, or "" when no state file
// exists.
func ReadState(l Layout) (string, error) {
	return readOptional(l.StateFile())
}

func readOptional(path string) (string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteCircuit persists the serialized circuit artifact, overwriting any
// previous build's.
func WriteCircuit(l Layout, text string) error {
	return os.WriteFile(l.CircuitFile(), []byte(text), 0o644)
}

// ReadCircuit reads back the persisted circuit artifact.
func ReadCircuit(l Layout) (string, error) {
	data, err := os.ReadFile(l.CircuitFile())
	if err != nil {
		return "", err
	}
	return string(data), nil
}
