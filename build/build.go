// Package build drives one package build: source discovery, frontend
// compilation, constraint synthesis, circuit serialization and the
// checksum-based change decision.
package build

import (
	"fmt"
	"time"

	"github.com/leo-lang/leo-go/checksum"
	"github.com/leo-lang/leo-go/circuit"
	"github.com/leo-lang/leo-go/field"
	"github.com/leo-lang/leo-go/frontend"
	"github.com/leo-lang/leo-go/frontend/minleo"
	"github.com/leo-lang/leo-go/logger"
	"github.com/leo-lang/leo-go/packfs"
	"github.com/leo-lang/leo-go/synthesizer"
)

// Result is the outcome of a successful build of a package with a main
// source file.
type Result struct {
	Program frontend.Program

	// Checksum is the digest of the compiled program.
	Checksum string

	// ChecksumChanged reports whether downstream proving artifacts need
	// regeneration. It is true on a first build or whenever the stored
	// checksum differs.
	ChecksumChanged bool
}

type config struct {
	frontend          frontend.Frontend
	skipCircuitVerify bool
}

type Option func(*config)

// WithFrontend overrides the default frontend.
func WithFrontend(fe frontend.Frontend) Option {
	return func(c *config) { c.frontend = fe }
}

// WithSkipCircuitVerify disables the decode-after-encode consistency check
// on the persisted circuit. The check guards against codec drift and is not
// required for build correctness.
func WithSkipCircuitVerify() Option {
	return func(c *config) { c.skipCircuitVerify = true }
}

// Run builds the package rooted at root. It returns (nil, nil) when the
// package has no main source file; such packages are valid and simply
// produce no circuit. Any stage failure aborts the build; files written by
// earlier stages are left in place.
func Run(root string, opts ...Option) (*Result, error) {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	log := logger.Logger()
	start := time.Now()

	manifest, err := packfs.LoadManifest(root)
	if err != nil {
		return nil, err
	}
	packageName := manifest.Package.Name

	f, err := field.GetFieldFromName(manifest.Package.Curve)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", packageName, err)
	}

	fe := cfg.frontend
	if fe == nil {
		fe = minleo.NewCompiler(f)
	}

	layout := packfs.NewLayout(root, packageName)

	// Library file first; compiled only to validate, the result is
	// discarded.
	if layout.HasLibrary() {
		log.Info().Str("path", layout.LibraryFile()).Msg("compiling library file")
		if _, err := fe.CompileWithoutInput(packageName, layout.LibraryFile(), layout.OutputsDirectory()); err != nil {
			return nil, fmt.Errorf("compile library: %w", err)
		}
	}

	// A package without a main file is valid (e.g. published as a
	// library); there is nothing to build.
	if !layout.HasMain() {
		log.Info().Str("package", packageName).Msg("no main file, nothing to build")
		return nil, nil
	}

	if err := packfs.CreateOutputsDirectory(layout); err != nil {
		return nil, fmt.Errorf("create outputs directory: %w", err)
	}

	inputText, err := packfs.ReadInput(layout)
	if err != nil {
		return nil, fmt.Errorf("read input file: %w", err)
	}
	stateText, err := packfs.ReadState(layout)
	if err != nil {
		return nil, fmt.Errorf("read state file: %w", err)
	}

	log.Info().Str("path", layout.MainFile()).Msg("compiling program file")
	program, err := fe.CompileWithInput(packageName, layout.MainFile(), layout.OutputsDirectory(), inputText, stateText)
	if err != nil {
		return nil, fmt.Errorf("compile main: %w", err)
	}

	// Synthesize on a copy so the returned program is untouched by
	// evaluation.
	syn := synthesizer.New(f)
	if err := program.Clone().CompileConstraints(syn); err != nil {
		return nil, err
	}
	log.Debug().Int("nbConstraints", syn.NumConstraints()).Msg("synthesized constraints")

	serialized := circuit.FromSystem(syn.System(), f)
	text, err := serialized.Encode()
	if err != nil {
		return nil, err
	}
	if err := packfs.WriteCircuit(layout, text); err != nil {
		return nil, fmt.Errorf("write circuit file: %w", err)
	}

	if !cfg.skipCircuitVerify {
		if err := verifyCircuitFile(layout, syn.NumConstraints()); err != nil {
			return nil, err
		}
	}

	sum, err := program.Checksum()
	if err != nil {
		return nil, fmt.Errorf("program checksum: %w", err)
	}

	store := checksum.NewStore(layout.ChecksumFile())
	cmp, err := store.Compare(sum)
	if err != nil {
		return nil, fmt.Errorf("read checksum file: %w", err)
	}
	changed := cmp.Changed()
	if changed {
		if err := store.Write(sum); err != nil {
			return nil, fmt.Errorf("write checksum file: %w", err)
		}
		log.Debug().Str("package", packageName).Msg("checksum saved")
	}

	log.Info().Dur("took", time.Since(start)).Str("package", packageName).Msg("finished")
	return &Result{Program: program, Checksum: sum, ChecksumChanged: changed}, nil
}

// verifyCircuitFile reads back the just-written artifact and checks it
// decodes into a structurally equivalent system. This catches codec drift
// at build time instead of at proving time.
func verifyCircuitFile(layout packfs.Layout, wantConstraints int) error {
	raw, err := packfs.ReadCircuit(layout)
	if err != nil {
		return fmt.Errorf("read back circuit file: %w", err)
	}
	decoded, err := circuit.Decode(raw)
	if err != nil {
		return err
	}
	cs, _, err := decoded.ToSystem()
	if err != nil {
		return err
	}
	if cs.NumConstraints() != wantConstraints {
		return &circuit.DecodeError{Reason: fmt.Sprintf(
			"round-trip constraint count mismatch: got %d, want %d",
			cs.NumConstraints(), wantConstraints)}
	}
	return nil
}
