package circuit

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/leo-lang/leo-go/expr"
	"github.com/leo-lang/leo-go/field"
	"github.com/leo-lang/leo-go/synthesizer"
)

func sampleSystem(t *testing.T) (*synthesizer.ConstraintSystem, field.Field) {
	t.Helper()
	f, err := field.GetFieldFromName("bls12-377")
	require.NoError(t, err)

	s := synthesizer.New(f)
	one := f.One()
	// v1 * v1 = v2
	s.AddConstraint(expr.NewLinear(1, one), expr.NewLinear(1, one), expr.NewLinear(2, one))
	// (v2 + 3) * 1 = v3
	s.AddConstraint(
		expr.LinearCombination{expr.NewTerm(0, f.FromInterface(3)), expr.NewTerm(2, one)},
		expr.NewConstant(one),
		expr.NewLinear(3, one),
	)
	s.AddInputAssignment(f.FromInterface(5))
	s.AddAuxAssignment(f.FromInterface(25))
	s.AddAuxAssignment(f.FromInterface(28))
	return s.System(), f
}

func TestRoundTrip(t *testing.T) {
	cs, f := sampleSystem(t)

	text, err := FromSystem(cs, f).Encode()
	require.NoError(t, err)

	decoded, err := Decode(text)
	require.NoError(t, err)

	got, gotField, err := decoded.ToSystem()
	require.NoError(t, err)
	require.Equal(t, f.Field(), gotField.Field())

	require.Equal(t, cs.NumConstraints(), got.NumConstraints())
	for i := 0; i < cs.NumConstraints(); i++ {
		require.True(t, cs.A[i].Equal(got.A[i]), "A[%d]", i)
		require.True(t, cs.B[i].Equal(got.B[i]), "B[%d]", i)
		require.True(t, cs.C[i].Equal(got.C[i]), "C[%d]", i)
	}
	require.Equal(t, cs.InputAssignment, got.InputAssignment)
	require.Equal(t, cs.AuxAssignment, got.AuxAssignment)
}

func TestEncodeIsSelfDescribing(t *testing.T) {
	cs, f := sampleSystem(t)
	text, err := FromSystem(cs, f).Encode()
	require.NoError(t, err)

	for _, name := range []string{`"field"`, `"num_constraints"`, `"at"`, `"bt"`, `"ct"`, `"input_assignment"`, `"aux_assignment"`} {
		require.Contains(t, text, name)
	}
}

func TestDecodeRejectsInvalidJSON(t *testing.T) {
	_, err := Decode("{not json")
	require.Error(t, err)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
}

func TestToSystemRejectsMisalignedMatrices(t *testing.T) {
	cs, f := sampleSystem(t)
	sc := FromSystem(cs, f)
	sc.A = sc.A[:1]

	_, _, err := sc.ToSystem()
	var de *DecodeError
	require.ErrorAs(t, err, &de)
}

func TestToSystemRejectsBadCoefficient(t *testing.T) {
	cs, f := sampleSystem(t)
	sc := FromSystem(cs, f)
	sc.B[0][0].Coefficient = "not-a-number"

	_, _, err := sc.ToSystem()
	var de *DecodeError
	require.ErrorAs(t, err, &de)
}

func TestToSystemRejectsUnknownField(t *testing.T) {
	cs, f := sampleSystem(t)
	sc := FromSystem(cs, f)
	sc.Field = "12345"

	_, _, err := sc.ToSystem()
	var de *DecodeError
	require.ErrorAs(t, err, &de)
}
