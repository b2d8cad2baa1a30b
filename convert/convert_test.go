package convert

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

func TestTypeMatchesImpliedType(t *testing.T) {
	typ, err := gocty.ImpliedType(parts{})
	require.NoError(t, err)

	require.True(t, Type.Equals(typ))
}

func TestPartsToCtyValueCreatesObject(t *testing.T) {
	val, err := PartsToCtyValue(3, -4)
	require.NoError(t, err)

	require.True(t, val.Type().Equals(Type))

	re, _ := val.GetAttr("re").AsBigFloat().Float64()
	im, _ := val.GetAttr("im").AsBigFloat().Float64()
	require.Equal(t, 3.0, re)
	require.Equal(t, -4.0, im)
}

func TestPartsToCtyValueKeepsInfinity(t *testing.T) {
	val, err := PartsToCtyValue(math.Inf(1), 0)
	require.NoError(t, err)

	require.True(t, val.GetAttr("re").Equals(cty.PositiveInfinity).True())
}

func TestPartsToCtyValueWithNaNReturnsError(t *testing.T) {
	_, err := PartsToCtyValue(math.NaN(), 1)
	require.Error(t, err)
	require.Contains(t, err.Error(), "NaN")
}

func TestCtyValueToPartsReadsAttributes(t *testing.T) {
	val := cty.ObjectVal(map[string]cty.Value{
		"re": cty.NumberFloatVal(1.5),
		"im": cty.NumberIntVal(2),
	})

	re, im, err := CtyValueToParts(val)
	require.NoError(t, err)

	require.Equal(t, 1.5, re)
	require.Equal(t, 2.0, im)
}

func TestCtyValueToPartsRoundTripsInfinity(t *testing.T) {
	val, err := PartsToCtyValue(1, math.Inf(-1))
	require.NoError(t, err)

	re, im, err := CtyValueToParts(val)
	require.NoError(t, err)

	require.Equal(t, 1.0, re)
	require.True(t, math.IsInf(im, -1))
}

func TestCtyValueToPartsWithNullReturnsError(t *testing.T) {
	_, _, err := CtyValueToParts(cty.NullVal(Type))
	require.Error(t, err)
}

func TestCtyValueToPartsWithUnknownReturnsError(t *testing.T) {
	_, _, err := CtyValueToParts(cty.UnknownVal(Type))
	require.Error(t, err)
}

func TestCtyValueToPartsWithMissingAttributeReturnsError(t *testing.T) {
	val := cty.ObjectVal(map[string]cty.Value{
		"re": cty.NumberIntVal(1),
	})

	_, _, err := CtyValueToParts(val)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unable to convert value to complex")
}

func TestCtyValueToPartsWithStringReturnsError(t *testing.T) {
	_, _, err := CtyValueToParts(cty.StringVal("1+2i"))
	require.Error(t, err)
}
