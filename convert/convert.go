package convert

import (
	"fmt"
	"math"

	"github.com/hashicorp/errwrap"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Type is the cty object type used to carry a complex value
var Type = cty.Object(map[string]cty.Type{
	"re": cty.Number,
	"im": cty.Number,
})

type parts struct {
	Re float64 `cty:"re"`
	Im float64 `cty:"im"`
}

// PartsToCtyValue builds an object value with the attributes re and im.
// cty numbers can not hold NaN so a NaN part returns an error, infinities
// are kept.
func PartsToCtyValue(re, im float64) (cty.Value, error) {
	if math.IsNaN(re) || math.IsNaN(im) {
		return cty.NullVal(Type), fmt.Errorf("value (%v, %v) can not be represented, NaN is not a valid number", re, im)
	}

	return cty.ObjectVal(map[string]cty.Value{
		"re": cty.NumberFloatVal(re),
		"im": cty.NumberFloatVal(im),
	}), nil
}

// CtyValueToParts reads the re and im attributes from an object value
func CtyValueToParts(val cty.Value) (float64, float64, error) {
	if val.IsNull() {
		return 0, 0, fmt.Errorf("unable to convert value to complex: value is null")
	}

	if !val.IsWhollyKnown() {
		return 0, 0, fmt.Errorf("unable to convert value to complex: value is not known")
	}

	p := parts{}
	err := gocty.FromCtyValue(val, &p)
	if err != nil {
		return 0, 0, errwrap.Wrapf("unable to convert value to complex: {{err}}", err)
	}

	return p.Re, p.Im, nil
}
