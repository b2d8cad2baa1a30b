package hclcomplex

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/jumppad-labs/hclcomplex/convert"
	"github.com/jumppad-labs/hclcomplex/errors"
	"github.com/jumppad-labs/hclcomplex/logger"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/gocty"
)

// EvalContext returns an HCL evaluation context containing the complex
// functions and the variable i set to the imaginary unit
func EvalContext(l logger.Logger) *hcl.EvalContext {
	i, _ := New(0, 1).CtyValue()

	return &hcl.EvalContext{
		Functions: Functions(l),
		Variables: map[string]cty.Value{
			"i": i,
		},
	}
}

// CtyValue converts c to a cty object with the attributes re and im
func (c Complex) CtyValue() (cty.Value, error) {
	return convert.PartsToCtyValue(c.Re, c.Im)
}

// FromCtyValue converts a cty object with the attributes re and im to a Complex
func FromCtyValue(val cty.Value) (Complex, error) {
	re, im, err := convert.CtyValueToParts(val)
	if err != nil {
		return Complex{}, err
	}

	return New(re, im), nil
}

// Functions returns the complex functions keyed by the name they are called
// with from HCL, l may be nil
func Functions(l logger.Logger) map[string]function.Function {
	l = logger.Nop(l)

	var NewFunc = function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "re", Type: cty.Number},
			{Name: "im", Type: cty.Number},
		},
		Type: function.StaticReturnType(convert.Type),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			l.Debug("calling function", "name", "complex")

			var re, im float64
			if err := gocty.FromCtyValue(args[0], &re); err != nil {
				return cty.NullVal(retType), function.NewArgError(0, err)
			}

			if err := gocty.FromCtyValue(args[1], &im); err != nil {
				return cty.NullVal(retType), function.NewArgError(1, err)
			}

			return New(re, im).CtyValue()
		},
	})

	var FormatFunc = function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "value", Type: convert.Type},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			l.Debug("calling function", "name", "complex_format")

			c, err := FromCtyValue(args[0])
			if err != nil {
				return cty.NullVal(retType), function.NewArgError(0, err)
			}

			return cty.StringVal(c.String()), nil
		},
	})

	var CompareFunc = binaryFunc(l, "complex_cmp", cty.String, func(a, b Complex) (cty.Value, error) {
		return cty.StringVal(a.PartialCompare(b).String()), nil
	})

	funcs := map[string]function.Function{
		"complex":        NewFunc,
		"complex_add":    arithmeticFunc(l, "complex_add", Complex.Add),
		"complex_sub":    arithmeticFunc(l, "complex_sub", Complex.Sub),
		"complex_diff":   arithmeticFunc(l, "complex_diff", Complex.Difference),
		"complex_mul":    arithmeticFunc(l, "complex_mul", Complex.Mul),
		"complex_div":    arithmeticFunc(l, "complex_div", Complex.Div),
		"complex_eq":     predicateFunc(l, "complex_eq", Complex.Equal),
		"complex_ne":     predicateFunc(l, "complex_ne", Complex.NotEqual),
		"complex_lt":     predicateFunc(l, "complex_lt", Complex.Less),
		"complex_gt":     predicateFunc(l, "complex_gt", Complex.Greater),
		"complex_le":     predicateFunc(l, "complex_le", Complex.LessOrEqual),
		"complex_ge":     predicateFunc(l, "complex_ge", Complex.GreaterOrEqual),
		"complex_cmp":    CompareFunc,
		"complex_format": FormatFunc,
	}

	return funcs
}

func arithmeticFunc(l logger.Logger, name string, op func(a, b Complex) Complex) function.Function {
	return binaryFunc(l, name, convert.Type, func(a, b Complex) (cty.Value, error) {
		res := op(a, b)

		val, err := res.CtyValue()
		if err != nil {
			l.Error("unable to return result", "name", name, "re", res.Re, "im", res.Im)
			return cty.NullVal(convert.Type), errors.NewFunctionError(name, err.Error())
		}

		return val, nil
	})
}

func predicateFunc(l logger.Logger, name string, op func(a, b Complex) bool) function.Function {
	return binaryFunc(l, name, cty.Bool, func(a, b Complex) (cty.Value, error) {
		return cty.BoolVal(op(a, b)), nil
	})
}

// binaryFunc creates a function taking two complex objects a and b
func binaryFunc(l logger.Logger, name string, ret cty.Type, impl func(a, b Complex) (cty.Value, error)) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "a", Type: convert.Type},
			{Name: "b", Type: convert.Type},
		},
		Type: function.StaticReturnType(ret),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			l.Debug("calling function", "name", name)

			a, err := FromCtyValue(args[0])
			if err != nil {
				return cty.NullVal(retType), function.NewArgError(0, err)
			}

			b, err := FromCtyValue(args[1])
			if err != nil {
				return cty.NullVal(retType), function.NewArgError(1, err)
			}

			return impl(a, b)
		},
	})
}
