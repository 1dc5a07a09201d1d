package hcl_adapter

import (
	"fmt"
	"math/big"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// exprToID evaluates a parent reference. Strings and numbers are accepted so
// that `parent = 1` and `parent = "1"` mean the same thing.
func exprToID(expr hcl.Expression) (string, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return "", diags
	}
	if val.IsNull() {
		return "", fmt.Errorf("must not be null")
	}
	strVal, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("must be a string or number, got %s", val.Type().FriendlyName())
	}
	var id string
	if err := gocty.FromCtyValue(strVal, &id); err != nil {
		return "", err
	}
	return id, nil
}

// ctyToNative converts a fully known cty.Value into plain Go values:
// string, int64 or float64, bool, []any and map[string]any.
func ctyToNative(val cty.Value) (any, error) {
	if val.IsNull() {
		return nil, nil
	}
	if !val.IsKnown() {
		return nil, fmt.Errorf("value is not known")
	}

	ty := val.Type()
	switch {
	case ty == cty.String:
		return val.AsString(), nil
	case ty == cty.Bool:
		return val.True(), nil
	case ty == cty.Number:
		bf := val.AsBigFloat()
		if bf.IsInt() {
			if i, acc := bf.Int64(); acc == big.Exact {
				return i, nil
			}
		}
		f, _ := bf.Float64()
		return f, nil
	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		out := []any{}
		for it := val.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			native, err := ctyToNative(elem)
			if err != nil {
				return nil, err
			}
			out = append(out, native)
		}
		return out, nil
	case ty.IsMapType() || ty.IsObjectType():
		out := map[string]any{}
		for key, elem := range val.AsValueMap() {
			native, err := ctyToNative(elem)
			if err != nil {
				return nil, fmt.Errorf("in key %q: %w", key, err)
			}
			out[key] = native
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported value type %s", ty.FriendlyName())
	}
}
