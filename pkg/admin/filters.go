package admin

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"github.com/goliatone/go-admin/pkg/render/template/gotemplate"
	"github.com/goliatone/go-admin/pkg/views"
)

// Filters returns the template filters every admin template may use:
//
//	to_json       pretty JSON, non JSON values are stringified
//	is_dropdown   entry is a DropDown
//	is_form_view  entry is a FormView
//	is_link_view  entry is a LinkView
//	is_view       entry is routed (View or FormView)
//	is_scalar     value is a string, number, bool or nil
//	fmt_value     scalar formatting without float noise
func Filters() map[string]gotemplate.FilterFunc {
	return map[string]gotemplate.FilterFunc{
		"to_json":      filterToJSON,
		"is_dropdown":  kindFilter(views.KindDropDown),
		"is_form_view": kindFilter(views.KindFormView),
		"is_link_view": kindFilter(views.KindLink),
		"is_view":      kindFilter(views.KindView, views.KindFormView),
		"is_scalar":    filterIsScalar,
		"fmt_value":    filterFmtValue,
	}
}

func filterToJSON(input any, _ any) (any, error) {
	return ToJSON(input), nil
}

// ToJSON encodes v with two space indentation. Values JSON cannot encode are
// replaced by their fmt representation.
func ToJSON(v any) string {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		raw, err = json.MarshalIndent(jsonSafe(reflect.ValueOf(v)), "", "  ")
		if err != nil {
			return strconv.Quote(fmt.Sprint(v))
		}
	}
	return string(raw)
}

func jsonSafe(rv reflect.Value) any {
	if !rv.IsValid() {
		return nil
	}
	switch rv.Kind() {
	case reflect.Interface, reflect.Pointer:
		if rv.IsNil() {
			return nil
		}
		return jsonSafe(rv.Elem())
	case reflect.Map:
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = jsonSafe(iter.Value())
		}
		return out
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return nil
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = jsonSafe(rv.Index(i))
		}
		return out
	}

	if !rv.CanInterface() {
		return fmt.Sprint(rv)
	}
	value := rv.Interface()
	if _, err := json.Marshal(value); err != nil {
		return fmt.Sprint(value)
	}
	return value
}

func kindFilter(kinds ...views.Kind) gotemplate.FilterFunc {
	return func(input any, _ any) (any, error) {
		kind, ok := kindOf(input)
		if !ok {
			return false, nil
		}
		for _, want := range kinds {
			if kind == want {
				return true, nil
			}
		}
		return false, nil
	}
}

// kindOf accepts entries and their template projection.
func kindOf(input any) (views.Kind, bool) {
	switch v := input.(type) {
	case views.Entry:
		if v == nil {
			return "", false
		}
		return v.Kind(), true
	case map[string]any:
		name, _ := v["kind"].(string)
		kind, err := views.ParseKind(name)
		return kind, err == nil
	default:
		return "", false
	}
}

func filterIsScalar(input any, _ any) (any, error) {
	switch input.(type) {
	case nil, string, bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64, json.Number:
		return true, nil
	default:
		return false, nil
	}
}

func filterFmtValue(input any, _ any) (any, error) {
	switch v := input.(type) {
	case nil:
		return "", nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	case string:
		return v, nil
	default:
		return fmt.Sprint(v), nil
	}
}
