package sandbox

import (
	"reflect"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/dop251/goja"
)

// formatArgs renders one console call: structured values as JSON,
// everything else via its string form, joined with single spaces.
func formatArgs(args []goja.Value) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = formatValue(arg)
	}
	return strings.Join(parts, " ")
}

func formatValue(v goja.Value) string {
	if v == nil || goja.IsUndefined(v) {
		return "undefined"
	}
	if goja.IsNull(v) {
		return "null"
	}
	if t := v.ExportType(); t != nil && isStructured(t.Kind()) {
		// Std-compatible config sorts map keys for stable output.
		if data, err := sonic.ConfigStd.Marshal(v.Export()); err == nil {
			return string(data)
		}
	}
	return v.String()
}

func isStructured(k reflect.Kind) bool {
	switch k {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		return true
	default:
		return false
	}
}
