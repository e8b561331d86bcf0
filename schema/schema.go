package schema

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Type is the inferred primitive type of a flattened field.
type Type string

const (
	Boolean Type = "boolean"
	Integer Type = "integer"
	Number  Type = "number"
	Date    Type = "date"
	String  Type = "string"
	Null    Type = "null"
)

// Field describes one leaf of a flattened value.
type Field struct {
	// Name is the last path segment, or the full path for top-level leaves.
	Name string
	// Path locates the leaf from the value root, e.g. ".specs.color" or
	// "[2].id". The empty path means the value itself is a leaf.
	Path string
	// Type is the inferred primitive type.
	Type Type
	// Nullable reports whether the observed value was null.
	Nullable bool
	// Example holds the value observed at this leaf.
	Example any
	// Confidence is the fixed confidence assigned to inferred types.
	Confidence float64
}

// TypeConfidence is assigned to every inferred field type. Inference looks
// at a single observed value, so it is never reported as certain.
const TypeConfidence = 0.95

var datePrefixRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

// Flatten walks v and returns one Field per leaf value. Nested maps extend
// the path with ".key", slices with "[i]". Maps are visited in sorted key
// order, so two calls with equal input produce identical output.
func Flatten(v any) []Field {
	var fields []Field
	walk(v, "", &fields)
	return fields
}

func walk(v any, path string, fields *[]Field) {
	switch val := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			walk(val[k], path+"."+k, fields)
		}
	case []any:
		for i, item := range val {
			walk(item, fmt.Sprintf("%s[%d]", path, i), fields)
		}
	default:
		*fields = append(*fields, leaf(val, path))
	}
}

func leaf(v any, path string) Field {
	t := inferType(v)
	return Field{
		Name:       fieldName(path),
		Path:       path,
		Type:       t,
		Nullable:   t == Null,
		Example:    v,
		Confidence: TypeConfidence,
	}
}

// fieldName returns the last dotted segment of the path, with any index
// suffix removed. A path with no key segments yields the path itself.
func fieldName(path string) string {
	if i := strings.LastIndex(path, "."); i >= 0 {
		path = path[i+1:]
	}
	if i := strings.IndexByte(path, '['); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return "value"
	}
	return path
}

func inferType(v any) Type {
	switch val := v.(type) {
	case nil:
		return Null
	case bool:
		return Boolean
	case json.Number:
		if _, err := val.Int64(); err == nil {
			return Integer
		}
		return Number
	case int, int64:
		return Integer
	case float64:
		return Number
	case string:
		if datePrefixRe.MatchString(val) {
			return Date
		}
		return String
	default:
		return String
	}
}
