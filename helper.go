// File: lixenwraith/confighelper/helper.go
package confighelper

import (
	"fmt"
	"sort"
	"strings"
)

// MaxKeyDepth is the deepest JSON key path accepted by SetJSONValue and GetJSONValue.
const MaxKeyDepth = 5

// KeyPathSeparator separates segments of a JSON key path.
const KeyPathSeparator = ":"

// isBlank reports whether a key is empty or whitespace only.
func isBlank(key string) bool {
	return strings.TrimSpace(key) == ""
}

// requireKey rejects blank keys for write operations.
func requireKey(key string) error {
	if isBlank(key) {
		return fmt.Errorf("%w: key cannot be empty", ErrInvalidArgument)
	}
	return nil
}

// SplitKeyPath splits a colon-delimited key path into its segments.
// Segments are case-sensitive and there is no escape for a literal colon.
func SplitKeyPath(keyPath string) ([]string, error) {
	if keyPath == "" {
		return nil, fmt.Errorf("%w: key path cannot be empty", ErrInvalidArgument)
	}

	segments := strings.Split(keyPath, KeyPathSeparator)
	if len(segments) > MaxKeyDepth {
		return nil, fmt.Errorf("%w: key depth of %d exceeds the maximum of %d",
			ErrInvalidArgument, len(segments), MaxKeyDepth)
	}
	return segments, nil
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// asStringMap normalizes a decoded nested table to map[string]any.
// YAML may hand back map[any]any for tables with non-string keys.
func asStringMap(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case map[string]any:
		return v, true
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}
