// FILE: lixenwraith/confighelper/decode.go
package confighelper

import (
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/mitchellh/mapstructure"
)

// decodeSection decodes the named top-level table of raw into target.
// A missing or null section leaves target untouched.
func decodeSection(raw map[string]any, name string, target any) error {
	section, exists := raw[name]
	if !exists || section == nil {
		return nil
	}

	sectionMap, ok := asStringMap(section)
	if !ok {
		return fmt.Errorf("section %q is not a table (type %T)", name, section)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		DecodeHook:       getDecodeHook(),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(sectionMap); err != nil {
		return fmt.Errorf("decode failed for section %q: %w", name, err)
	}

	return nil
}

// getDecodeHook returns the composite decode hook for section values
func getDecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		stringToConnectionStringHookFunc(),
		scalarToStringHookFunc(),
	)
}

// stringToConnectionStringHookFunc accepts the short form `Main = "Server=..."`
// for a connection string entry without a provider.
func stringToConnectionStringHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		if t != reflect.TypeOf(ConnectionString{}) {
			return data, nil
		}
		return ConnectionString{ConnectionString: reflect.ValueOf(data).String()}, nil
	}
}

// scalarToStringHookFunc renders hand-written non-string scalars the way they read in the file.
// Weak decoding alone would turn true into "1" and 1.5 into "1.5000".
func scalarToStringHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if t.Kind() != reflect.String {
			return data, nil
		}

		switch v := data.(type) {
		case bool:
			return strconv.FormatBool(v), nil
		case float32:
			return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64), nil
		case time.Time:
			return v.Format(time.RFC3339Nano), nil
		}
		return data, nil
	}
}
