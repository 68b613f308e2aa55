// FILE: lixenwraith/confighelper/jsonpath_test.go
package confighelper

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readJSONMap(t *testing.T, path string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out), string(data))
	return out
}

// TestSetJSONValueCoercion tests how Go values are written into the document
func TestSetJSONValueCoercion(t *testing.T) {
	store := newTestStore(t)

	cases := []struct {
		name  string
		value any
		want  string
	}{
		{"Int", 42, `{"a": 42}`},
		{"Int64", int64(-7), `{"a": -7}`},
		{"Uint8", uint8(255), `{"a": 255}`},
		{"BoolTrue", true, `{"a": true}`},
		{"BoolFalse", false, `{"a": false}`},
		{"String", "x", `{"a": "x"}`},
		{"Float", 3.14, `{"a": "3.14"}`},
		{"Float32", float32(0.5), `{"a": "0.5"}`},
		{"Duration", 90 * time.Second, `{"a": "1m30s"}`},
		{"Slice", []int{1, 2}, `{"a": "[1 2]"}`},
		{"Nil", nil, `{"a": null}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeSample(t, "appsettings.json", `{}`)
			require.NoError(t, store.SetJSONValue(path, "a", tc.value))

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.JSONEq(t, tc.want, string(data))
		})
	}
}

// TestSetJSONValueDepth tests nested paths and the depth limit
func TestSetJSONValueDepth(t *testing.T) {
	store := newTestStore(t)

	t.Run("FiveSegmentsExisting", func(t *testing.T) {
		path := writeSample(t, "appsettings.json", `{"a":{"b":{"c":{"d":{"e":"old","keep":1}}}}}`)
		require.NoError(t, store.SetJSONValue(path, "a:b:c:d:e", "new"))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.JSONEq(t, `{"a":{"b":{"c":{"d":{"e":"new","keep":1}}}}}`, string(data))
	})

	t.Run("FiveSegmentsCreated", func(t *testing.T) {
		path := writeSample(t, "appsettings.json", `{"other":true}`)
		require.NoError(t, store.SetJSONValue(path, "a:b:c:d:e", 5))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.JSONEq(t, `{"other":true,"a":{"b":{"c":{"d":{"e":5}}}}}`, string(data))
	})

	t.Run("SixSegmentsRejected", func(t *testing.T) {
		original := `{"a":{"b":{"c":{"d":{"e":{"f":1}}}}}}`
		path := writeSample(t, "appsettings.json", original)

		err := store.SetJSONValue(path, "a:b:c:d:e:f", 2)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.Contains(t, err.Error(), "6")
		assert.Contains(t, err.Error(), "key depth of 6 exceeds the maximum of 5")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, original, string(data))
	})

	t.Run("EmptyKeyPath", func(t *testing.T) {
		path := writeSample(t, "appsettings.json", `{}`)
		assert.ErrorIs(t, store.SetJSONValue(path, "", 1), ErrInvalidArgument)
	})

	t.Run("NullIntermediateReplaced", func(t *testing.T) {
		path := writeSample(t, "appsettings.json", `{"a":null}`)
		require.NoError(t, store.SetJSONValue(path, "a:b", "v"))
		assert.Equal(t, map[string]any{"a": map[string]any{"b": "v"}}, readJSONMap(t, path))
	})

	t.Run("ScalarIntermediateRejected", func(t *testing.T) {
		path := writeSample(t, "appsettings.json", `{"a":"scalar"}`)
		err := store.SetJSONValue(path, "a:b", "v")
		assert.ErrorIs(t, err, ErrNotContainer)
		assert.Equal(t, map[string]any{"a": "scalar"}, readJSONMap(t, path))
	})

	t.Run("ArrayIndex", func(t *testing.T) {
		path := writeSample(t, "appsettings.json", `{"servers":[{"host":"a"},{"host":"b"}]}`)
		require.NoError(t, store.SetJSONValue(path, "servers:1:host", "c"))
		require.NoError(t, store.SetJSONValue(path, "servers:0", "flat"))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.JSONEq(t, `{"servers":["flat",{"host":"c"}]}`, string(data))
	})

	t.Run("ArrayIndexOutOfRange", func(t *testing.T) {
		path := writeSample(t, "appsettings.json", `{"servers":[1]}`)
		assert.ErrorIs(t, store.SetJSONValue(path, "servers:3", 1), ErrNotFound)
		assert.ErrorIs(t, store.SetJSONValue(path, "servers:x", 1), ErrInvalidArgument)
	})
}

// TestSetJSONValueFile tests file handling of the JSON setter
func TestSetJSONValueFile(t *testing.T) {
	store := newTestStore(t)

	t.Run("MissingFile", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "appsettings.json")
		err := store.SetJSONValue(missing, "a", 1)
		assert.ErrorIs(t, err, ErrFileNotFound)
		assert.Contains(t, err.Error(), missing)
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		path := writeSample(t, "appsettings.json", `{"a":`)
		err := store.SetJSONValue(path, "a", 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse JSON")
	})

	t.Run("IndentedAndOrdered", func(t *testing.T) {
		path := writeSample(t, "appsettings.json", `{"zeta":1,"alpha":{"y":true,"x":"<&>"},"mid":[1.50,2]}`)
		require.NoError(t, store.SetJSONValue(path, "alpha:new", "v"))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		want := `{
  "zeta": 1,
  "alpha": {
    "y": true,
    "x": "<&>",
    "new": "v"
  },
  "mid": [
    1.50,
    2
  ]
}
`
		assert.Equal(t, want, string(data))
	})

	t.Run("SequentialWritesPersist", func(t *testing.T) {
		path := writeSample(t, "appsettings.json", `{}`)
		require.NoError(t, store.SetJSONValue(path, "Logging:Level", "Debug"))
		require.NoError(t, store.SetJSONValue(path, "Port", 8080))

		assert.Equal(t, map[string]any{
			"Logging": map[string]any{"Level": "Debug"},
			"Port":    float64(8080),
		}, readJSONMap(t, path))
	})
}

// TestSetJSONConnectionString tests the ConnectionStrings shortcut
func TestSetJSONConnectionString(t *testing.T) {
	store := newTestStore(t)

	t.Run("ExistingSection", func(t *testing.T) {
		path := writeSample(t, "appsettings.json", `{"ConnectionStrings":{"Main":"old","Other":"keep"},"Logging":{}}`)
		require.NoError(t, store.SetJSONConnectionString(path, "Main", "Server=.;Trusted_Connection=True"))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.JSONEq(t, `{"ConnectionStrings":{"Main":"Server=.;Trusted_Connection=True","Other":"keep"},"Logging":{}}`, string(data))
	})

	t.Run("CreatesSection", func(t *testing.T) {
		path := writeSample(t, "appsettings.json", `{"Logging":{}}`)
		require.NoError(t, store.SetJSONConnectionString(path, "Main", "x"))
		assert.Equal(t, map[string]any{
			"Logging":           map[string]any{},
			"ConnectionStrings": map[string]any{"Main": "x"},
		}, readJSONMap(t, path))
	})

	t.Run("KeyWithColonIsLiteral", func(t *testing.T) {
		path := writeSample(t, "appsettings.json", `{}`)
		require.NoError(t, store.SetJSONConnectionString(path, "a:b", "x"))
		assert.Equal(t, map[string]any{
			"ConnectionStrings": map[string]any{"a:b": "x"},
		}, readJSONMap(t, path))
	})

	t.Run("Errors", func(t *testing.T) {
		assert.ErrorIs(t, store.SetJSONConnectionString(filepath.Join(t.TempDir(), "x.json"), "Main", "x"), ErrFileNotFound)

		path := writeSample(t, "appsettings.json", `{"ConnectionStrings":"flat"}`)
		assert.ErrorIs(t, store.SetJSONConnectionString(path, "Main", "x"), ErrNotContainer)

		arrayRoot := writeSample(t, "array.json", `[]`)
		assert.ErrorIs(t, store.SetJSONConnectionString(arrayRoot, "Main", "x"), ErrNotContainer)

		assert.ErrorIs(t, store.SetJSONConnectionString(path, "", "x"), ErrInvalidArgument)
	})
}

// TestGetJSONValue tests the read-only lookup
func TestGetJSONValue(t *testing.T) {
	store := newTestStore(t)
	path := writeSample(t, "appsettings.json", `{"Logging":{"LogLevel":{"Default":"Information"}},"Hosts":["a","b"],"Port":8080}`)

	value, err := store.GetJSONValue(path, "Logging:LogLevel:Default")
	require.NoError(t, err)
	assert.Equal(t, KindString, value.Kind())
	assert.Equal(t, "Information", value.Text())

	value, err = store.GetJSONValue(path, "Hosts:1")
	require.NoError(t, err)
	assert.Equal(t, "b", value.Text())

	value, err = store.GetJSONValue(path, "Port")
	require.NoError(t, err)
	assert.Equal(t, KindNumber, value.Kind())
	assert.Equal(t, "8080", value.Text())

	_, err = store.GetJSONValue(path, "Logging:Missing:Default")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.GetJSONValue(path, "Port:Inner")
	assert.ErrorIs(t, err, ErrNotContainer)

	_, err = store.GetJSONValue(path, "a:b:c:d:e:f")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	// Lookups never modify the file
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"Logging":{"LogLevel":{"Default":"Information"}},"Hosts":["a","b"],"Port":8080}`, string(data))
}
