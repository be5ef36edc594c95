//go:build unit || integration

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Field sets key in a request map, or deletes it when value is nil.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}

// Nested applies mutate to the object stored under key.
func Nested(key string, mutate func(m map[string]any)) func(m map[string]any) {
	return func(m map[string]any) {
		if inner, ok := m[key].(map[string]any); ok {
			mutate(inner)
		}
	}
}

// DtoMap turns a request DTO into a mutable JSON map.
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, f := range muts {
		f(m)
	}
	return m
}
