package remote

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanRemovesNilMapValues(t *testing.T) {
	in := map[string]any{
		"name":  "CleanWave",
		"notes": nil,
		"admin": map[string]any{
			"firstName": "Asan",
			"avatar":    nil,
		},
	}

	out := Clean(in).(map[string]any)

	assert.Equal(t, "CleanWave", out["name"])
	assert.NotContains(t, out, "notes")
	admin := out["admin"].(map[string]any)
	assert.Equal(t, "Asan", admin["firstName"])
	assert.NotContains(t, admin, "avatar")
}

func TestCleanPreservesNilsInSlices(t *testing.T) {
	in := map[string]any{
		"items": []any{"a", nil, map[string]any{"x": nil, "y": 1.0}},
	}

	out := Clean(in).(map[string]any)
	items := out["items"].([]any)

	assert.Len(t, items, 3)
	assert.Nil(t, items[1])
	nested := items[2].(map[string]any)
	assert.NotContains(t, nested, "x")
	assert.Equal(t, 1.0, nested["y"])
}

func TestCleanDoesNotMutateInput(t *testing.T) {
	in := map[string]any{"keep": "v", "drop": nil}

	Clean(in)

	assert.Contains(t, in, "drop")
}

func TestCleanIdempotent(t *testing.T) {
	in := map[string]any{
		"a": nil,
		"b": map[string]any{"c": nil, "d": "v"},
	}

	once := Clean(in)
	twice := Clean(once)

	assert.Equal(t, once, twice)
}

func TestCleanScalarsPassThrough(t *testing.T) {
	assert.Equal(t, "s", Clean("s"))
	assert.Equal(t, 3.5, Clean(3.5))
	assert.Nil(t, Clean(nil))
}
