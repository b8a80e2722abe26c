package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSONArray(t *testing.T) {
	plain := `[{"title":"Omelette"}]`
	assert.Equal(t, plain, extractJSONArray(plain))

	fenced := "```json\n[{\"title\":\"Omelette\"}]\n```"
	assert.Equal(t, `[{"title":"Omelette"}]`, extractJSONArray(fenced))

	bareFence := "```\n[{\"title\":\"Omelette\"}]\n```"
	assert.Equal(t, `[{"title":"Omelette"}]`, extractJSONArray(bareFence))

	prose := "Here are your recipes: [{\"title\":\"Omelette\"}] enjoy!"
	assert.Equal(t, `[{"title":"Omelette"}]`, extractJSONArray(prose))

	// A lone object is promoted to a one-element array.
	object := `{"title":"Omelette"}`
	assert.Equal(t, `[{"title":"Omelette"}]`, extractJSONArray(object))

	assert.Equal(t, "", extractJSONArray("no json here"))
	assert.Equal(t, "", extractJSONArray(""))
}
