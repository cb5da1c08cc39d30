package fallback_test

import (
	"testing"

	"github.com/aretw0/prettifier/internal/fallback"
	"github.com/aretw0/prettifier/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonRequest(text string, indent int) domain.Request {
	req := domain.NewRequest(domain.KindJSON, text)
	req.Options.Indent = indent
	return req
}

func TestJSON(t *testing.T) {
	t.Run("Scalar Stays Scalar", func(t *testing.T) {
		assert.Equal(t, "42", fallback.JSON(jsonRequest("42", 2)))
	})

	t.Run("Preserves Key Order", func(t *testing.T) {
		out := fallback.JSON(jsonRequest(`{"b":1,"a":{"d":true,"c":null}}`, 2))
		assert.Equal(t, "{\n  \"b\": 1,\n  \"a\": {\n    \"d\": true,\n    \"c\": null\n  }\n}", out)
	})

	t.Run("Keeps Non-ASCII And Number Spelling", func(t *testing.T) {
		out := fallback.JSON(jsonRequest(`{"name":"café","n":1.50}`, 0))
		assert.Equal(t, "{\n\"name\": \"café\",\n\"n\": 1.50\n}", out)
	})

	t.Run("Custom Indent", func(t *testing.T) {
		out := fallback.JSON(jsonRequest(`[1]`, 4))
		assert.Equal(t, "[\n    1\n]", out)
	})

	t.Run("Negative Indent Is Zero", func(t *testing.T) {
		assert.Equal(t, "[\n1\n]", fallback.JSON(jsonRequest(`[1]`, -3)))
	})

	t.Run("Trims Surrounding Whitespace", func(t *testing.T) {
		assert.Equal(t, "{}", fallback.JSON(jsonRequest("  \n{ }\n\n", 2)))
	})

	t.Run("Idempotent", func(t *testing.T) {
		once := fallback.JSON(jsonRequest(`{"x":[1,2,{"y":"z"}]}`, 2))
		twice := fallback.JSON(jsonRequest(once, 2))
		assert.Equal(t, once, twice)
	})

	t.Run("Decodes Unicode Escapes", func(t *testing.T) {
		out := fallback.JSON(jsonRequest(`{"name":"caf\u00e9"}`, 2))
		assert.Equal(t, "{\n  \"name\": \"café\"\n}", out)
		assert.Equal(t, out, fallback.JSON(jsonRequest(out, 2)))
	})

	t.Run("Does Not Escape HTML", func(t *testing.T) {
		out := fallback.JSON(jsonRequest(`{"q":"a<b && c>d"}`, 0))
		assert.Equal(t, "{\n\"q\": \"a<b && c>d\"\n}", out)
	})

	t.Run("Duplicate Keys Keep Last Value", func(t *testing.T) {
		out := fallback.JSON(jsonRequest(`{"a":1,"b":2,"a":3}`, 2))
		assert.Equal(t, "{\n  \"a\": 3,\n  \"b\": 2\n}", out)
		assert.Equal(t, out, fallback.JSON(jsonRequest(out, 2)))
	})

	t.Run("Empty Containers", func(t *testing.T) {
		out := fallback.JSON(jsonRequest(`{"a":[ ],"b":{ }}`, 2))
		assert.Equal(t, "{\n  \"a\": [],\n  \"b\": {}\n}", out)
	})

	t.Run("Trailing Data Is Malformed", func(t *testing.T) {
		out := fallback.JSON(jsonRequest(`{"a":1} x`, 2))
		assert.Contains(t, out, "Invalid JSON: invalid character 'x' after top-level value")
	})

	t.Run("Malformed Input", func(t *testing.T) {
		out := fallback.JSON(jsonRequest("{not json", 2))
		assert.Regexp(t, `^Invalid JSON: invalid character 'n' .* \(offset \d+\)$`, out)
	})

	t.Run("Empty Input Is Malformed", func(t *testing.T) {
		out := fallback.JSON(jsonRequest("", 2))
		assert.Equal(t, "Invalid JSON: unexpected end of JSON input (offset 0)", out)
	})
}

func TestFormatJSON_Error(t *testing.T) {
	_, err := fallback.FormatJSON("[1,", 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidJSON)

	var malformed *fallback.MalformedError
	require.ErrorAs(t, err, &malformed)
	assert.NotEmpty(t, malformed.Detail)
}

func TestValidJSON(t *testing.T) {
	assert.True(t, fallback.ValidJSON(` {"a": "b:c"} `))
	assert.True(t, fallback.ValidJSON(`[]`))
	assert.False(t, fallback.ValidJSON(`[link](x)`))
	assert.False(t, fallback.ValidJSON(``))
}
