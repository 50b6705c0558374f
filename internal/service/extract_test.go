package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONExtractor_Object(t *testing.T) {
	extractor := &JSONExtractor{}

	t.Run("should extract object surrounded by prose", func(t *testing.T) {
		raw := "Sure, here is your data:\n{\"a\": 1}\nLet me know if you need more."

		var result map[string]any
		err := extractor.Extract(raw, ShapeObject, &result)

		require.NoError(t, err)
		assert.Equal(t, map[string]any{"a": float64(1)}, result)
	})

	t.Run("should stop at first balanced close, ignoring trailing unmatched brace", func(t *testing.T) {
		raw := `noise {"a":1,"b":{"c":2}} trailing { unmatched`

		var result map[string]any
		err := extractor.Extract(raw, ShapeObject, &result)

		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"a": float64(1),
			"b": map[string]any{"c": float64(2)},
		}, result)
	})

	t.Run("should extract object inside markdown fences", func(t *testing.T) {
		raw := "```json\n{\"name\": \"Oatmeal\"}\n```"

		var result map[string]any
		err := extractor.Extract(raw, ShapeObject, &result)

		require.NoError(t, err)
		assert.Equal(t, "Oatmeal", result["name"])
	})

	t.Run("should fail with ExtractionError when no object present", func(t *testing.T) {
		var result map[string]any
		err := extractor.Extract("no json here at all", ShapeObject, &result)

		require.Error(t, err)
		var extractionErr *ExtractionError
		assert.True(t, errors.As(err, &extractionErr))
		assert.Nil(t, result)
	})

	t.Run("should fail with MalformedJSONError when braces never balance", func(t *testing.T) {
		var result map[string]any
		err := extractor.Extract(`{"a": {"b": 1}`, ShapeObject, &result)

		require.Error(t, err)
		var malformedErr *MalformedJSONError
		require.True(t, errors.As(err, &malformedErr))
		assert.Contains(t, malformedErr.Err.Error(), "unbalanced")
	})

	t.Run("should fail with MalformedJSONError when region does not parse", func(t *testing.T) {
		raw := `{"a":}`

		var result map[string]any
		err := extractor.Extract(raw, ShapeObject, &result)

		require.Error(t, err)
		var malformedErr *MalformedJSONError
		require.True(t, errors.As(err, &malformedErr))
		assert.Equal(t, raw, malformedErr.Raw)
	})
}

func TestJSONExtractor_Array(t *testing.T) {
	extractor := &JSONExtractor{}

	t.Run("should extract array surrounded by prose", func(t *testing.T) {
		raw := "Here are the recipes:\n[{\"name\": \"Soup\"}, {\"name\": \"Salad\"}]\nEnjoy!"

		var result []map[string]any
		err := extractor.Extract(raw, ShapeArray, &result)

		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "Soup", result[0]["name"])
	})

	t.Run("should wrap a bare object into a single-element array", func(t *testing.T) {
		raw := `{"name": "Soup"}`

		var result []map[string]any
		err := extractor.Extract(raw, ShapeArray, &result)

		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "Soup", result[0]["name"])
	})

	t.Run("should wrap when an object containing arrays leads the response", func(t *testing.T) {
		raw := `{"name": "Soup", "tags": ["warm", "easy"]}`

		var result []map[string]any
		err := extractor.Extract(raw, ShapeArray, &result)

		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "Soup", result[0]["name"])
	})

	t.Run("should fail with ExtractionError when neither shape present", func(t *testing.T) {
		var result []map[string]any
		err := extractor.Extract("nothing structured", ShapeArray, &result)

		var extractionErr *ExtractionError
		require.True(t, errors.As(err, &extractionErr))
		assert.Equal(t, ShapeArray, extractionErr.Shape)
	})
}
