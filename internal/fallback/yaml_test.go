package fallback_test

import (
	"strings"
	"testing"

	"github.com/aretw0/prettifier/internal/fallback"
	"github.com/aretw0/prettifier/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYAML(t *testing.T) {
	format := func(text string) string {
		return fallback.YAML(domain.NewRequest(domain.KindYAML, text))
	}

	t.Run("Flow Becomes Block", func(t *testing.T) {
		assert.Equal(t, "a:\n  - 1\n  - 2\n", format("{a: [1, 2]}"))
	})

	t.Run("Preserves Key Order", func(t *testing.T) {
		assert.Equal(t, "zeta: 1\nalpha: 2\n", format("zeta: 1\nalpha: 2\n"))
	})

	t.Run("Multiple Documents", func(t *testing.T) {
		out := format("a: 1\n---\nb: 2\n")
		require.Contains(t, out, "---")
		assert.Less(t, strings.Index(out, "a: 1"), strings.Index(out, "---"))
		assert.Less(t, strings.Index(out, "---"), strings.Index(out, "b: 2"))
	})

	t.Run("Empty Input", func(t *testing.T) {
		assert.Equal(t, "", format(""))
	})

	t.Run("Malformed Input", func(t *testing.T) {
		out := format("a: [1, 2")
		assert.True(t, strings.HasPrefix(out, "Invalid YAML: "), out)
	})

	t.Run("Idempotent", func(t *testing.T) {
		once := format("{a: {b: [x, y]}, c: d}")
		assert.Equal(t, once, format(once))
	})
}

func TestIsStructuredYAML(t *testing.T) {
	cases := []struct {
		name string
		text string
		want bool
	}{
		{"Mapping", "key: value", true},
		{"Sequence", "- a\n- b", true},
		{"Document Marker", "---\nfoo", true},
		{"Plain Scalar", "hello world", false},
		{"Malformed", "a: b: c", false},
		{"Empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, fallback.IsStructuredYAML(tc.text))
		})
	}
}
