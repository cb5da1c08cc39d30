package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/prettifier/pkg/domain"
)

func newRenderFlags(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "render"}
	cmd.Flags().String("theme", "", "")
	cmd.Flags().Int("width", 0, "")
	cmd.Flags().Int("indent", domain.DefaultIndent, "")
	cmd.Flags().String("language", "", "")
	cmd.Flags().Bool("line-numbers", false, "")
	cmd.Flags().String("title", "", "")
	require.NoError(t, cmd.Flags().Parse(args))
	return cmd
}

func TestResolveOperation(t *testing.T) {
	t.Run("Full Name", func(t *testing.T) {
		op, err := resolveOperation("format_yaml")
		require.NoError(t, err)
		assert.Equal(t, domain.KindYAML, op.Kind)
	})

	t.Run("Bare Kind", func(t *testing.T) {
		op, err := resolveOperation("JSON")
		require.NoError(t, err)
		assert.Equal(t, domain.OpFormatJSON, op.Name)
	})

	t.Run("Auto Alias", func(t *testing.T) {
		op, err := resolveOperation("auto")
		require.NoError(t, err)
		assert.Equal(t, domain.OpFormatRaw, op.Name)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := resolveOperation("xml")
		assert.ErrorIs(t, err, domain.ErrUnknownOperation)
		assert.Contains(t, err.Error(), `"xml"`)
	})
}

func TestRenderArgs(t *testing.T) {
	markdown, _ := domain.LookupOperation(domain.OpFormatMarkdown)
	code, _ := domain.LookupOperation(domain.OpFormatCode)
	tbl, _ := domain.LookupOperation(domain.OpFormatTable)

	t.Run("Only Changed Flags", func(t *testing.T) {
		args := renderArgs(newRenderFlags(t, "--language", "go", "--line-numbers"), code, "x := 1", 0)
		assert.Equal(t, map[string]any{
			"text":         "x := 1",
			"language":     "go",
			"line_numbers": true,
		}, args)
	})

	t.Run("Ignores Flags The Operation Lacks", func(t *testing.T) {
		args := renderArgs(newRenderFlags(t, "--title", "T", "--indent", "4"), code, "", 0)
		assert.NotContains(t, args, "title")
		assert.NotContains(t, args, "indent")
	})

	t.Run("Table Input Is Data", func(t *testing.T) {
		args := renderArgs(newRenderFlags(t, "--title", "People"), tbl, `[{"a":1}]`, 0)
		assert.Equal(t, map[string]any{"data": `[{"a":1}]`, "title": "People"}, args)
	})

	t.Run("Terminal Width", func(t *testing.T) {
		args := renderArgs(newRenderFlags(t), markdown, "# hi", 120)
		assert.Equal(t, 120, args["width"])

		args = renderArgs(newRenderFlags(t, "--width", "60"), markdown, "# hi", 120)
		assert.Equal(t, 60, args["width"])

		args = renderArgs(newRenderFlags(t), code, "x", 120)
		assert.NotContains(t, args, "width")
	})
}
