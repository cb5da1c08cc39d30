package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/prettifier/pkg/domain"
)

var renderCmd = &cobra.Command{
	Use:   "render <operation> [file]",
	Short: "Format a file or stdin and print the result",
	Long: `Runs one format operation locally. The operation may be given in full
(format_json) or by kind (json). Input is read from the file, or stdin when
no file is given.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		op, err := resolveOperation(args[0])
		if err != nil {
			return err
		}

		var input []byte
		if len(args) == 2 {
			input, err = os.ReadFile(args[1])
		} else {
			input, err = io.ReadAll(cmd.InOrStdin())
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		a, err := newApp(cmd)
		if err != nil {
			return err
		}

		out, err := a.svc.Invoke(cmd.Context(), op.Name, renderArgs(cmd, op, string(input), terminalWidth()))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().String("theme", "", "Theme for markdown or code")
	renderCmd.Flags().Int("width", 0, "Wrap width for markdown (default: terminal width)")
	renderCmd.Flags().Int("indent", domain.DefaultIndent, "Indentation for JSON")
	renderCmd.Flags().String("language", "", "Language for code highlighting")
	renderCmd.Flags().Bool("line-numbers", false, "Show line numbers for code")
	renderCmd.Flags().String("title", "", "Title for tables")
}

// resolveOperation accepts an operation name or a kind name ("json", "auto").
func resolveOperation(name string) (domain.Operation, error) {
	if op, ok := domain.LookupOperation(name); ok {
		return op, nil
	}
	if kind, ok := domain.ParseKind(name); ok {
		if op, ok := domain.LookupOperation(domain.KindOperation(kind)); ok {
			return op, nil
		}
	}
	return domain.Operation{}, fmt.Errorf("%w: %q", domain.ErrUnknownOperation, name)
}

// renderArgs turns explicitly set flags into operation arguments. Flags left
// at their defaults are omitted so the operation defaults apply. width is the
// fallback markdown wrap width; zero leaves it unset.
func renderArgs(cmd *cobra.Command, op domain.Operation, input string, width int) map[string]any {
	args := map[string]any{}
	if op.Kind == domain.KindTable {
		args["data"] = input
	} else {
		args["text"] = input
	}

	flags := cmd.Flags()
	set := func(flag, key string, get func(string) (any, error)) {
		if !flags.Changed(flag) || !hasParam(op, key) {
			return
		}
		if v, err := get(flag); err == nil {
			args[key] = v
		}
	}
	getString := func(f string) (any, error) { return flags.GetString(f) }
	getInt := func(f string) (any, error) { return flags.GetInt(f) }
	getBool := func(f string) (any, error) { return flags.GetBool(f) }

	set("theme", "theme", getString)
	set("width", "width", getInt)
	set("indent", "indent", getInt)
	set("language", "language", getString)
	set("line-numbers", "line_numbers", getBool)
	set("title", "title", getString)

	if _, ok := args["width"]; !ok && width > 0 && hasParam(op, "width") {
		args["width"] = width
	}
	return args
}

func hasParam(op domain.Operation, name string) bool {
	for _, p := range op.Params {
		if p.Name == name {
			return true
		}
	}
	return false
}

// terminalWidth returns the width of stdout, or 0 when it is not a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return w
}
