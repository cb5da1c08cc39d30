package runtime

import (
	"strconv"

	"github.com/aretw0/prettifier/pkg/domain"
)

// ArgBuilder turns request options into the argument list passed after the command.
type ArgBuilder func(opts domain.Options) []string

// Step is one attempt in a chain.
// Steps with a nil Args are in-process renderers looked up by Name.
type Step struct {
	Name string
	Args ArgBuilder
}

// External reports whether the step spawns a process.
func (s Step) External() bool {
	return s.Args != nil
}

// Chains maps each kind to its ordered steps.
type Chains map[domain.Kind][]Step

// DefaultChains returns the external steps for every kind, in priority order.
// Table, raw and plain content have no external step.
func DefaultChains() Chains {
	return Chains{
		domain.KindMarkdown: {
			{Name: domain.RendererGlow, Args: glowArgs},
			{Name: domain.RendererRich, Args: richMarkdownArgs},
		},
		domain.KindJSON: {
			{Name: domain.RendererJQ, Args: identityFilter},
		},
		domain.KindCode: {
			{Name: domain.RendererRich, Args: richCodeArgs},
			{Name: domain.RendererBat, Args: batArgs},
		},
		domain.KindYAML: {
			{Name: domain.RendererYQ, Args: identityFilter},
		},
	}
}

// With returns a copy of c with step appended to kind's chain.
func (c Chains) With(kind domain.Kind, step Step) Chains {
	out := make(Chains, len(c)+1)
	for k, steps := range c {
		out[k] = append([]Step(nil), steps...)
	}
	out[kind] = append(out[kind], step)
	return out
}

func glowArgs(opts domain.Options) []string {
	args := []string{"-"}
	if opts.Theme != "" && opts.Theme != domain.DefaultMarkdownTheme {
		args = append(args, "-s", opts.Theme)
	}
	if opts.Width > 0 {
		args = append(args, "-w", strconv.Itoa(opts.Width))
	}
	return args
}

func richMarkdownArgs(opts domain.Options) []string {
	args := []string{"-", "--markdown"}
	if opts.Width > 0 {
		args = append(args, "-w", strconv.Itoa(opts.Width))
	}
	return args
}

func identityFilter(domain.Options) []string {
	return []string{"."}
}

func richCodeArgs(opts domain.Options) []string {
	args := []string{"-"}
	if lang := language(opts); lang != "" {
		args = append(args, "--lexer", lang)
	}
	if opts.LineNumbers {
		args = append(args, "--line-numbers")
	}
	return append(args, "--theme", codeTheme(opts))
}

func batArgs(opts domain.Options) []string {
	args := []string{"-p", "--theme", codeTheme(opts)}
	if lang := language(opts); lang != "" {
		args = append(args, "-l", lang)
	}
	if opts.LineNumbers {
		args = append(args, "--number")
	}
	return args
}

// language returns the explicit language, or "" when the renderer should guess.
func language(opts domain.Options) string {
	if opts.Language == domain.DefaultLanguage {
		return ""
	}
	return opts.Language
}

func codeTheme(opts domain.Options) string {
	if opts.Theme == "" {
		return domain.DefaultCodeTheme
	}
	return opts.Theme
}
