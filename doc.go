/*
Package prettifier turns raw content into terminal-friendly text.

A caller names an operation (format_markdown, format_json, format_code,
format_yaml, format_table or format_raw) and passes its arguments. For each
content kind the service walks an ordered chain of renderers: external tools
such as glow, rich, jq, yq and bat, optionally followed by in-process renderers.
The first renderer that is installed and succeeds answers. When none does, a
built-in formatter answers instead, so every call produces text.

# Usage

	svc, err := prettifier.New(prettifier.WithLogger(logger))
	if err != nil {
		log.Fatal(err)
	}

	out, err := svc.Invoke(ctx, "format_json", map[string]any{"text": `{"b":1,"a":2}`})
	if err != nil {
		// Only a cancelled context ends up here.
		log.Fatal(err)
	}
	fmt.Println(out)

Malformed input, unknown operations and bad arguments are reported as text
("Invalid JSON: ...", "Unknown tool: ...") rather than as errors, so that
transports can return them to the user unchanged.

# Transports

The service is transport-agnostic. pkg/adapters/mcp exposes it as an MCP
server over stdio or SSE, pkg/adapters/http as a small JSON/HTTP API, and
cmd/prettifier as a CLI.
*/
package prettifier
