package mcp_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/prettifier"
	prettymcp "github.com/aretw0/prettifier/pkg/adapters/mcp"
	"github.com/aretw0/prettifier/pkg/domain"
)

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type toolResult struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	IsError bool `json:"isError"`
}

func newServer(t *testing.T) *prettymcp.Server {
	t.Helper()
	svc, err := prettifier.New(prettifier.WithCapabilities(domain.Capabilities{
		domain.RendererGlow: {Name: "glow", Command: "glow"},
	}))
	require.NoError(t, err)
	return prettymcp.NewServer(svc)
}

func send(t *testing.T, ctx context.Context, s *prettymcp.Server, method string, params any) rpcResponse {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  method,
		"params":  params,
	})
	require.NoError(t, err)

	msg := s.MCPServer().HandleMessage(ctx, body)
	raw, err := json.Marshal(msg)
	require.NoError(t, err)

	var resp rpcResponse
	require.NoError(t, json.Unmarshal(raw, &resp))
	return resp
}

func callTool(t *testing.T, s *prettymcp.Server, name string, args map[string]any) string {
	t.Helper()
	resp := send(t, context.Background(), s, "tools/call", map[string]any{"name": name, "arguments": args})
	require.Nil(t, resp.Error)

	var result toolResult
	require.NoError(t, json.Unmarshal(resp.Result, &result))
	require.Len(t, result.Content, 1)
	assert.Equal(t, "text", result.Content[0].Type)
	assert.False(t, result.IsError)
	return result.Content[0].Text
}

func TestServer_ListTools(t *testing.T) {
	s := newServer(t)
	resp := send(t, context.Background(), s, "tools/list", map[string]any{})
	require.Nil(t, resp.Error)

	var list struct {
		Tools []struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			InputSchema struct {
				Properties map[string]map[string]any `json:"properties"`
				Required   []string                  `json:"required"`
			} `json:"inputSchema"`
		} `json:"tools"`
	}
	require.NoError(t, json.Unmarshal(resp.Result, &list))
	require.Len(t, list.Tools, 6)

	byName := make(map[string]int)
	for i, tool := range list.Tools {
		byName[tool.Name] = i
		assert.NotEmpty(t, tool.Description, tool.Name)
	}
	for _, op := range domain.Operations() {
		assert.Contains(t, byName, op.Name)
	}

	table := list.Tools[byName[domain.OpFormatTable]]
	assert.Equal(t, []string{"data"}, table.InputSchema.Required)
	assert.Equal(t, "string", table.InputSchema.Properties["title"]["type"])

	js := list.Tools[byName[domain.OpFormatJSON]]
	assert.Equal(t, "number", js.InputSchema.Properties["indent"]["type"])
	assert.Equal(t, 2.0, js.InputSchema.Properties["indent"]["default"])
	assert.Equal(t, true, js.InputSchema.Properties["color"]["default"])
}

func TestServer_CallTool(t *testing.T) {
	s := newServer(t)

	t.Run("JSON", func(t *testing.T) {
		assert.Equal(t, "{\n  \"a\": [\n    1\n  ]\n}", callTool(t, s, domain.OpFormatJSON, map[string]any{"text": `{"a":[1]}`}))
	})

	t.Run("Invalid JSON Is Text", func(t *testing.T) {
		out := callTool(t, s, domain.OpFormatJSON, map[string]any{"text": "{"})
		assert.Contains(t, out, "Invalid JSON: ")
	})

	t.Run("Table", func(t *testing.T) {
		out := callTool(t, s, domain.OpFormatTable, map[string]any{"data": "not json"})
		assert.Equal(t, "Invalid JSON data for table", out)
	})

	t.Run("Raw", func(t *testing.T) {
		assert.Equal(t, "plain words", callTool(t, s, domain.OpFormatRaw, map[string]any{"text": "plain words"}))
	})

	t.Run("Markdown Skips Missing Renderer", func(t *testing.T) {
		assert.Equal(t, "# hi", callTool(t, s, domain.OpFormatMarkdown, map[string]any{"text": "# hi", "width": 40}))
	})
}

func TestServer_CallTool_Cancelled(t *testing.T) {
	s := newServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp := send(t, ctx, s, "tools/call", map[string]any{
		"name":      domain.OpFormatYAML,
		"arguments": map[string]any{"text": "a: 1"},
	})
	require.NotNil(t, resp.Error)
	assert.Contains(t, resp.Error.Message, "context canceled")
}

func TestServer_ReadRenderers(t *testing.T) {
	s := newServer(t)
	resp := send(t, context.Background(), s, "resources/read", map[string]any{"uri": prettymcp.RenderersURI})
	require.Nil(t, resp.Error)

	var result struct {
		Contents []struct {
			URI      string `json:"uri"`
			MIMEType string `json:"mimeType"`
			Text     string `json:"text"`
		} `json:"contents"`
	}
	require.NoError(t, json.Unmarshal(resp.Result, &result))
	require.Len(t, result.Contents, 1)
	assert.Equal(t, "application/json", result.Contents[0].MIMEType)

	var caps domain.Capabilities
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &caps))
	assert.Contains(t, caps, "glow")
	assert.False(t, caps.Available("glow"))
}
