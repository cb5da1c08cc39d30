// Package mcp exposes the prettifier operations as Model Context Protocol tools,
// over stdio or SSE.
package mcp
