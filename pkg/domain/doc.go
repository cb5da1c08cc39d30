/*
Package domain contains the core domain models for the Prettifier service.

It defines the values that flow through the fallback-chain engine: what kind of
content is being formatted, the options a caller supplied, which external renderers
are installed, and the outcome of a single renderer attempt. This package is kept
pure and free of I/O, following Hexagonal Architecture principles.

# Key Entities

  - Kind: The content kind a request targets (Markdown, JSON, Code, YAML, Table, Raw).
  - Request: An immutable, per-call formatting request (Kind + Text + Options).
  - Capabilities: The read-only map of renderer name to RendererDescriptor, resolved once.
  - Outcome: The result of a single renderer attempt (success + output, or failure + diagnostic).
  - Hooks: Observability callbacks fired by the engine.
*/
package domain
