/*
Package ports defines the driven ports (interfaces) for the Prettifier engine.

These interfaces decouple the fallback-chain engine from the mechanics of running
renderers, allowing it to be exercised with fakes in tests and to mix external
processes with in-process libraries in the same chain.

# Key Interfaces

  - Invoker: Runs one external renderer process and reports an Outcome.
  - Renderer: An in-process renderer that can stand in for an external tool.
  - Formatter: A total built-in formatter that terminates a chain.
*/
package ports
