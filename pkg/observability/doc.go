/*
Package observability exposes Prometheus metrics for the prettifier engine.

Metrics are fed through engine lifecycle hooks, so the engine itself never
depends on a metrics backend.
*/
package observability
