// Package runtime resolves a formatting request against the renderers installed
// on the host.
//
// Each kind owns an ordered chain of steps. A step is either an external
// renderer, driven through a ports.Invoker, or an in-process ports.Renderer.
// The first step that succeeds answers the request; when every step fails or is
// missing, the kind's built-in formatter does.
package runtime
