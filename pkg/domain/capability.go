package domain

import (
	"sort"
	"time"
)

// RendererDescriptor describes one renderer as resolved at startup. It is immutable.
type RendererDescriptor struct {
	Name      string        `json:"name"`
	Command   string        `json:"command,omitempty"`
	Available bool          `json:"available"`
	InProcess bool          `json:"in_process,omitempty"`
	Timeout   time.Duration `json:"timeout,omitempty"`
}

// Capabilities maps renderer names to their descriptors.
// It is computed once and only read afterwards, so it is safe for concurrent use.
type Capabilities map[string]RendererDescriptor

// Available reports whether the named renderer was found. Unknown names are unavailable.
func (c Capabilities) Available(name string) bool {
	d, ok := c[name]
	return ok && d.Available
}

// Descriptor returns the descriptor for name.
func (c Capabilities) Descriptor(name string) (RendererDescriptor, bool) {
	d, ok := c[name]
	return d, ok
}

// Names returns the renderer names in sorted order.
func (c Capabilities) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// With returns a copy of c with d added (or replaced).
func (c Capabilities) With(d RendererDescriptor) Capabilities {
	out := make(Capabilities, len(c)+1)
	for k, v := range c {
		out[k] = v
	}
	out[d.Name] = d
	return out
}
