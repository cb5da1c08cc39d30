package fallback

import "github.com/aretw0/prettifier/pkg/domain"

// Passthrough returns the request text unchanged.
func Passthrough(req domain.Request) string {
	return req.Text
}
