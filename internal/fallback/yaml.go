package fallback

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/prettifier/pkg/domain"
	"gopkg.in/yaml.v3"
)

// FormatYAML parses every document in text and re-emits it in block style.
// Mapping key order and comments survive the round trip. Empty input yields "".
func FormatYAML(text string) (string, error) {
	docs, err := decodeYAML(text)
	if err != nil {
		return "", err
	}
	if len(docs) == 0 {
		return "", nil
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	for _, doc := range docs {
		blockStyle(doc)
		if err := enc.Encode(doc); err != nil {
			return "", &MalformedError{Kind: domain.ErrInvalidYAML, Detail: err.Error()}
		}
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("failed to flush yaml: %w", err)
	}
	return buf.String(), nil
}

// YAML is the built-in formatter for KindYAML.
func YAML(req domain.Request) string {
	out, err := FormatYAML(req.Text)
	if err != nil {
		var malformed *MalformedError
		if errors.As(err, &malformed) {
			return domain.MsgInvalidYAML + malformed.Detail
		}
		return domain.MsgInvalidYAML + err.Error()
	}
	return out
}

// IsStructuredYAML reports whether text parses as YAML and looks like a YAML
// document rather than prose: at least one document root is a mapping or a
// sequence, or the text opens with a "---" document marker.
func IsStructuredYAML(text string) bool {
	docs, err := decodeYAML(text)
	if err != nil || len(docs) == 0 {
		return false
	}
	if strings.HasPrefix(strings.TrimSpace(text), "---") {
		return true
	}
	for _, doc := range docs {
		root := doc
		if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
			root = root.Content[0]
		}
		if root.Kind == yaml.MappingNode || root.Kind == yaml.SequenceNode {
			return true
		}
	}
	return false
}

func decodeYAML(text string) ([]*yaml.Node, error) {
	dec := yaml.NewDecoder(strings.NewReader(text))
	var docs []*yaml.Node
	for {
		var node yaml.Node
		if err := dec.Decode(&node); err != nil {
			if errors.Is(err, io.EOF) {
				return docs, nil
			}
			return nil, &MalformedError{Kind: domain.ErrInvalidYAML, Detail: err.Error()}
		}
		docs = append(docs, &node)
	}
}

// blockStyle clears the flow flag on n and all of its descendants.
func blockStyle(n *yaml.Node) {
	n.Style &^= yaml.FlowStyle
	for _, child := range n.Content {
		blockStyle(child)
	}
}
