package fallback

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/aretw0/prettifier/pkg/domain"
)

// object is a decoded JSON object in document order.
type object = orderedmap.OrderedMap[string, any]

// FormatJSON parses a JSON document and re-serializes it with the given indent.
// Key order and number spelling follow the input. Escaped non-ASCII text is
// written out as UTF-8 and a repeated key keeps its first position with its
// last value. A negative indent is treated as 0.
func FormatJSON(text string, indent int) (string, error) {
	if indent < 0 {
		indent = 0
	}
	src := bytes.TrimSpace([]byte(text))

	if err := json.Unmarshal(src, new(any)); err != nil {
		return "", &MalformedError{Kind: domain.ErrInvalidJSON, Detail: describeJSONError(err)}
	}

	dec := json.NewDecoder(bytes.NewReader(src))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return "", &MalformedError{Kind: domain.ErrInvalidJSON, Detail: describeJSONError(err)}
	}

	var compact bytes.Buffer
	if err := encodeValue(&compact, v); err != nil {
		return "", fmt.Errorf("failed to encode JSON: %w", err)
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", strings.Repeat(" ", indent)); err != nil {
		return "", fmt.Errorf("failed to indent JSON: %w", err)
	}
	return out.String(), nil
}

// decodeValue reads one value from dec, keeping objects ordered.
func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := orderedmap.New[string, any]()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key is %T, not a string", keyTok)
				}
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				obj.Set(key, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return obj, nil
		case '[':
			arr := []any{}
			for dec.More() {
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t)
	default:
		return tok, nil
	}
}

// encodeValue writes v as compact JSON without HTML escaping.
func encodeValue(buf *bytes.Buffer, v any) error {
	switch t := v.(type) {
	case *object:
		buf.WriteByte('{')
		first := true
		for pair := t.Oldest(); pair != nil; pair = pair.Next() {
			if !first {
				buf.WriteByte(',')
			}
			first = false
			if err := encodeScalar(buf, pair.Key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := encodeValue(buf, pair.Value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case []any:
		buf.WriteByte('[')
		for i, item := range t {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeValue(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case json.Number:
		buf.WriteString(t.String())
	default:
		return encodeScalar(buf, t)
	}
	return nil
}

func encodeScalar(buf *bytes.Buffer, v any) error {
	var scratch bytes.Buffer
	enc := json.NewEncoder(&scratch)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(scratch.Bytes(), []byte("\n")))
	return nil
}

// JSON is the built-in formatter for KindJSON. Options.Color is ignored.
func JSON(req domain.Request) string {
	out, err := FormatJSON(req.Text, req.Options.Indent)
	if err != nil {
		var malformed *MalformedError
		if errors.As(err, &malformed) {
			return domain.MsgInvalidJSON + malformed.Detail
		}
		return domain.MsgInvalidJSON + err.Error()
	}
	return out
}

// ValidJSON reports whether text is a single well-formed JSON value.
func ValidJSON(text string) bool {
	return json.Valid(bytes.TrimSpace([]byte(text)))
}

func describeJSONError(err error) string {
	var syntax *json.SyntaxError
	if errors.As(err, &syntax) {
		return fmt.Sprintf("%s (offset %d)", syntax.Error(), syntax.Offset)
	}
	return err.Error()
}
