package fallback

// MalformedError reports input that a built-in could not parse.
// Kind is one of the domain sentinels (ErrInvalidJSON, ErrInvalidYAML, ErrInvalidTableData).
type MalformedError struct {
	Kind   error
	Detail string
}

func (e *MalformedError) Error() string {
	if e.Detail == "" {
		return e.Kind.Error()
	}
	return e.Kind.Error() + ": " + e.Detail
}

func (e *MalformedError) Unwrap() error {
	return e.Kind
}
