package domain

import "errors"

// ErrTimedOut is reported when a renderer exceeds its timeout.
var ErrTimedOut = errors.New("timed out")

// ErrEmptyOutput is reported when a renderer exits cleanly but prints nothing.
var ErrEmptyOutput = errors.New("empty output")

// ErrInvalidJSON is returned by the JSON fallback for malformed input.
var ErrInvalidJSON = errors.New("invalid json")

// ErrInvalidYAML is returned by the YAML fallback for malformed input.
var ErrInvalidYAML = errors.New("invalid yaml")

// ErrInvalidTableData is returned by the table fallback when data is not JSON.
var ErrInvalidTableData = errors.New("invalid table data")

// ErrUnknownOperation is returned when an operation name is not registered.
var ErrUnknownOperation = errors.New("unknown operation")

// User-facing messages. These are part of the service contract.
const (
	MsgInvalidJSON      = "Invalid JSON: "
	MsgInvalidYAML      = "Invalid YAML: "
	MsgInvalidTableData = "Invalid JSON data for table"
	MsgUnknownTool      = "Unknown tool: "
	MsgInvalidArguments = "Invalid arguments for "
)
