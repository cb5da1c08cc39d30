package fallback

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-runewidth"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/aretw0/prettifier/pkg/domain"
)

// TableStyle selects the table renderer.
type TableStyle string

const (
	// TableRich draws rounded box borders.
	TableRich TableStyle = "rich"
	// TableASCII draws a plain "|" separated grid.
	TableASCII TableStyle = "ascii"
)

// Valid reports whether s names a known table style.
func (s TableStyle) Valid() bool {
	return s == TableRich || s == TableASCII
}

// Table is tabular data extracted from a JSON document.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Empty reports whether the table has neither headers nor rows.
func (t *Table) Empty() bool {
	return len(t.Headers) == 0 && len(t.Rows) == 0
}

// Columns returns the widest row length, headers included.
func (t *Table) Columns() int {
	n := len(t.Headers)
	for _, row := range t.Rows {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

// ParseTable extracts a Table from JSON data.
//
// An array of objects yields headers from the first object's keys, in document
// order. An array of arrays yields header-less rows. A single object is a
// one-row table. Scalars and empty arrays yield an empty table.
func ParseTable(data string) (*Table, error) {
	src := bytes.TrimSpace([]byte(data))
	if !json.Valid(src) {
		return nil, &MalformedError{Kind: domain.ErrInvalidTableData}
	}

	var items []json.RawMessage
	switch src[0] {
	case '[':
		if err := json.Unmarshal(src, &items); err != nil {
			return nil, &MalformedError{Kind: domain.ErrInvalidTableData, Detail: err.Error()}
		}
	case '{':
		items = []json.RawMessage{src}
	default:
		return &Table{}, nil
	}
	if len(items) == 0 {
		return &Table{}, nil
	}

	if isObject(items[0]) {
		return objectTable(items)
	}
	return arrayTable(items)
}

func objectTable(items []json.RawMessage) (*Table, error) {
	first, err := decodeObject(items[0])
	if err != nil {
		return nil, err
	}
	t := &Table{}
	for pair := first.Oldest(); pair != nil; pair = pair.Next() {
		t.Headers = append(t.Headers, pair.Key)
	}

	for _, item := range items {
		row := make([]string, len(t.Headers))
		if isObject(item) {
			obj, err := decodeObject(item)
			if err != nil {
				return nil, err
			}
			for i, h := range t.Headers {
				if v, ok := obj.Get(h); ok {
					row[i] = cellText(v)
				}
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

func arrayTable(items []json.RawMessage) (*Table, error) {
	t := &Table{}
	for _, item := range items {
		trimmed := bytes.TrimSpace(item)
		switch {
		case len(trimmed) > 0 && trimmed[0] == '[':
			var cells []json.RawMessage
			if err := json.Unmarshal(trimmed, &cells); err != nil {
				return nil, &MalformedError{Kind: domain.ErrInvalidTableData, Detail: err.Error()}
			}
			row := make([]string, len(cells))
			for i, c := range cells {
				row[i] = cellText(c)
			}
			t.Rows = append(t.Rows, row)
		case isObject(trimmed):
			obj, err := decodeObject(trimmed)
			if err != nil {
				return nil, err
			}
			var row []string
			for pair := obj.Oldest(); pair != nil; pair = pair.Next() {
				row = append(row, cellText(pair.Value))
			}
			t.Rows = append(t.Rows, row)
		default:
			t.Rows = append(t.Rows, []string{cellText(trimmed)})
		}
	}
	return t, nil
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

func decodeObject(raw json.RawMessage) (*orderedmap.OrderedMap[string, json.RawMessage], error) {
	obj := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(raw, obj); err != nil {
		return nil, &MalformedError{Kind: domain.ErrInvalidTableData, Detail: err.Error()}
	}
	return obj, nil
}

// cellText renders strings unquoted, null as empty and everything else as compact JSON.
func cellText(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return ""
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			return s
		}
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return string(trimmed)
	}
	return buf.String()
}

// RenderTable draws t in the given style with an optional title above it.
// An empty table renders as the underlined title alone, or "" without a title.
func RenderTable(t *Table, title string, style TableStyle, color bool) string {
	if t.Empty() {
		return underline(title)
	}
	if style == TableASCII {
		return RenderASCII(t, title)
	}
	return RenderRich(t, title, color)
}

// RenderRich draws t with rounded borders, with the title on its own line above
// the frame. Headers and title are bold, headers also magenta, when color is set.
func RenderRich(t *Table, title string, color bool) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	style := tw.Style()
	style.Format.Header = text.FormatDefault
	if color {
		style.Color.Header = text.Colors{text.Bold, text.FgMagenta}
	}

	if len(t.Headers) > 0 {
		tw.AppendHeader(toRow(t.Headers))
	}
	for _, r := range t.Rows {
		tw.AppendRow(toRow(r))
	}
	if title == "" {
		return tw.Render()
	}
	if color {
		title = text.Colors{text.Bold}.Sprint(title)
	}
	return title + "\n" + tw.Render()
}

// RenderASCII draws t as " | " separated columns padded to display width,
// with a "-+-" rule under the header row.
func RenderASCII(t *Table, title string) string {
	cols := t.Columns()
	widths := make([]int, cols)
	measure := func(row []string) {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(t.Headers)
	for _, row := range t.Rows {
		measure(row)
	}

	var lines []string
	if title != "" {
		lines = append(lines, underline(title))
	}
	if len(t.Headers) > 0 {
		lines = append(lines, joinCells(t.Headers, widths))
		rule := make([]string, cols)
		for i, w := range widths {
			rule[i] = strings.Repeat("-", w)
		}
		lines = append(lines, strings.Join(rule, "-+-"))
	}
	for _, row := range t.Rows {
		lines = append(lines, joinCells(row, widths))
	}
	return strings.Join(lines, "\n")
}

func joinCells(row []string, widths []int) string {
	cells := make([]string, len(widths))
	for i, w := range widths {
		var cell string
		if i < len(row) {
			cell = row[i]
		}
		if i < len(widths)-1 {
			cell = runewidth.FillRight(cell, w)
		}
		cells[i] = cell
	}
	return strings.Join(cells, " | ")
}

func underline(title string) string {
	if title == "" {
		return ""
	}
	return title + "\n" + strings.Repeat("-", runewidth.StringWidth(title))
}

func toRow(cells []string) table.Row {
	row := make(table.Row, len(cells))
	for i, c := range cells {
		row[i] = c
	}
	return row
}
