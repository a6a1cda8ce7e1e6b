package receipt

import "strings"

// Document accumulates lines of a fixed-width plain-text receipt.
// Thermal printers driven through the RawBT text pipeline expect plain
// UTF-8 with newlines, so unlike an ESC/POS stream there are no control
// bytes — alignment is done purely with space padding.
type Document struct {
	width int
	lines []string
}

// NewDocument creates a document with the given character width.
// 32 columns is the standard for 58mm paper.
func NewDocument(width int) *Document {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Document{width: width}
}

// Width returns the column width of the document.
func (d *Document) Width() int {
	return d.width
}

// Text writes a left-aligned line, truncated to the document width.
func (d *Document) Text(s string) *Document {
	if len(s) > d.width {
		s = s[:d.width]
	}
	d.lines = append(d.lines, s)
	return d
}

// Center writes a line centered by left padding. Longer lines are
// written as-is truncated to the width.
func (d *Document) Center(s string) *Document {
	if len(s) >= d.width {
		return d.Text(s)
	}
	pad := (d.width - len(s)) / 2
	d.lines = append(d.lines, strings.Repeat(" ", pad)+s)
	return d
}

// Row writes a left-aligned label against a right-aligned value,
// space-padded to exactly the document width. When label+value exceed
// the width the padding clamps at zero rather than truncating either
// side.
func (d *Document) Row(label, value string) *Document {
	pad := d.width - len(label) - len(value)
	if pad < 0 {
		pad = 0
	}
	d.lines = append(d.lines, label+strings.Repeat(" ", pad)+value)
	return d
}

// Separator writes a full-width dashed line.
func (d *Document) Separator() *Document {
	d.lines = append(d.lines, strings.Repeat("-", d.width))
	return d
}

// Blank writes an empty line.
func (d *Document) Blank() *Document {
	d.lines = append(d.lines, "")
	return d
}

// Lines returns the accumulated lines.
func (d *Document) Lines() []string {
	return d.lines
}

// String renders the document with a trailing newline.
func (d *Document) String() string {
	return strings.Join(d.lines, "\n") + "\n"
}
