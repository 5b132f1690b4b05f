package directive

import (
	"bytes"

	"github.com/indaco/toolsver/internal/toolsversion"
)

// Writer rewrites the directive of manifest contents.
type Writer struct {
	locator  *Locator
	template Spelling
}

// NewWriter creates a Writer on top of locator. Inserted directives use the
// locator's first spelling.
func NewWriter(locator *Locator) *Writer {
	if locator == nil {
		locator = defaultLocator
	}
	return &Writer{locator: locator, template: locator.spellings[0]}
}

var defaultWriter = NewWriter(defaultLocator)

// Rewrite sets the directive of data to v using the default spellings.
func Rewrite(data []byte, v toolsversion.Version) ([]byte, error) {
	return defaultWriter.Rewrite(data, v)
}

// Rewrite returns a copy of data whose directive declares v.
//
// An existing directive keeps its marker, keyword, separator and spacing;
// only the version payload changes. A malformed directive is returned as an
// error and data is left alone.
//
// When there is no directive, a new line is inserted on the first line
// Locate inspects. That is the first line of the file, with two
// exceptions: a UTF-8 byte-order mark stays in front of it, and a leading
// shebang or "-*-" mode line stays above it, so the directive becomes the
// second line. Every other byte of data follows the inserted line
// unchanged.
func (w *Writer) Rewrite(data []byte, v toolsversion.Version) ([]byte, error) {
	loc, err := w.locator.Locate(data)
	if err != nil {
		return nil, err
	}

	if loc != nil {
		return replace(data, loc, v), nil
	}
	return w.insert(data, v), nil
}

func replace(data []byte, loc *Location, v toolsversion.Version) []byte {
	payload := v.String()

	out := make([]byte, 0, len(data)-(loc.End-loc.VersionStart)+len(payload))
	out = append(out, data[:loc.VersionStart]...)
	out = append(out, payload...)
	out = append(out, data[loc.End:]...)
	return out
}

func (w *Writer) insert(data []byte, v toolsversion.Version) []byte {
	eol := LineEnding(data)
	line := w.template.Line(v)

	at := 0
	if bytes.HasPrefix(data, utf8BOM) {
		at = len(utf8BOM)
	}

	var head []byte
	if end, next := lineBounds(data, at); isLeadingMarker(data[at:end]) {
		if next < 0 {
			// Leading marker without a line terminator.
			head = append(append(head, data...), eol...)
			at = len(data)
		} else {
			at = next
		}
	}
	if head == nil {
		head = data[:at]
	}

	out := make([]byte, 0, len(data)+len(line)+2*len(eol))
	out = append(out, head...)
	out = append(out, line...)
	out = append(out, eol...)
	out = append(out, data[at:]...)
	return out
}

// LineEnding returns the line terminator used by data: the one found at the
// first line break, or "\n" when there is none.
func LineEnding(data []byte) string {
	i := bytes.IndexByte(data, '\n')
	if i > 0 && data[i-1] == '\r' {
		return "\r\n"
	}
	return "\n"
}
