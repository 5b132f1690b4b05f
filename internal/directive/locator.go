package directive

import (
	"bytes"
	"errors"

	"github.com/indaco/toolsver/internal/toolsversion"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Locator finds the tools-version directive in manifest contents.
type Locator struct {
	spellings []Spelling
}

// NewLocator creates a Locator trying the given spellings in order.
// With no arguments the DefaultSpellings are used.
func NewLocator(spellings ...Spelling) *Locator {
	if len(spellings) == 0 {
		spellings = DefaultSpellings
	}
	return &Locator{spellings: spellings}
}

// Spellings returns the spellings tried by the locator, in priority order.
func (l *Locator) Spellings() []Spelling {
	return l.spellings
}

var defaultLocator = NewLocator()

// Locate finds the directive in data using the default spellings.
func Locate(data []byte) (*Location, error) {
	return defaultLocator.Locate(data)
}

// Locate scans the eligible lines of data for a directive.
//
// It returns (nil, nil) when there is no directive, and a
// *MalformedDirectiveError when the keyword is present but the version
// cannot be decoded.
func (l *Locator) Locate(data []byte) (*Location, error) {
	start := 0
	if bytes.HasPrefix(data, utf8BOM) {
		start = len(utf8BOM)
	}

	end, next := lineBounds(data, start)
	loc, err := l.matchLine(data, start, end)
	if loc != nil || err != nil {
		return loc, err
	}

	if next < 0 || !isLeadingMarker(data[start:end]) {
		return nil, nil
	}

	end, _ = lineBounds(data, next)
	return l.matchLine(data, next, end)
}

// lineBounds returns the end of the line starting at start (excluding the
// line terminator) and the offset of the following line, or -1 at EOF.
func lineBounds(data []byte, start int) (end, next int) {
	i := bytes.IndexByte(data[start:], '\n')
	if i < 0 {
		return len(data), -1
	}
	end = start + i
	next = end + 1
	if end > start && data[end-1] == '\r' {
		end--
	}
	return end, next
}

// isLeadingMarker reports whether line may precede the directive:
// a shebang or an editor mode line such as "# -*- coding: utf-8 -*-".
func isLeadingMarker(line []byte) bool {
	line = bytes.TrimLeft(line, " \t")
	if bytes.HasPrefix(line, []byte("#!")) {
		return true
	}
	return bytes.Count(line, []byte("-*-")) >= 2
}

func (l *Locator) matchLine(data []byte, start, end int) (*Location, error) {
	var firstErr error
	for _, sp := range l.spellings {
		loc, err := matchSpelling(data, start, end, sp)
		switch {
		case loc != nil:
			return loc, nil
		case err == nil:
			continue
		case errors.Is(err, ErrMissingSeparator):
			// A later spelling may use a different separator.
			if firstErr == nil {
				firstErr = err
			}
		default:
			return nil, err
		}
	}
	return nil, firstErr
}

// matchSpelling tries a single spelling against data[start:end].
// A nil location with a nil error means the keyword was not found.
func matchSpelling(data []byte, start, end int, sp Spelling) (*Location, error) {
	i := skipSpace(data, start, end)
	markerStart := i

	if !bytes.HasPrefix(data[i:end], []byte(sp.Marker)) {
		return nil, nil
	}
	i = skipSpace(data, i+len(sp.Marker), end)

	if end-i < len(sp.Keyword) || !bytes.EqualFold(data[i:i+len(sp.Keyword)], []byte(sp.Keyword)) {
		return nil, nil
	}
	i += len(sp.Keyword)
	if i < end && isKeywordChar(data[i]) {
		return nil, nil
	}

	raw := string(bytes.TrimRight(data[markerStart:end], " \t\r"))

	i = skipSpace(data, i, end)
	if i >= end || data[i] != sp.Separator {
		return nil, &MalformedDirectiveError{Raw: raw, Err: ErrMissingSeparator}
	}
	i = skipSpace(data, i+1, end)

	versionStart := i
	for i < end && !isPayloadTerminator(data[i]) {
		i++
	}
	if i == versionStart {
		return nil, &MalformedDirectiveError{Raw: raw, Err: ErrMissingVersion}
	}

	v, err := toolsversion.Parse(string(data[versionStart:i]))
	if err != nil {
		return nil, &MalformedDirectiveError{Raw: raw, Err: err}
	}

	return &Location{
		Start:        markerStart,
		End:          i,
		VersionStart: versionStart,
		Raw:          string(data[markerStart:i]),
		Version:      v,
		Spelling:     sp,
	}, nil
}

func skipSpace(data []byte, i, end int) int {
	for i < end && (data[i] == ' ' || data[i] == '\t') {
		i++
	}
	return i
}

func isKeywordChar(c byte) bool {
	return c == '-' || c == '_' ||
		(c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z')
}

func isPayloadTerminator(c byte) bool {
	return c == ' ' || c == '\t' || c == ';' || c == '\r'
}
