// Package sections manages the delimited region of a profile document that
// is owned by the report generator. Everything outside the start/end markers
// is immutable from this package's perspective.
package sections

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMarkerNotFound is returned when the document does not contain the
// expected start/end marker pair. This is a hard failure, deliberately
// distinct from "content unchanged".
var ErrMarkerNotFound = errors.New("section marker not found")

// Marker templates. The section name is configurable so several tools can
// manage independent regions of the same document.
const (
	startMarkerFormat = "<!--START_SECTION:%s-->"
	endMarkerFormat   = "<!--END_SECTION:%s-->"
)

// StartMarker returns the literal start delimiter for a section name.
func StartMarker(name string) string {
	return fmt.Sprintf(startMarkerFormat, name)
}

// EndMarker returns the literal end delimiter for a section name.
func EndMarker(name string) string {
	return fmt.Sprintf(endMarkerFormat, name)
}

// Replace substitutes the region between the section markers (inclusive)
// with the markers wrapping body. The span is located with explicit index
// scans rather than a pattern match, so a missing marker is an explicit
// error branch. changed reports whether the result differs byte-for-byte
// from the input document.
func Replace(document, body, name string) (out string, changed bool, err error) {
	start := StartMarker(name)
	end := EndMarker(name)

	startIdx := strings.Index(document, start)
	if startIdx < 0 {
		return "", false, fmt.Errorf("%w: %s", ErrMarkerNotFound, start)
	}

	afterStart := startIdx + len(start)

	endOffset := strings.Index(document[afterStart:], end)
	if endOffset < 0 {
		return "", false, fmt.Errorf("%w: %s", ErrMarkerNotFound, end)
	}

	endIdx := afterStart + endOffset + len(end)
	replacement := start + "\n" + body + "\n" + end

	out = document[:startIdx] + replacement + document[endIdx:]

	return out, out != document, nil
}
