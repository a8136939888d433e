package systemctl

import (
	"fmt"
	"strings"
)

// DocKind discriminates the kinds of documentation a unit can reference
type DocKind int

const (
	// DocMan references a man page
	DocMan DocKind = iota
	// DocURL references a web page
	DocURL
)

// Doc is one documentation reference from a unit's Docs: block
type Doc struct {
	// Kind discriminates how Ref should be interpreted
	Kind DocKind
	// Ref is the man page name or the full URL
	Ref string
}

// AsMan returns the man page name and true when the doc is a man reference
func (d Doc) AsMan() (string, bool) {
	if d.Kind == DocMan {
		return d.Ref, true
	}
	return "", false
}

// AsURL returns the address and true when the doc is a web reference
func (d Doc) AsURL() (string, bool) {
	if d.Kind == DocURL {
		return d.Ref, true
	}
	return "", false
}

// ParseDoc builds a Doc from one status descriptor line. A descriptor is
// scheme:payload with exactly one separator. man payloads are truncated
// at the first '(' to drop the section-number annotation; http and https
// payloads keep their scheme. Any other scheme, or a line without exactly
// one separator, fails with ErrMalformedDoc; callers accumulate the lines
// that parse and skip the rest.
func ParseDoc(line string) (Doc, error) {
	items := strings.Split(line, ":")
	if len(items) != 2 {
		return Doc{}, fmt.Errorf("%w: %q", ErrMalformedDoc, line)
	}
	switch items[0] {
	case "man":
		name, _, _ := strings.Cut(items[1], "(")
		return Doc{Kind: DocMan, Ref: name}, nil
	case "http":
		return Doc{Kind: DocURL, Ref: "http:" + strings.TrimSpace(items[1])}, nil
	case "https":
		return Doc{Kind: DocURL, Ref: "https:" + strings.TrimSpace(items[1])}, nil
	default:
		return Doc{}, fmt.Errorf("%w: unknown scheme %q", ErrMalformedDoc, items[0])
	}
}
