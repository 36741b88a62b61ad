package voxnova

import "strings"

// Lookup walks the catalog along a dot-separated key path and returns the
// message at that path. Empty segments caused by leading, trailing, or
// doubled dots are skipped. The walk fails when a segment is missing, when
// an intermediate segment lands on a Message, or when the final segment
// lands on a nested Catalog.
func (c Catalog) Lookup(path string) (Message, bool) {
	if c == nil {
		return Message{}, false
	}

	segments := strings.Split(path, ".")
	var resolved Node = c

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		catalog, ok := resolved.(Catalog)
		if !ok {
			// partial path into a Message is absent, not a partial match
			return Message{}, false
		}

		next, ok := catalog[segment]
		if !ok {
			return Message{}, false
		}
		resolved = next
	}

	msg, ok := resolved.(Message)
	if !ok {
		return Message{}, false
	}
	return msg, true
}
