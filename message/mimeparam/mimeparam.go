// Package mimeparam extracts parameters (boundary, charset, name) from
// MIME header values by direct byte scanning - no regular expressions,
// no backtracking.
package mimeparam

import "strings"

// Bare strips any trailing ";..." parameter block from a header value
// such as Content-Type, returning just the leading token, trimmed.
func Bare(value string) string {
	if i := strings.IndexByte(value, ';'); i >= 0 {
		value = value[:i]
	}
	return strings.TrimSpace(value)
}

// Extract finds a "key=" parameter in value, case-insensitively. If the
// parameter's content is quoted, the quotes are stripped; otherwise the
// value runs to the next ';' or the end of the string and is trimmed.
func Extract(value, key string) (string, bool) {
	lower := strings.ToLower(value)
	needle := strings.ToLower(key) + "="
	idx := 0
	for {
		rel := strings.Index(lower[idx:], needle)
		if rel < 0 {
			return "", false
		}
		pos := idx + rel
		// require a boundary before the match: start of string, ';' or
		// whitespace, so "filename=" doesn't match a search for "name="
		if pos > 0 {
			prev := value[pos-1]
			if prev != ';' && prev != ' ' && prev != '\t' && prev != '\r' && prev != '\n' {
				idx = pos + len(needle)
				continue
			}
		}
		rest := value[pos+len(needle):]
		return readParamValue(rest), true
	}
}

func readParamValue(rest string) string {
	if len(rest) > 0 && rest[0] == '"' {
		rest = rest[1:]
		if end := strings.IndexByte(rest, '"'); end >= 0 {
			return rest[:end]
		}
		return rest
	}
	if end := strings.IndexByte(rest, ';'); end >= 0 {
		return strings.TrimSpace(rest[:end])
	}
	return strings.TrimSpace(rest)
}

// Boundary extracts the boundary parameter from a multipart Content-Type
// value, preferring the quoted form.
func Boundary(contentType string) (string, bool) {
	if i := strings.Index(strings.ToLower(contentType), `boundary="`); i >= 0 {
		return readParamValue(contentType[i+len("boundary="):]), true
	}
	return Extract(contentType, "boundary")
}

// Charset extracts the charset parameter from a Content-Type value.
func Charset(contentType string) (string, bool) {
	return Extract(contentType, "charset")
}

// Name extracts a name parameter from a Content-Disposition or
// Content-Type value.
func Name(value string) (string, bool) {
	return Extract(value, "name")
}
