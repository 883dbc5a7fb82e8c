// Package addr parses RFC 5322 address lists, tolerating the bare
// addresses and unquoted display names real-world mail often contains.
//
// It first tries net/mail's strict parser; on failure it falls back to a
// hand-rolled, comma-aware splitter (mirroring the group/mailbox
// tolerance of an RFC 5321-style address parser) that never errors -
// each comma-separated segment yields a best-effort address, and a
// segment with no '@' in it is skipped.
package addr

import (
	"net/mail"
	"strings"
)

// Address is one parsed mailbox: an optional display name plus the bare
// "user@host" address.
type Address struct {
	Name    string
	Address string
}

// ParseList parses a comma-separated address-list header value. It never
// returns an error: malformed entries are tolerated on a best-effort
// basis, and entries that contain no usable address are skipped.
func ParseList(value string) []Address {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	if list, err := mail.ParseAddressList(value); err == nil {
		out := make([]Address, 0, len(list))
		for _, a := range list {
			out = append(out, Address{Name: a.Name, Address: a.Address})
		}
		return out
	}
	return parseTolerant(value)
}

// ParseFirst returns the first address in value, if any.
func ParseFirst(value string) (Address, bool) {
	list := ParseList(value)
	if len(list) == 0 {
		return Address{}, false
	}
	return list[0], true
}

// parseTolerant splits value on top-level commas (not inside quotes or
// angle brackets) and extracts a best-effort address from each segment.
func parseTolerant(value string) []Address {
	var out []Address
	for _, seg := range splitTopLevel(value) {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		if a, ok := parseSegment(seg); ok {
			out = append(out, a)
		}
	}
	return out
}

func splitTopLevel(value string) []string {
	var segs []string
	var cur strings.Builder
	depthAngle, inQuote := 0, false
	for i := 0; i < len(value); i++ {
		c := value[i]
		switch {
		case c == '"':
			inQuote = !inQuote
			cur.WriteByte(c)
		case c == '<' && !inQuote:
			depthAngle++
			cur.WriteByte(c)
		case c == '>' && !inQuote && depthAngle > 0:
			depthAngle--
			cur.WriteByte(c)
		case c == ',' && !inQuote && depthAngle == 0:
			segs = append(segs, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	if cur.Len() > 0 {
		segs = append(segs, cur.String())
	}
	return segs
}

// parseSegment extracts a display name and bare address from one
// mailbox segment, which may be "Name <user@host>", a bare
// "user@host", or a malformed variant of either.
func parseSegment(seg string) (Address, bool) {
	if a, err := mail.ParseAddress(seg); err == nil {
		return Address{Name: a.Name, Address: a.Address}, true
	}

	name := ""
	addr := seg
	if open := strings.IndexByte(seg, '<'); open >= 0 {
		name = strings.TrimSpace(strings.Trim(seg[:open], "\""))
		rest := seg[open+1:]
		if close := strings.IndexByte(rest, '>'); close >= 0 {
			addr = rest[:close]
		} else {
			addr = rest
		}
	}
	addr = strings.TrimSpace(addr)
	if !strings.ContainsRune(addr, '@') {
		return Address{}, false
	}
	return Address{Name: name, Address: addr}, true
}
