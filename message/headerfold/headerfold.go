// Package headerfold tokenises a raw RFC 5322 header block into an
// ordered sequence of (name, value) pairs, merging folded continuation
// lines according to a per-header join policy.
//
// No regular expressions are used: lines are scanned byte by byte, in
// the same style as the hand-rolled content-type/parameter scanners this
// module is descended from.
package headerfold

import "strings"

// JoinMode controls how a continuation line is merged into the value of
// the most recently recognised header.
type JoinMode int

const (
	// JoinFlat concatenates the continuation with no separator, after
	// trimming its leading whitespace.
	JoinFlat JoinMode = iota
	// JoinCRLF appends "\r\n" followed by the continuation line as-is.
	JoinCRLF
	// JoinIgnore drops the continuation line entirely.
	JoinIgnore
)

// crlfJoined lists headers whose folded continuations are joined with an
// embedded CRLF rather than flattened - headers that accumulate
// multi-line machine-generated blocks (DKIM signatures, Received
// traces, reference lists) where the original line breaks are part of
// the value's meaning.
var crlfJoined = map[string]bool{
	"received":               true,
	"x-received":             true,
	"authentication-results": true,
	"dkim-signature":         true,
	"domainkey-signature":    true,
	"received-spf":           true,
	"references":             true,
	"resent-from":            true,
}

// flatJoined lists headers whose folded continuations are concatenated
// with no separator - ordinary free-text or address-list headers where
// folding is purely a wire-format artifact.
var flatJoined = map[string]bool{
	"bcc":             true,
	"cc":              true,
	"content-type":    true,
	"delivered-to":    true,
	"from":            true,
	"message-id":      true,
	"reply-to":        true,
	"subject":         true,
	"to":              true,
	"list-unsubscribe": true,
	"thread-topic":    true,
	"x-report-abuse":  true,
}

// ModeFor returns the join policy for a lower-cased header name. Headers
// not named in either table are treated as single-line: their
// continuations are ignored.
func ModeFor(lowerName string) JoinMode {
	if crlfJoined[lowerName] {
		return JoinCRLF
	}
	if flatJoined[lowerName] {
		return JoinFlat
	}
	return JoinIgnore
}

// Field is one recognised (name, value) pair. Name is lower-cased; Value
// may contain embedded "\r\n" when JoinCRLF continuations were merged.
type Field struct {
	Name  string
	Value string
}

// Tokenize splits a header octet block into an ordered sequence of
// fields, folding continuation lines per ModeFor. If the block contains
// no '\r' at all, every '\n' is first replaced with "\r\n" (lax
// CR-stripped input recovery) before scanning.
func Tokenize(block []byte) []Field {
	raw := string(block)
	if !strings.ContainsRune(raw, '\r') {
		raw = strings.ReplaceAll(raw, "\n", "\r\n")
	}

	var fields []Field
	lastIdx := -1

	lines := strings.Split(raw, "\r\n")
	for _, line := range lines {
		if line == "" {
			continue
		}
		if isContinuation(line) && lastIdx >= 0 {
			mode := ModeFor(fields[lastIdx].Name)
			switch mode {
			case JoinFlat:
				fields[lastIdx].Value += strings.TrimLeft(line, " \t")
			case JoinCRLF:
				fields[lastIdx].Value += "\r\n" + line
			case JoinIgnore:
				// dropped
			}
			continue
		}
		name, value, ok := splitHeaderStart(line)
		if !ok {
			continue
		}
		fields = append(fields, Field{Name: strings.ToLower(name), Value: value})
		lastIdx = len(fields) - 1
	}
	return fields
}

func isContinuation(line string) bool {
	return len(line) > 0 && (line[0] == ' ' || line[0] == '\t')
}

// splitHeaderStart recognises a header start line: a ':' at position p
// with 0 < p < len-1. The byte immediately after the colon is always
// consumed, whether or not it is a space.
func splitHeaderStart(line string) (name, value string, ok bool) {
	p := strings.IndexByte(line, ':')
	if p <= 0 || p >= len(line)-1 {
		return "", "", false
	}
	name = line[:p]
	if p+2 <= len(line) {
		value = line[p+2:]
	} else {
		value = ""
	}
	return name, value, true
}
