package message

import (
	"bytes"
	"strings"

	"github.com/mailchannels/msgparse/message/mimeheader"
	"github.com/mailchannels/msgparse/message/mimewalk"
	"github.com/mailchannels/msgparse/message/procflags"
)

// Parse constructs a ParsedMessage from a single raw octet blob in one
// shot. It never returns an error: malformed input degrades to a
// best-effort result rather than an error.
func Parse(raw []byte, opt Options) *ParsedMessage {
	pm := &ParsedMessage{Size: len(raw)}

	// Lax recovery for CR-stripped input: with no '\r' anywhere, every
	// '\n' becomes "\r\n" before the header/body split.
	if bytes.IndexByte(raw, '\r') < 0 {
		raw = bytes.ReplaceAll(raw, []byte("\n"), []byte("\r\n"))
	}

	headerBlock, body, hasDelim := mimeheader.SplitHeaderBody(raw)
	if !hasDelim {
		// Missing "\r\n\r\n" separator: the entire input is headers,
		// body is empty.
		headerBlock = raw
		body = nil
	}

	applyHeaders(pm, headerBlock, opt.ParseExtended)

	if opt.Flags.Has(procflags.IncludeRawHeaders) {
		pm.RawHeaders = string(headerBlock)
	}
	if opt.Flags.Has(procflags.IncludeRawBody) {
		pm.RawBody = string(body)
	}

	walkOpts := mimewalk.Options{
		Flags:  opt.Flags,
		Cms:    opt.Cms,
		Tnef:   opt.Tnef,
		Logger: opt.Logger,
	}
	parts := mimewalk.Extract(pm.rawContentType, pm.ContentTransferEncoding, body, walkOpts)

	computeSmimeFlags(pm, parts)
	selectBody(pm, parts)

	// A multipart that yields no sub-parts (e.g. its boundary is missing)
	// falls back to the undecoded body as its text.
	if len(parts) == 0 && strings.HasPrefix(pm.rawContentType, "multipart/") {
		pm.BodyText = string(body)
	}

	return pm
}

// New is the two-argument convenience constructor: it joins header and
// body with the canonical blank-line delimiter and parses the result in
// place.
func New(header, body []byte, opt Options) *ParsedMessage {
	raw := make([]byte, 0, len(header)+4+len(body))
	raw = append(raw, header...)
	raw = append(raw, '\r', '\n', '\r', '\n')
	raw = append(raw, body...)
	return Parse(raw, opt)
}

// ParseDefault parses raw with no processing flags and extended-header
// capture disabled - the zero-value Options.
func ParseDefault(raw []byte) *ParsedMessage {
	return Parse(raw, Options{})
}

// computeSmimeFlags folds the flat part list's per-part S/MIME
// provenance bits into the message-level booleans: the AND over every
// non-cryptographic leaf part, true vacuously if there are none.
func computeSmimeFlags(pm *ParsedMessage, parts []mimewalk.Part) {
	signed, encrypted, triple := true, true, true
	any := false

	for _, p := range parts {
		if isCryptoContentType(p.ContentType) {
			continue
		}
		any = true
		signed = signed && p.SmimeSigned
		encrypted = encrypted && p.SmimeEncryptedEnvelope
		triple = triple && p.SmimeTripleWrapped
	}

	if !any {
		pm.SmimeSigned = true
		pm.SmimeEncryptedEnvelope = true
		pm.SmimeTripleWrapped = true
		return
	}
	pm.SmimeSigned = signed
	pm.SmimeEncryptedEnvelope = encrypted
	pm.SmimeTripleWrapped = triple
}

func isCryptoContentType(ct string) bool {
	return strings.HasPrefix(ct, "application/pkcs7-signature") ||
		strings.HasPrefix(ct, "application/x-pkcs7-signature") ||
		strings.HasPrefix(ct, "application/pkcs7-mime") ||
		strings.HasPrefix(ct, "application/x-pkcs7-mime")
}
