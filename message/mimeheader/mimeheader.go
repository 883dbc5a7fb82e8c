// Package mimeheader derives the per-part MIME attributes (content type,
// charset, transfer encoding, disposition, filename, content id) from a
// part's header block.
package mimeheader

import (
	"strings"

	"github.com/mailchannels/msgparse/message/headerfold"
	"github.com/mailchannels/msgparse/message/mimeparam"
)

// Info holds the MIME attributes of a single part, as derived from its
// header block.
type Info struct {
	ContentType             string // full value, e.g. "text/plain; charset=utf-8"
	Charset                 string
	ContentTransferEncoding string
	ContentDisposition      string
	FileName                string
	ContentID               string
}

// Bare returns the Content-Type with any trailing ";..." parameters
// stripped.
func (i Info) Bare() string {
	return mimeparam.Bare(i.ContentType)
}

// Parse derives Info from a part's raw header block, using the same
// folding rules as the top-level header tokeniser. Content-Type is
// first-occurrence-wins; the rest are last-wins, matching the envelope
// header assignment policy.
func Parse(block []byte) Info {
	var info Info
	seenContentType := false

	for _, f := range headerfold.Tokenize(block) {
		switch f.Name {
		case "content-type":
			if !seenContentType {
				info.ContentType = strings.TrimSpace(f.Value)
				seenContentType = true
			}
		case "content-transfer-encoding":
			info.ContentTransferEncoding = strings.TrimSpace(f.Value)
		case "content-disposition":
			info.ContentDisposition = strings.TrimSpace(f.Value)
		case "content-id":
			info.ContentID = trimAngles(strings.TrimSpace(f.Value))
		}
	}

	if cs, ok := mimeparam.Charset(info.ContentType); ok {
		info.Charset = cs
	}

	if name, ok := mimeparam.Name(info.ContentDisposition); ok {
		info.FileName = name
	} else if name, ok := mimeparam.Extract(info.ContentDisposition, "filename"); ok {
		info.FileName = name
	} else if name, ok := mimeparam.Name(info.ContentType); ok {
		info.FileName = name
	}

	return info
}

func trimAngles(s string) string {
	s = strings.TrimPrefix(s, "<")
	s = strings.TrimSuffix(s, ">")
	return s
}

// SplitHeaderBody splits raw on the first literal "\r\n\r\n" delimiter.
// If the delimiter is absent, the whole input is returned as the header
// block and the body is empty, per the parser's fail-open fallback.
func SplitHeaderBody(raw []byte) (header, body []byte, hasDelim bool) {
	idx := indexDelim(raw)
	if idx < 0 {
		return raw, nil, false
	}
	return raw[:idx], raw[idx+4:], true
}

func indexDelim(raw []byte) int {
	return strings.Index(string(raw), "\r\n\r\n")
}
