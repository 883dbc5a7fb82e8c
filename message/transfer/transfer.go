// Package transfer implements the MIME Content-Transfer-Encoding codec:
// base64, quoted-printable, and identity pass-through for 7bit/8bit/binary
// and anything unrecognised.
package transfer

import (
	"bytes"
	"encoding/base64"
	"io/ioutil"
	"mime/quotedprintable"
	"strings"
)

// Decode decodes text per the named transfer encoding (matched
// case-insensitively). Unrecognised encodings, including "7bit",
// "8bit" and "binary", are returned unchanged.
func Decode(encoding string, text []byte) []byte {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "base64":
		return decodeBase64(text)
	case "quoted-printable":
		return decodeQuotedPrintable(text)
	default:
		return text
	}
}

// decodeBase64 strips embedded whitespace (line folding inserted by mail
// clients) before decoding, and returns whatever prefix decoded cleanly
// if the payload is truncated or corrupt.
func decodeBase64(text []byte) []byte {
	clean := make([]byte, 0, len(text))
	for _, b := range text {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		default:
			clean = append(clean, b)
		}
	}
	out := make([]byte, base64.StdEncoding.DecodedLen(len(clean)))
	if n, err := base64.StdEncoding.Decode(out, clean); err == nil {
		return out[:n]
	}
	// corruption is usually a trailing truncation; back off to the
	// largest whole-quantum prefix that decodes cleanly
	end := roundDown4(len(clean))
	if end == len(clean) {
		end -= 4
	}
	for ; end > 0; end -= 4 {
		if n, err := base64.StdEncoding.Decode(out, clean[:end]); err == nil {
			return out[:n]
		}
	}
	return nil
}

func roundDown4(n int) int {
	return n - n%4
}

func decodeQuotedPrintable(text []byte) []byte {
	out, err := ioutil.ReadAll(quotedprintable.NewReader(bytes.NewReader(text)))
	if err != nil && len(out) == 0 {
		return text
	}
	return out
}
