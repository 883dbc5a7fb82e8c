// Package mimewalk recursively walks a MIME body, splitting multipart
// boundaries, decoding transfer encodings, and invoking the injected
// S/MIME and TNEF capabilities, to produce a flat ordered list of leaf
// parts.
package mimewalk

import (
	"strings"

	"github.com/mailchannels/msgparse/log"
	"github.com/mailchannels/msgparse/message/mimeheader"
	"github.com/mailchannels/msgparse/message/mimeparam"
	"github.com/mailchannels/msgparse/message/procflags"
	"github.com/mailchannels/msgparse/message/smime"
	"github.com/mailchannels/msgparse/message/tnef"
	"github.com/mailchannels/msgparse/message/transfer"
)

// Part is one leaf MIME part produced by a walk.
type Part struct {
	Name                   string
	ContentType            string
	Charset                string
	ContentID              string
	Bytes                  []byte
	SmimeSigned            bool
	SmimeEncryptedEnvelope bool
	SmimeTripleWrapped     bool
}

// Options bundles the collaborators and settings a walk needs.
type Options struct {
	Flags  procflags.Flags
	Cms    smime.Provider
	Tnef   tnef.Decoder
	Logger log.Logger
}

func (o Options) logger() log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.Default
}

// Extract is the entry point: given a part's (possibly top-level)
// content type, transfer encoding and body, it returns the ordered
// flattened list of leaf parts found within.
func Extract(contentType, cte string, body []byte, opt Options) []Part {
	ct := strings.TrimSpace(contentType)

	switch {
	case strings.HasPrefix(ct, "multipart/"):
		boundary, _ := mimeparam.Boundary(ct)
		return extractMultipart(boundary, body, opt)

	case ct == "application/ms-tnef":
		return extractTNEF(transfer.Decode("base64", body), opt)

	case isPkcs7Mime(ct):
		return extractPkcs7Mime(body, opt, opt.Flags.Has(procflags.IncludeSmimeEncryptedEnvelopeData))

	default:
		decoded := transfer.Decode(cte, body)
		charset, _ := mimeparam.Charset(ct)
		return []Part{{ContentType: mimeparam.Bare(ct), Charset: charset, Bytes: decoded}}
	}
}

func isPkcs7Signature(ct string) bool {
	return strings.HasPrefix(ct, "application/pkcs7-signature") ||
		strings.HasPrefix(ct, "application/x-pkcs7-signature")
}

func isPkcs7Mime(ct string) bool {
	return strings.HasPrefix(ct, "application/pkcs7-mime") ||
		strings.HasPrefix(ct, "application/x-pkcs7-mime")
}

func isTnefPart(ct, fileName string) bool {
	return ct == "application/ms-tnef" || strings.EqualFold(fileName, "winmail.dat")
}

// extractMultipart splits body on boundary and walks each sub-part,
// then applies the detached-signature attestation rule if exactly one
// signature block and two total sub-bodies were seen.
func extractMultipart(boundary string, body []byte, opt Options) []Part {
	if boundary == "" {
		// missing boundary: the multipart yields zero sub-parts
		return nil
	}
	segments := splitBoundary(body, boundary)

	var parts []Part
	var mimeBlocks [][]byte
	sigIdx := -1
	sigCount := 0

	for _, seg := range segments {
		subHeader, subBody, _ := mimeheader.SplitHeaderBody(seg)
		info := mimeheader.Parse(subHeader)
		bareCT := info.Bare()

		mimeBlocks = append(mimeBlocks, subBody)
		blockIdx := len(mimeBlocks) - 1

		switch {
		case strings.HasPrefix(bareCT, "multipart/"):
			parts = append(parts, Extract(info.ContentType, info.ContentTransferEncoding, subBody, opt)...)

		case isPkcs7Signature(bareCT):
			sigCount++
			sigIdx = blockIdx
			if opt.Flags.Has(procflags.IncludeSmimeSignedData) {
				parts = append(parts, Part{ContentType: bareCT, Bytes: subBody})
			}

		case isPkcs7Mime(bareCT):
			parts = append(parts, extractPkcs7Mime(subBody, opt, opt.Flags.Has(procflags.IncludeSmimeEncryptedEnvelopeData))...)

		case isTnefPart(bareCT, info.FileName):
			parts = append(parts, extractTNEF(transfer.Decode(info.ContentTransferEncoding, subBody), opt)...)

		default:
			decoded := transfer.Decode(info.ContentTransferEncoding, subBody)
			parts = append(parts, Part{
				ContentType: bareCT,
				Charset:     info.Charset,
				ContentID:   info.ContentID,
				Name:        info.FileName,
				Bytes:       decoded,
			})
		}
	}

	if sigCount == 1 && len(mimeBlocks) == 2 && opt.Cms != nil {
		contentIdx := 1 - sigIdx
		sig := strings.TrimSuffix(string(mimeBlocks[sigIdx]), "\r\n\r\n")
		if opt.Cms.VerifySignature([]byte(sig), mimeBlocks[contentIdx]) {
			for i := range parts {
				parts[i].SmimeSigned = true
				if parts[i].SmimeEncryptedEnvelope {
					parts[i].SmimeTripleWrapped = true
				}
			}
		} else {
			opt.logger().Debug("smime: signature verification failed")
		}
	}

	return parts
}

// extractPkcs7Mime handles an application/pkcs7-mime envelope: it
// optionally emits an opaque smime.p7m part, then decrypts the envelope
// and recurses into its plaintext MIME contents, tagging every part
// produced as smime_encrypted_envelope.
func extractPkcs7Mime(body []byte, opt Options, keepOpaque bool) []Part {
	var parts []Part
	if keepOpaque {
		parts = append(parts, Part{ContentType: "application/pkcs7-mime", Name: "smime.p7m", Bytes: body})
	}
	if opt.Cms == nil {
		return parts
	}
	plaintext, ok := opt.Cms.DecryptEnvelope(body)
	if !ok {
		opt.logger().Debug("smime: envelope decryption failed or unsupported")
		return parts
	}
	header, innerBody, _ := mimeheader.SplitHeaderBody(plaintext)
	info := mimeheader.Parse(header)
	inner := Extract(info.ContentType, info.ContentTransferEncoding, innerBody, opt)
	for i := range inner {
		inner[i].SmimeEncryptedEnvelope = true
	}
	return append(parts, inner...)
}

// extractTNEF invokes the injected TNEF decoder and flattens its result
// into the part list, optionally keeping a synthetic winmail.dat part
// for the decoded body.
func extractTNEF(data []byte, opt Options) []Part {
	if opt.Tnef == nil {
		return nil
	}
	res, ok := opt.Tnef.Decode(data)
	if !ok {
		opt.logger().Debug("tnef: decode failed")
		return nil
	}

	var parts []Part
	if opt.Flags.Has(procflags.IncludeWinMailData) && res.HasBody {
		parts = append(parts, Part{ContentType: res.ContentType, Name: "winmail.dat", Bytes: []byte(res.Body)})
	}
	for _, a := range res.Attachments {
		parts = append(parts, Part{ContentType: a.ContentType, Name: a.Name, Bytes: a.Data})
	}
	return parts
}

// splitBoundary scans body for "--boundary" delimiters and returns the
// (trimmed) span between each consecutive pair as one sub-part. It stops
// scanning once the terminating "--boundary--" is found, so any epilogue
// content after it is ignored.
func splitBoundary(body []byte, boundary string) [][]byte {
	delim := "--" + boundary
	s := string(body)

	var idxs []int
	pos := 0
	for {
		i := strings.Index(s[pos:], delim)
		if i < 0 {
			break
		}
		abs := pos + i
		idxs = append(idxs, abs)
		pos = abs + len(delim)
		if isTerminator(s, abs, delim) {
			break
		}
	}
	if len(idxs) < 2 {
		return nil
	}

	segments := make([][]byte, 0, len(idxs)-1)
	for k := 0; k < len(idxs)-1; k++ {
		segStart := idxs[k] + len(delim)
		seg := s[segStart:idxs[k+1]]
		segments = append(segments, []byte(trimBoundarySegment(seg)))
	}
	return segments
}

func isTerminator(s string, idx int, delim string) bool {
	end := idx + len(delim)
	return end+2 <= len(s) && s[end:end+2] == "--"
}

func trimBoundarySegment(seg string) string {
	seg = strings.TrimPrefix(seg, "\r\n")
	seg = strings.TrimSuffix(seg, "\r\n")
	return seg
}
