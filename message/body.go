package message

import (
	"bytes"
	"io/ioutil"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/mailchannels/msgparse/message/mimewalk"
)

// selectBody picks the canonical text body from the flat leaf-part list
// per the body-selector rules: prefer text/html, else the first text/*
// part; non-text parts become attachments; a later text/html part
// replaces an earlier non-html pick without the displaced part becoming
// an attachment.
func selectBody(pm *ParsedMessage, parts []mimewalk.Part) {
	bodyIdx := -1
	var attachments []Attachment

	for i, p := range parts {
		isText := p.ContentType == "" || strings.HasPrefix(p.ContentType, "text/")
		if isText {
			switch {
			case bodyIdx == -1:
				bodyIdx = i
			case !strings.HasPrefix(parts[bodyIdx].ContentType, "text/html") && strings.HasPrefix(p.ContentType, "text/html"):
				bodyIdx = i
			}
			continue
		}
		attachments = append(attachments, Attachment{
			Name:        p.Name,
			ContentType: p.ContentType,
			ContentID:   p.ContentID,
			Bytes:       p.Bytes,
		})
	}

	if bodyIdx >= 0 {
		bp := parts[bodyIdx]
		pm.BodyText = decodeText(bp.Bytes, bp.Charset)
		pm.IsBodyHTML = strings.HasPrefix(bp.ContentType, "text/html")
		if bp.Charset != "" {
			pm.Charset = bp.Charset
		}
		if bp.ContentType != "" {
			pm.ContentType = bp.ContentType
		}
	}
	pm.Attachments = attachments

	if pm.SubjectEncryption && strings.HasPrefix(pm.BodyText, "Subject: ") {
		rest := pm.BodyText[len("Subject: "):]
		if idx := strings.Index(rest, "\r\n"); idx >= 0 {
			pm.Subject = rest[:idx]
			pm.BodyText = rest[idx+2:]
		} else {
			pm.Subject = rest
			pm.BodyText = ""
		}
	}
}

// decodeText decodes raw bytes to a UTF-8 string per the declared
// charset, falling back to treating the bytes as UTF-8/ASCII already
// when the charset is empty, unrecognised, or decoding fails.
func decodeText(data []byte, charsetName string) string {
	if charsetName == "" || strings.EqualFold(charsetName, "utf-8") || strings.EqualFold(charsetName, "us-ascii") {
		return string(data)
	}
	r, err := charset.NewReaderLabel(charsetName, bytes.NewReader(data))
	if err != nil {
		return string(data)
	}
	out, err := ioutil.ReadAll(r)
	if err != nil && len(out) == 0 {
		return string(data)
	}
	return string(out)
}
