package message

import (
	"io"
	"mime"
	"net/mail"
	"strings"
	"time"

	"golang.org/x/net/html/charset"

	"github.com/mailchannels/msgparse/message/addr"
	"github.com/mailchannels/msgparse/message/headerfold"
	"github.com/mailchannels/msgparse/message/mimeparam"
)

// extendedSetter assigns a header's decoded value onto ExtendedProperties.
type extendedSetter func(ep *ExtendedProperties, value string)

var extendedFields = map[string]extendedSetter{
	"authentication-results": func(ep *ExtendedProperties, v string) { ep.AuthenticationResults = v },
	"dkim-signature":         func(ep *ExtendedProperties, v string) { ep.DkimSignature = v },
	"domainkey-signature":    func(ep *ExtendedProperties, v string) { ep.DkimSignature = v },
	"bounces-to":             func(ep *ExtendedProperties, v string) { ep.BouncesTo = v },
	"disposition-notification-to": func(ep *ExtendedProperties, v string) {
		ep.DispositionNotificationTo = v
	},
	"errors-to":         func(ep *ExtendedProperties, v string) { ep.ErrorsTo = v },
	"list-unsubscribe":  func(ep *ExtendedProperties, v string) { ep.ListUnsubscribe = v },
	"mailer":            func(ep *ExtendedProperties, v string) { ep.Mailer = v },
	"x-mailer":          func(ep *ExtendedProperties, v string) { ep.Mailer = v },
	"organization":      func(ep *ExtendedProperties, v string) { ep.Organization = v },
	"x-organization":    func(ep *ExtendedProperties, v string) { ep.Organization = v },
	"original-message-id": func(ep *ExtendedProperties, v string) {
		ep.OriginalMessageID = trimAngles(v)
	},
	"originating-email": func(ep *ExtendedProperties, v string) { ep.OriginatingEmail = v },
	"originating-ip":    func(ep *ExtendedProperties, v string) { ep.OriginatingIP = v },
	"precedence":        func(ep *ExtendedProperties, v string) { ep.Precedence = v },
	"received-spf":      func(ep *ExtendedProperties, v string) { ep.ReceivedSPF = v },
	"references":        func(ep *ExtendedProperties, v string) { ep.References = v },
	"resent-from":       func(ep *ExtendedProperties, v string) { ep.ResentFrom = v },
	"resent-message-id": func(ep *ExtendedProperties, v string) { ep.ResentMessageID = trimAngles(v) },
	"thread-index":      func(ep *ExtendedProperties, v string) { ep.ThreadIndex = v },
	"thread-topic":      func(ep *ExtendedProperties, v string) { ep.ThreadTopic = v },
	"user-agent":        func(ep *ExtendedProperties, v string) { ep.UserAgent = v },
	"auto-response-suppress": func(ep *ExtendedProperties, v string) {
		ep.AutoResponseSuppress = v
	},
	"campaign-id":     func(ep *ExtendedProperties, v string) { ep.CampaignID = v },
	"x-campaign-id":   func(ep *ExtendedProperties, v string) { ep.CampaignID = v },
	"x-campaignid":    func(ep *ExtendedProperties, v string) { ep.CampaignID = v },
	"delivery-context": func(ep *ExtendedProperties, v string) {
		ep.DeliveryContext = v
	},
	"mail-list-id":     func(ep *ExtendedProperties, v string) { ep.MailListID = v },
	"msmail-priority":  func(ep *ExtendedProperties, v string) { ep.MSMailPriority = v },
	"rcpt-to":          func(ep *ExtendedProperties, v string) { ep.RcptTo = stripOneEachEnd(v) },
	"report-abuse":     func(ep *ExtendedProperties, v string) { ep.ReportAbuse = v },
	"x-report-abuse":   func(ep *ExtendedProperties, v string) { ep.ReportAbuse = v },
	"abuse-reports-to": func(ep *ExtendedProperties, v string) { ep.ReportAbuse = v },
	"spam-score":       func(ep *ExtendedProperties, v string) { ep.SpamScore = v },
}

// applyHeaders walks the tokenised header stream and populates pm's
// envelope fields, per the primary-field table, then the extended
// fields when parseExtended is set.
func applyHeaders(pm *ParsedMessage, headerBlock []byte, parseExtended bool) {
	var ep *ExtendedProperties
	if parseExtended {
		ep = &ExtendedProperties{}
	}

	seenContentType := false

	for _, f := range headerfold.Tokenize(headerBlock) {
		switch f.Name {
		case "from":
			if a, ok := addr.ParseFirst(f.Value); ok {
				pm.From = a
				pm.HasFrom = true
			}
		case "to":
			pm.To = addr.ParseList(f.Value)
		case "cc":
			pm.Cc = addr.ParseList(f.Value)
		case "bcc":
			pm.Bcc = addr.ParseList(f.Value)
		case "reply-to", "replyto":
			pm.ReplyTo = addr.ParseList(f.Value)
		case "sender", "x-sender":
			if a, ok := addr.ParseFirst(f.Value); ok {
				pm.Sender = a
				pm.HasSender = true
			}
		case "subject":
			pm.Subject = decodeSubject(f.Value)
		case "date", "resent-date", "x-original-arrival-time":
			if t, ok := parseDate(f.Value); ok {
				pm.Date = t
				pm.HasDate = true
			}
		case "message-id":
			pm.MessageID = trimAngles(f.Value)
		case "in-reply-to":
			pm.InReplyTo = trimAngles(f.Value)
		case "return-path":
			pm.ReturnPath = trimAngles(f.Value)
		case "content-type":
			if !seenContentType {
				pm.rawContentType = strings.TrimSpace(f.Value)
				pm.ContentType = bareContentType(f.Value)
				if cs, ok := mimeparam.Charset(f.Value); ok {
					pm.Charset = cs
				}
				seenContentType = true
			}
		case "content-transfer-encoding":
			pm.ContentTransferEncoding = strings.TrimSpace(f.Value)
		case "content-language":
			pm.ContentLanguage = strings.TrimSpace(f.Value)
		case "delivered-to":
			pm.DeliveredTo = strings.TrimSpace(f.Value)
		case "importance":
			pm.Importance = strings.TrimSpace(f.Value)
		case "received", "x-received":
			pm.ReceivedChain = append(pm.ReceivedChain, f.Value)
		case "x-priority":
			if p, ok := parsePriority(f.Value); ok {
				pm.Priority = p
			}
		case "x-subject-encryption":
			pm.SubjectEncryption = parseBool(f.Value)
		}

		if ep != nil {
			if setter, ok := extendedFields[f.Name]; ok {
				setter(ep, strings.TrimSpace(f.Value))
			}
		}
	}

	if ep != nil {
		ep.HopCount = len(pm.ReceivedChain)
		pm.Extended = ep
	}
}

func trimAngles(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "<")
	s = strings.TrimSuffix(s, ">")
	return s
}

func bareContentType(value string) string {
	return mimeparam.Bare(value)
}

func stripOneEachEnd(s string) string {
	if len(s) < 2 {
		return s
	}
	return s[1 : len(s)-1]
}

// decodeSubject RFC 2047-decodes an encoded-word subject, falling back
// to the raw value on any decode error, then strips embedded CR/LF.
func decodeSubject(raw string) string {
	dec := mime.WordDecoder{CharsetReader: charsetReader}
	decoded, err := dec.DecodeHeader(raw)
	if err != nil {
		decoded = raw
	}
	decoded = strings.ReplaceAll(decoded, "\r", "")
	decoded = strings.ReplaceAll(decoded, "\n", "")
	return decoded
}

func charsetReader(label string, input io.Reader) (io.Reader, error) {
	return charset.NewReaderLabel(label, input)
}

// parsePriority matches X-Priority's low/normal/high enum, case
// insensitively, also tolerating the numeric 1-5 scale some clients
// send (1-2 high, 3 normal, 4-5 low).
func parsePriority(value string) (Priority, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch {
	case strings.HasPrefix(v, "high"), v == "1", v == "2":
		return PriorityHigh, true
	case strings.HasPrefix(v, "low"), v == "4", v == "5":
		return PriorityLow, true
	case strings.HasPrefix(v, "normal"), v == "3":
		return PriorityNormal, true
	}
	return PriorityNormal, false
}

func parseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "yes", "1":
		return true
	default:
		return false
	}
}

// parseDate best-effort parses a Date-family header value: it strips a
// trailing "(...)" parenthetical comment and, failing that, a trailing
// timezone name, before giving up.
func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	if t, err := mail.ParseDate(raw); err == nil {
		return t, true
	}
	stripped := stripParenthetical(raw)
	if t, err := mail.ParseDate(stripped); err == nil {
		return t, true
	}
	stripped = stripTrailingZoneName(stripped)
	if t, err := mail.ParseDate(stripped); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func stripParenthetical(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasSuffix(s, ")") {
		return s
	}
	open := strings.LastIndexByte(s, '(')
	if open < 0 {
		return s
	}
	return strings.TrimSpace(s[:open])
}

func stripTrailingZoneName(s string) string {
	i := strings.LastIndexByte(s, ' ')
	if i < 0 {
		return s
	}
	tail := s[i+1:]
	if len(tail) < 2 || len(tail) > 5 {
		return s
	}
	for _, r := range tail {
		if r < 'A' || r > 'Z' {
			return s
		}
	}
	return strings.TrimSpace(s[:i])
}
