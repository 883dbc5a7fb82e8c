// Package message implements a read-only parser for Internet Mail
// (RFC 5322) messages carrying MIME (RFC 2045-2049) structure and,
// optionally, S/MIME (RFC 5751/CMS) cryptographic wrapping.
//
// Parse takes a single raw octet blob - headers, a blank-line delimiter,
// and a body - and produces a ParsedMessage: parsed envelope fields, a
// canonical text body, an ordered attachment list, and boolean S/MIME
// attributes describing whether the message's non-cryptographic parts
// were signed, encrypted, or triple-wrapped.
//
// The parser is fail-open: malformed input never produces an error, it
// degrades to a best-effort ParsedMessage instead. Nothing above Debug
// is ever logged from within it.
package message

import (
	"time"

	"github.com/mailchannels/msgparse/log"
	"github.com/mailchannels/msgparse/message/addr"
	"github.com/mailchannels/msgparse/message/procflags"
	"github.com/mailchannels/msgparse/message/smime"
	"github.com/mailchannels/msgparse/message/tnef"
)

// Priority mirrors the X-Priority header's three-value enum.
type Priority int

const (
	PriorityNormal Priority = iota
	PriorityLow
	PriorityHigh
)

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityHigh:
		return "High"
	default:
		return "Normal"
	}
}

// MarshalJSON renders Priority as its name rather than an int, so
// round-tripped JSON stays human-readable.
func (p Priority) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.String() + `"`), nil
}

// Attachment is one ordered item of a ParsedMessage's attachment list.
type Attachment struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	ContentID   string `json:"content_id,omitempty"`
	Bytes       []byte `json:"bytes"`
}

// ExtendedProperties holds the optional, less commonly needed header
// fields captured only when Options.ParseExtended is set. It is
// allocated exactly once per Parse call.
type ExtendedProperties struct {
	AuthenticationResults     string `json:"authentication_results,omitempty"`
	DkimSignature             string `json:"dkim_signature,omitempty"`
	BouncesTo                 string `json:"bounces_to,omitempty"`
	DispositionNotificationTo string `json:"disposition_notification_to,omitempty"`
	ErrorsTo                  string `json:"errors_to,omitempty"`
	ListUnsubscribe           string `json:"list_unsubscribe,omitempty"`
	Mailer                    string `json:"mailer,omitempty"`
	Organization              string `json:"organization,omitempty"`
	OriginalMessageID         string `json:"original_message_id,omitempty"`
	OriginatingEmail          string `json:"originating_email,omitempty"`
	OriginatingIP             string `json:"originating_ip,omitempty"`
	Precedence                string `json:"precedence,omitempty"`
	ReceivedSPF               string `json:"received_spf,omitempty"`
	References                string `json:"references,omitempty"`
	ResentFrom                string `json:"resent_from,omitempty"`
	ResentMessageID           string `json:"resent_message_id,omitempty"`
	ThreadIndex               string `json:"thread_index,omitempty"`
	ThreadTopic               string `json:"thread_topic,omitempty"`
	UserAgent                 string `json:"user_agent,omitempty"`
	AutoResponseSuppress      string `json:"auto_response_suppress,omitempty"`
	CampaignID                string `json:"campaign_id,omitempty"`
	DeliveryContext           string `json:"delivery_context,omitempty"`
	MailListID                string `json:"mail_list_id,omitempty"`
	MSMailPriority            string `json:"msmail_priority,omitempty"`
	RcptTo                    string `json:"rcpt_to,omitempty"`
	ReportAbuse               string `json:"report_abuse,omitempty"`
	SpamScore                 string `json:"spam_score,omitempty"`
	// HopCount is computed, not a header: len(received_chain). It is
	// only meaningful once extended headers are being captured anyway.
	HopCount int `json:"hop_count,omitempty"`
}

// Options configures a Parse call: which optional data to retain, and
// which S/MIME and TNEF capabilities to delegate to.
type Options struct {
	Flags         procflags.Flags
	ParseExtended bool
	Cms           smime.Provider
	Tnef          tnef.Decoder
	Logger        log.Logger
}

// ParsedMessage is the read-only product of Parse.
type ParsedMessage struct {
	From    addr.Address   `json:"from"`
	HasFrom bool            `json:"has_from"`
	To      []addr.Address `json:"to,omitempty"`
	Cc      []addr.Address `json:"cc,omitempty"`
	Bcc     []addr.Address `json:"bcc,omitempty"`
	ReplyTo []addr.Address `json:"reply_to,omitempty"`

	Sender    addr.Address `json:"sender"`
	HasSender bool          `json:"has_sender"`

	Subject string    `json:"subject"`
	Date    time.Time `json:"date,omitempty"`
	HasDate bool      `json:"has_date"`

	MessageID     string   `json:"message_id,omitempty"`
	InReplyTo     string   `json:"in_reply_to,omitempty"`
	DeliveredTo   string   `json:"delivered_to,omitempty"`
	ReturnPath    string   `json:"return_path,omitempty"`
	ReceivedChain []string `json:"received_chain,omitempty"`

	ContentType             string   `json:"content_type,omitempty"`
	ContentTransferEncoding string   `json:"content_transfer_encoding,omitempty"`
	ContentLanguage         string   `json:"content_language,omitempty"`
	Charset                 string   `json:"charset,omitempty"`
	Importance              string   `json:"importance,omitempty"`
	Priority                Priority `json:"priority"`

	BodyText   string `json:"body_text"`
	IsBodyHTML bool   `json:"is_body_html"`

	Attachments []Attachment `json:"attachments,omitempty"`

	RawHeaders string `json:"raw_headers,omitempty"`
	RawBody    string `json:"raw_body,omitempty"`
	Size       int    `json:"size"`

	SmimeSigned            bool `json:"smime_signed"`
	SmimeEncryptedEnvelope bool `json:"smime_encrypted_envelope"`
	SmimeTripleWrapped     bool `json:"smime_triple_wrapped"`

	Extended *ExtendedProperties `json:"extended,omitempty"`

	Mailbox  string   `json:"mailbox,omitempty"`
	ImapUID  uint32   `json:"imap_uid,omitempty"`
	Pop3UIDL string   `json:"pop3_uidl,omitempty"`
	Index    int      `json:"index,omitempty"`
	Flags    Flags    `json:"flags"`
	RawFlags []string `json:"raw_flags,omitempty"`

	SubjectEncryption bool `json:"subject_encryption"`

	// rawContentType keeps the full top-level Content-Type value
	// (including parameters such as boundary) for the MIME walker's
	// dispatch; ContentType itself is stored bare, per the data model.
	rawContentType string
}
