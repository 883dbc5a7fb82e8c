package mimewalk

import (
	"testing"

	"github.com/mailchannels/msgparse/message/procflags"
	"github.com/mailchannels/msgparse/message/tnef"
)

func TestExtractLeafPart(t *testing.T) {
	parts := Extract("text/plain", "7bit", []byte("hello"), Options{})
	if len(parts) != 1 || string(parts[0].Bytes) != "hello" {
		t.Errorf("parts = %+v, want one part with bytes hello", parts)
	}
}

func TestExtractMultipartMissingBoundary(t *testing.T) {
	parts := Extract("multipart/mixed", "7bit", []byte("whatever"), Options{})
	if len(parts) != 0 {
		t.Errorf("parts = %+v, want none for a missing boundary", parts)
	}
}

func TestExtractMultipartTwoParts(t *testing.T) {
	body := []byte("--B\r\nContent-Type: text/plain\r\n\r\nfirst\r\n--B\r\nContent-Type: text/html\r\n\r\nsecond\r\n--B--")
	parts := Extract(`multipart/mixed; boundary="B"`, "7bit", body, Options{})
	if len(parts) != 2 {
		t.Fatalf("parts = %+v, want 2", parts)
	}
	if string(parts[0].Bytes) != "first" || string(parts[1].Bytes) != "second" {
		t.Errorf("parts = %+v, want [first second]", parts)
	}
}

func TestExtractNestedMultipart(t *testing.T) {
	inner := "--C\r\nContent-Type: text/plain\r\n\r\ninner\r\n--C--"
	outer := "--B\r\nContent-Type: multipart/mixed; boundary=\"C\"\r\n\r\n" + inner + "\r\n--B--"
	parts := Extract(`multipart/mixed; boundary="B"`, "7bit", []byte(outer), Options{})
	if len(parts) != 1 || string(parts[0].Bytes) != "inner" {
		t.Errorf("parts = %+v, want one part with bytes inner", parts)
	}
}

func TestExtractPkcs7SignatureSuppressedByDefault(t *testing.T) {
	body := []byte("--B\r\nContent-Type: text/plain\r\n\r\nsigned\r\n--B\r\nContent-Type: application/pkcs7-signature\r\n\r\nSIG\r\n--B--")
	parts := Extract(`multipart/signed; boundary="B"`, "7bit", body, Options{})
	if len(parts) != 1 {
		t.Fatalf("parts = %+v, want just the signed content", parts)
	}
}

func TestExtractPkcs7SignatureKeptWhenFlagSet(t *testing.T) {
	body := []byte("--B\r\nContent-Type: text/plain\r\n\r\nsigned\r\n--B\r\nContent-Type: application/pkcs7-signature\r\n\r\nSIG\r\n--B--")
	opt := Options{Flags: procflags.IncludeSmimeSignedData}
	parts := Extract(`multipart/signed; boundary="B"`, "7bit", body, opt)
	if len(parts) != 2 {
		t.Fatalf("parts = %+v, want both the content and the signature", parts)
	}
}

type fakeTnef struct {
	result tnef.Result
	ok     bool
}

func (f fakeTnef) Decode(data []byte) (tnef.Result, bool) {
	return f.result, f.ok
}

func TestExtractTnefAttachments(t *testing.T) {
	opt := Options{Tnef: fakeTnef{ok: true, result: tnef.Result{
		Attachments: []tnef.Attachment{{Name: "a.doc", ContentType: "application/octet-stream", Data: []byte("D")}},
	}}}
	parts := extractTNEF([]byte("tnef-bytes"), opt)
	if len(parts) != 1 || parts[0].Name != "a.doc" {
		t.Errorf("parts = %+v, want one part named a.doc", parts)
	}
}

func TestExtractTnefWinMailDataFlag(t *testing.T) {
	opt := Options{
		Tnef:  fakeTnef{ok: true, result: tnef.Result{Body: "body", HasBody: true, ContentType: "text/plain"}},
		Flags: procflags.IncludeWinMailData,
	}
	parts := extractTNEF([]byte("tnef-bytes"), opt)
	if len(parts) != 1 || parts[0].Name != "winmail.dat" {
		t.Errorf("parts = %+v, want one part named winmail.dat", parts)
	}
}

func TestExtractTnefNoDecoderConfigured(t *testing.T) {
	parts := extractTNEF([]byte("tnef-bytes"), Options{})
	if parts != nil {
		t.Errorf("parts = %+v, want nil with no TNEF decoder", parts)
	}
}

func TestExtractTnefDecodeFailureNonFatal(t *testing.T) {
	opt := Options{Tnef: fakeTnef{ok: false}}
	parts := extractTNEF([]byte("garbage"), opt)
	if parts != nil {
		t.Errorf("parts = %+v, want nil on decode failure", parts)
	}
}

func TestExtractStripsTrailingContentTypeParameters(t *testing.T) {
	body := []byte("--B\r\nContent-Type: text/plain; charset=utf-8\r\n\r\nbody\r\n--B--")
	parts := Extract(`multipart/mixed; boundary="B"`, "7bit", body, Options{})
	if len(parts) != 1 || parts[0].ContentType != "text/plain" {
		t.Errorf("parts = %+v, want bare content type text/plain", parts)
	}
}
