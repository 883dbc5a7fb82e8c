package transfer

import (
	"bytes"
	"encoding/base64"
	"mime/quotedprintable"
	"testing"
)

func TestDecodeBase64(t *testing.T) {
	got := Decode("base64", []byte("aGVsbG8="))
	if string(got) != "hello" {
		t.Errorf("Decode = %q, want hello", got)
	}
}

func TestDecodeBase64IgnoresEmbeddedWhitespace(t *testing.T) {
	got := Decode("base64", []byte("aGVs\r\nbG8="))
	if string(got) != "hello" {
		t.Errorf("Decode = %q, want hello", got)
	}
}

func TestDecodeBase64CaseInsensitive(t *testing.T) {
	got := Decode("BASE64", []byte("aGVsbG8="))
	if string(got) != "hello" {
		t.Errorf("Decode = %q, want hello", got)
	}
}

func TestDecodeQuotedPrintable(t *testing.T) {
	got := Decode("quoted-printable", []byte("h=65llo"))
	if string(got) != "hello" {
		t.Errorf("Decode = %q, want hello", got)
	}
}

func TestDecodeQuotedPrintableSoftLineBreak(t *testing.T) {
	got := Decode("quoted-printable", []byte("hel=\r\nlo"))
	if string(got) != "hello" {
		t.Errorf("Decode = %q, want hello", got)
	}
}

func TestDecodeIdentityForSevenEightBitBinary(t *testing.T) {
	for _, enc := range []string{"7bit", "8bit", "binary", "unknown-thing", ""} {
		got := Decode(enc, []byte("as-is"))
		if string(got) != "as-is" {
			t.Errorf("Decode(%q) = %q, want as-is", enc, got)
		}
	}
}

// round-trip property: decode(encode(x)) == x, on arbitrary octets.
func TestBase64RoundTrip(t *testing.T) {
	in := []byte{0, 1, 2, 3, 255, 254, 10, 13, 32, 65}
	enc := base64.StdEncoding.EncodeToString(in)
	got := Decode("base64", []byte(enc))
	if !bytes.Equal(got, in) {
		t.Errorf("round trip = %v, want %v", got, in)
	}
}

func TestQuotedPrintableRoundTrip(t *testing.T) {
	in := []byte("hello = world\r\nwith a tab\tand high byte \xc3\xa9")
	var buf bytes.Buffer
	w := quotedprintable.NewWriter(&buf)
	w.Write(in)
	w.Close()

	got := Decode("quoted-printable", buf.Bytes())
	if !bytes.Equal(got, in) {
		t.Errorf("round trip = %q, want %q", got, in)
	}
}
