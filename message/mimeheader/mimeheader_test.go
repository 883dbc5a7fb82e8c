package mimeheader

import "testing"

func TestParseBasic(t *testing.T) {
	info := Parse([]byte("Content-Type: text/plain; charset=utf-8\r\nContent-Transfer-Encoding: base64\r\n"))
	if info.Bare() != "text/plain" {
		t.Errorf("Bare = %q, want text/plain", info.Bare())
	}
	if info.Charset != "utf-8" {
		t.Errorf("Charset = %q, want utf-8", info.Charset)
	}
	if info.ContentTransferEncoding != "base64" {
		t.Errorf("ContentTransferEncoding = %q, want base64", info.ContentTransferEncoding)
	}
}

func TestParseFileNameFromDisposition(t *testing.T) {
	info := Parse([]byte(`Content-Disposition: attachment; name="x.bin"` + "\r\n"))
	if info.FileName != "x.bin" {
		t.Errorf("FileName = %q, want x.bin", info.FileName)
	}
}

func TestParseFileNameFallsBackToContentType(t *testing.T) {
	info := Parse([]byte(`Content-Type: application/octet-stream; name="y.bin"` + "\r\n"))
	if info.FileName != "y.bin" {
		t.Errorf("FileName = %q, want y.bin", info.FileName)
	}
}

func TestParseContentIDStripsAngles(t *testing.T) {
	info := Parse([]byte("Content-ID: <abc123>\r\n"))
	if info.ContentID != "abc123" {
		t.Errorf("ContentID = %q, want abc123", info.ContentID)
	}
}

func TestSplitHeaderBody(t *testing.T) {
	header, body, ok := SplitHeaderBody([]byte("A: b\r\n\r\nthe body"))
	if !ok || string(header) != "A: b" || string(body) != "the body" {
		t.Errorf("header=%q body=%q ok=%v", header, body, ok)
	}
}

func TestSplitHeaderBodyNoDelimiter(t *testing.T) {
	header, body, ok := SplitHeaderBody([]byte("A: b\r\n"))
	if ok {
		t.Error("ok = true, want false with no delimiter")
	}
	if string(header) != "A: b\r\n" || body != nil {
		t.Errorf("header=%q body=%v, want whole input as header and nil body", header, body)
	}
}
