package headerfold

import "testing"

func TestTokenizeBasic(t *testing.T) {
	fields := Tokenize([]byte("From: a@x\r\nTo: b@y\r\nSubject: hi\r\n"))
	want := []Field{{"from", "a@x"}, {"to", "b@y"}, {"subject", "hi"}}
	if len(fields) != len(want) {
		t.Fatalf("fields = %+v, want %+v", fields, want)
	}
	for i := range want {
		if fields[i] != want[i] {
			t.Errorf("fields[%d] = %+v, want %+v", i, fields[i], want[i])
		}
	}
}

func TestTokenizeFlatContinuation(t *testing.T) {
	fields := Tokenize([]byte("Subject: AAA\r\n BBB\r\n"))
	if len(fields) != 1 || fields[0].Value != "AAABBB" {
		t.Errorf("fields = %+v, want [{subject AAABBB}]", fields)
	}
}

func TestTokenizeCRLFJoinedContinuation(t *testing.T) {
	fields := Tokenize([]byte("Received: hop1\r\n from somewhere\r\n"))
	if len(fields) != 1 {
		t.Fatalf("fields = %+v, want one field", fields)
	}
	want := "hop1\r\n from somewhere"
	if fields[0].Value != want {
		t.Errorf("value = %q, want %q", fields[0].Value, want)
	}
}

func TestTokenizeSingleLineHeaderIgnoresContinuation(t *testing.T) {
	fields := Tokenize([]byte("X-Custom: one\r\n two\r\n"))
	if len(fields) != 1 || fields[0].Value != "one" {
		t.Errorf("fields = %+v, want [{x-custom one}]", fields)
	}
}

func TestTokenizeLaxLFOnlyInput(t *testing.T) {
	fields := Tokenize([]byte("From: a@x\nTo: b@y\n"))
	if len(fields) != 2 {
		t.Fatalf("fields = %+v, want 2 fields", fields)
	}
}

func TestTokenizeIgnoresMalformedLines(t *testing.T) {
	fields := Tokenize([]byte("not a header line\r\nFrom: a@x\r\n:novalue\r\n"))
	if len(fields) != 1 || fields[0].Name != "from" {
		t.Errorf("fields = %+v, want just [{from a@x}]", fields)
	}
}

func TestTokenizeNamesLowercased(t *testing.T) {
	fields := Tokenize([]byte("FROM: a@x\r\n"))
	if fields[0].Name != "from" {
		t.Errorf("name = %q, want from", fields[0].Name)
	}
}

func TestModeForUnknownHeaderIsIgnored(t *testing.T) {
	if ModeFor("x-unknown-header") != JoinIgnore {
		t.Error("expected JoinIgnore for an unlisted header")
	}
}
