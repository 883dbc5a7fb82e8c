package mimeparam

import "testing"

func TestBareStripsParameters(t *testing.T) {
	if got := Bare("text/plain; charset=utf-8"); got != "text/plain" {
		t.Errorf("Bare = %q, want text/plain", got)
	}
}

func TestBoundaryQuoted(t *testing.T) {
	got, ok := Boundary(`multipart/mixed; boundary="B123"`)
	if !ok || got != "B123" {
		t.Errorf("Boundary = %q, %v, want B123, true", got, ok)
	}
}

func TestBoundaryUnquotedTruncatesAtSemicolon(t *testing.T) {
	got, ok := Boundary("multipart/mixed; boundary=B123; charset=utf-8")
	if !ok || got != "B123" {
		t.Errorf("Boundary = %q, %v, want B123, true", got, ok)
	}
}

func TestCharsetExtraction(t *testing.T) {
	got, ok := Charset("text/plain; charset=ISO-8859-1")
	if !ok || got != "ISO-8859-1" {
		t.Errorf("Charset = %q, %v, want ISO-8859-1, true", got, ok)
	}
}

func TestNameDoesNotMatchFilenameParam(t *testing.T) {
	_, ok := Name(`attachment; filename="x.bin"`)
	if ok {
		t.Error("Name matched filename=, want no match (name= is a distinct parameter)")
	}
}

func TestNameMatchesExactParam(t *testing.T) {
	got, ok := Name(`attachment; name="x.bin"`)
	if !ok || got != "x.bin" {
		t.Errorf("Name = %q, %v, want x.bin, true", got, ok)
	}
}

func TestExtractDoesNotMatchSuffix(t *testing.T) {
	// "filename=" must not satisfy a search for "name="
	_, ok := Extract(`Content-Disposition: attachment; filename="x.bin"`, "name")
	if ok {
		t.Error("Extract matched filename= when searching for name=, want no match")
	}
}

func TestExtractMissing(t *testing.T) {
	_, ok := Extract("text/plain", "boundary")
	if ok {
		t.Error("Extract found a boundary where none exists")
	}
}
