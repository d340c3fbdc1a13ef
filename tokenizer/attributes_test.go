package tokenizer

import "testing"

func TestParseAttributesBasic(t *testing.T) {
	selfClosing, attrs := parseAttributes(`a="1" b="2"`)
	if selfClosing {
		t.Errorf("expected not self-closing")
	}
	if attrs.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", attrs.Len())
	}
	if v, _ := attrs.Get("a"); v != "1" {
		t.Errorf("a = %q, want 1", v)
	}
	if v, _ := attrs.Get("b"); v != "2" {
		t.Errorf("b = %q, want 2", v)
	}
}

func TestParseAttributesSelfClosingTrailingSlash(t *testing.T) {
	selfClosing, attrs := parseAttributes(`a="1" /`)
	if !selfClosing {
		t.Errorf("expected self-closing")
	}
	if v, _ := attrs.Get("a"); v != "1" {
		t.Errorf("a = %q, want 1", v)
	}
}

func TestParseAttributesUnquotedValue(t *testing.T) {
	_, attrs := parseAttributes(`a=1 b=2`)
	if v, _ := attrs.Get("a"); v != "1" {
		t.Errorf("a = %q, want 1", v)
	}
	if v, _ := attrs.Get("b"); v != "2" {
		t.Errorf("b = %q, want 2", v)
	}
}

func TestParseAttributesBooleanNoValue(t *testing.T) {
	_, attrs := parseAttributes(`disabled required`)
	if attrs.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", attrs.Len())
	}
	if v, ok := attrs.Get("disabled"); !ok || v != "" {
		t.Errorf("disabled = %q, %v, want empty, true", v, ok)
	}
}

func TestParseAttributesCaseInsensitiveNameFirstWins(t *testing.T) {
	_, attrs := parseAttributes(`a=1 A=2`)
	if attrs.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", attrs.Len())
	}
	if v, _ := attrs.Get("a"); v != "1" {
		t.Errorf("a = %q, want 1 (first occurrence wins)", v)
	}
}

func TestParseAttributesEntityDecodedValue(t *testing.T) {
	_, attrs := parseAttributes(`href="a&amp;b"`)
	if v, _ := attrs.Get("href"); v != "a&b" {
		t.Errorf("href = %q, want a&b", v)
	}
}

func TestSlashDelimitedDetection(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"/a/b", true},
		{"//a/b", true},
		{"a=1", false},
		{`a="1/2"`, false},
		{"a/b=1", false},
		{"noSlashHere", false},
	}
	for _, c := range cases {
		if got := slashDelimited(c.in); got != c.want {
			t.Errorf("slashDelimited(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
