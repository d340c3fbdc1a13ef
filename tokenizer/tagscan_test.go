package tokenizer

import "testing"

func TestEmptyTagNameFallsBackToLiteralLessThan(t *testing.T) {
	tz := New("<>text", false)
	tok, ok := tz.Next()
	if !ok {
		t.Fatalf("expected a token")
	}
	if tok.Kind != CharacterToken || tok.Data != "<" {
		t.Fatalf("got %+v, want Character \"<\"", tok)
	}
}

func TestUnterminatedTagNoAttributesIsEmptyCharacter(t *testing.T) {
	tz := New("<div", false)
	tok, ok := tz.Next()
	if !ok {
		t.Fatalf("expected a token")
	}
	if tok.Kind != CharacterToken || tok.Data != "" {
		t.Fatalf("got %+v, want empty Character", tok)
	}
	if !tok.IsLastToken {
		t.Errorf("expected IsLastToken=true")
	}
}

func TestUnterminatedTagWithAttributesEmitsAttributeTextVerbatim(t *testing.T) {
	tz := New("<div a=1 b", false)
	tok, ok := tz.Next()
	if !ok {
		t.Fatalf("expected a token")
	}
	if tok.Kind != CharacterToken || tok.Data != "a=1 b" {
		t.Fatalf("got %+v, want Character \"a=1 b\"", tok)
	}
}

func TestEOFInsideQuotedAttributeSuppressesTag(t *testing.T) {
	tz := New(`<div a="1`, false)
	tok, ok := tz.Next()
	if !ok {
		t.Fatalf("expected a token")
	}
	if tok.Kind != CharacterToken || tok.Data != "" {
		t.Fatalf("got %+v, want empty Character", tok)
	}
	if !tok.IsLastToken {
		t.Errorf("expected IsLastToken=true")
	}
	if _, ok := tz.Next(); ok {
		t.Errorf("expected no further tokens")
	}
}

func TestBogusCommentUnterminatedToEOF(t *testing.T) {
	tz := New("<!weird", false)
	tok, ok := tz.Next()
	if !ok {
		t.Fatalf("expected a token")
	}
	if tok.Kind != CommentToken || tok.Data != "weird" {
		t.Fatalf("got %+v, want Comment \"weird\"", tok)
	}
}

func TestEndTagWithAttributesIgnoresThem(t *testing.T) {
	tz := New(`</div a="1">`, false)
	tok, ok := tz.Next()
	if !ok {
		t.Fatalf("expected a token")
	}
	if tok.Kind != EndTagToken || tok.TagName != "div" {
		t.Fatalf("got %+v, want EndTag div", tok)
	}
}
