package tokenizer

import "testing"

func TestScriptDataPlainEndTagTerminates(t *testing.T) {
	tz := New("<script>var x=1;</script>", false)

	tok, ok := tz.Next()
	if !ok || tok.Kind != StartTagToken || tok.TagName != "script" {
		t.Fatalf("token 1 = %+v, ok=%v", tok, ok)
	}
	tok, ok = tz.Next()
	if !ok || tok.Kind != CharacterToken || tok.Data != "var x=1;" {
		t.Fatalf("token 2 = %+v, ok=%v, want Character \"var x=1;\"", tok, ok)
	}
	tok, ok = tz.Next()
	if !ok || tok.Kind != EndTagToken || tok.TagName != "script" || !tok.IsLastToken {
		t.Fatalf("token 3 = %+v, ok=%v, want last EndTag script", tok, ok)
	}
}

func TestScriptDataEscapeWithoutNestedScriptDoesNotSuppress(t *testing.T) {
	tz := New("<script><!--x</script>y", false)

	tok, ok := tz.Next()
	if !ok || tok.Kind != StartTagToken {
		t.Fatalf("token 1 = %+v, ok=%v", tok, ok)
	}
	tok, ok = tz.Next()
	if !ok || tok.Kind != CharacterToken || tok.Data != "<!--x" {
		t.Fatalf("token 2 = %+v, ok=%v, want Character \"<!--x\"", tok, ok)
	}
	tok, ok = tz.Next()
	if !ok || tok.Kind != EndTagToken || tok.TagName != "script" {
		t.Fatalf("token 3 = %+v, ok=%v, want EndTag script", tok, ok)
	}
	tok, ok = tz.Next()
	if !ok || tok.Kind != CharacterToken || tok.Data != "y" || !tok.IsLastToken {
		t.Fatalf("token 4 = %+v, ok=%v, want last Character \"y\"", tok, ok)
	}
}

func TestScriptDataLeadingCloseCommentDefeatsEscapeState(t *testing.T) {
	// A "-->" appearing anywhere before "<!--" in the accumulated content
	// closes out the escape-comment state even though it comes first in
	// source order: escapeNestedScriptState must scan for "-->" globally,
	// not just in the suffix after the first "<!--".
	tz := New("<script>--><!--<script>x</script>y</script>", false)

	tok, ok := tz.Next()
	if !ok || tok.Kind != StartTagToken {
		t.Fatalf("token 1 = %+v, ok=%v", tok, ok)
	}
	tok, ok = tz.Next()
	if !ok || tok.Kind != CharacterToken || tok.Data != "--><!--<script>x" {
		t.Fatalf("token 2 = %+v, ok=%v, want Character \"--><!--<script>x\"", tok, ok)
	}
	tok, ok = tz.Next()
	if !ok || tok.Kind != EndTagToken || tok.TagName != "script" {
		t.Fatalf("token 3 = %+v, ok=%v, want EndTag script", tok, ok)
	}
	tok, ok = tz.Next()
	if !ok || tok.Kind != CharacterToken || tok.Data != "y" {
		t.Fatalf("token 4 = %+v, ok=%v, want Character \"y\"", tok, ok)
	}
	tok, ok = tz.Next()
	if !ok || tok.Kind != EndTagToken || tok.TagName != "script" || !tok.IsLastToken {
		t.Fatalf("token 5 = %+v, ok=%v, want last EndTag script", tok, ok)
	}
}
