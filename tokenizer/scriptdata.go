package tokenizer

import "strings"

// nextScriptData implements the §4.7 script-data engine: a variant of
// RAWTEXT for <script> that conditionally suppresses the first </script>
// found inside an escape-comment sequence (<!--<script ...).
func (t *Tokenizer) nextScriptData() (Token, bool) {
	source := t.cur.source
	textStart := t.cur.pos
	searchFrom := t.cur.pos

	for {
		idx := indexFoldASCII(source[searchFrom:], "</script")
		if idx == -1 {
			return t.finishScriptText(textStart, len(source)), true
		}
		candidatePos := searchFrom + idx
		afterName := candidatePos + len("</script")

		if afterName < len(source) && !isScriptEndDelimiter(source[afterName]) {
			// Byte after "script" is alphanumeric or other — not a genuine
			// candidate; the fragment is ordinary text.
			searchFrom = candidatePos + 1
			continue
		}

		closeIdx, _, found := scanTagEndQuoteAware(source, afterName)
		textBeforeTag := source[textStart:candidatePos]
		accumulated := t.scriptContent.String() + textBeforeTag

		if !found {
			// Partial "</script" (optionally with attributes) runs off the
			// end of input with no closing '>'.
			if t.shouldHonorScriptEnd(accumulated) {
				return t.finishScriptEnd(textStart, textBeforeTag, len(source)), true
			}
			return t.finishScriptText(textStart, len(source)), true
		}

		honor := t.shouldHonorScriptEnd(accumulated)
		escaped := escapeNestedScriptState(accumulated)
		if honor && escaped {
			// Refinement: if a complete end tag is seen while the nested-
			// script escape state holds and another "</script" appears
			// later, defer this one — it isn't the real terminator.
			if indexFoldASCII(source[closeIdx+1:], "</script") != -1 {
				honor = false
			}
		}
		if honor {
			return t.finishScriptEnd(textStart, textBeforeTag, closeIdx+1), true
		}
		if escaped {
			t.scriptSuppressedEndOnce = true
		}
		// Not honored: this end tag candidate is part of the script text.
		// Keep scanning for the real terminator past it.
		searchFrom = closeIdx + 1
		if searchFrom >= len(source) {
			return t.finishScriptText(textStart, len(source)), true
		}
	}
}

func (t *Tokenizer) finishScriptText(textStart, newPos int) Token {
	text := t.cur.source[textStart:newPos]
	t.cur.pos = newPos
	t.scriptContent.WriteString(text)
	return Token{Kind: CharacterToken, Data: filterInvalidChars(text)}
}

func (t *Tokenizer) finishScriptEnd(textStart int, textBefore string, newPos int) Token {
	t.cur.pos = newPos
	t.mode = DataMode
	t.rawtextTag = ""
	if textBefore != "" {
		t.scriptContent.WriteString(textBefore)
		t.pending.push(Token{Kind: EndTagToken, TagName: "script"})
		return Token{Kind: CharacterToken, Data: filterInvalidChars(textBefore)}
	}
	return Token{Kind: EndTagToken, TagName: "script"}
}

// shouldHonorScriptEnd implements should_honor_script_end_tag from §4.7.
func (t *Tokenizer) shouldHonorScriptEnd(accumulated string) bool {
	if !strings.Contains(accumulated, "<!--") {
		return true
	}
	if escapeNestedScriptState(accumulated) {
		return t.scriptSuppressedEndOnce
	}
	return true
}

// escapeNestedScriptState reports whether accumulated is currently in the
// "escaped-with-nested-script-tag" state: there is no "-->" anywhere in
// accumulated yet, the first "<!--" is (skipping whitespace) immediately
// followed by "<script" and then a delimiter. The "-->" check is global
// across all of accumulated, not just the tail after "<!--": a "-->" seen
// before the "<!--" still closes out the escape state, matching
// in_escaped_script_comment in the original_source reference tokenizer.
func escapeNestedScriptState(accumulated string) bool {
	if strings.Contains(accumulated, "-->") {
		return false
	}
	idx := strings.Index(accumulated, "<!--")
	if idx == -1 {
		return false
	}
	rest := accumulated[idx+len("<!--"):]
	i := 0
	for i < len(rest) && isAttrWhitespace(rest[i]) {
		i++
	}
	rest = rest[i:]
	if !hasPrefixFoldString(rest, "<script") {
		return false
	}
	after := len("<script")
	if after >= len(rest) {
		return false
	}
	return isScriptEndDelimiter(rest[after])
}

func isScriptEndDelimiter(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '/', '>':
		return true
	}
	return false
}

// indexFoldASCII returns the index of the first ASCII case-insensitive match
// of needle in haystack, or -1.
func indexFoldASCII(haystack, needle string) int {
	n := len(needle)
	if n == 0 {
		return 0
	}
	limit := len(haystack) - n
	for i := 0; i <= limit; i++ {
		if asciiEqualFold(haystack[i:i+n], needle) {
			return i
		}
	}
	return -1
}

func hasPrefixFoldString(s, prefix string) bool {
	return len(s) >= len(prefix) && asciiEqualFold(s[:len(prefix)], prefix)
}
