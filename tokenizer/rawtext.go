package tokenizer

import "strings"

// nextRawtext implements the regular RAWTEXT engine of §4.6, active whenever
// mode is RAWTEXT and rawtextTag is anything other than "script" (script
// gets the escape-aware engine in scriptdata.go).
func (t *Tokenizer) nextRawtext() (Token, bool) {
	source := t.cur.source
	textStart := t.cur.pos
	isRCDATA := rcdataElements[t.rawtextTag]
	searchFrom := t.cur.pos

	for {
		idx := strings.Index(source[searchFrom:], "</")
		if idx == -1 {
			return t.emitRawtextTail(source[textStart:], len(source), isRCDATA), true
		}
		candidatePos := searchFrom + idx
		i := candidatePos + 2
		nameStart := i
		for i < len(source) && isLetter(source[i]) {
			i++
		}
		name := strings.ToLower(source[nameStart:i])

		j := i
		for j < len(source) && isAttrWhitespace(source[j]) {
			j++
		}
		for j < len(source) && source[j] == '/' {
			j++
		}
		for j < len(source) && isAttrWhitespace(source[j]) {
			j++
		}

		if name == t.rawtextTag && j < len(source) && source[j] == '>' {
			textBefore := source[textStart:candidatePos]
			endName := t.rawtextTag
			t.mode = DataMode
			t.rawtextTag = ""
			if textBefore != "" {
				tok := t.emitRawtextTail(textBefore, j+1, isRCDATA)
				t.pending.push(Token{Kind: EndTagToken, TagName: endName})
				return tok, true
			}
			t.cur.pos = j + 1
			return Token{Kind: EndTagToken, TagName: endName}, true
		}

		// Not a real terminator for this element — keep scanning past it.
		searchFrom = candidatePos + 2
		if searchFrom >= len(source) {
			return t.emitRawtextTail(source[textStart:], len(source), isRCDATA), true
		}
	}
}

func (t *Tokenizer) emitRawtextTail(text string, newPos int, rcdata bool) Token {
	t.cur.pos = newPos
	filtered := filterInvalidChars(text)
	if rcdata {
		filtered = decodeEntities(filtered, false)
	}
	return Token{Kind: CharacterToken, Data: filtered}
}
