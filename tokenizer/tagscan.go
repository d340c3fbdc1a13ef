package tokenizer

import "strings"

// scanTag implements §4.2: it is entered with the cursor positioned exactly
// on '<' and always produces exactly one token, possibly a single-character
// Character token for an unrecognized or truncated construct.
func (t *Tokenizer) scanTag() Token {
	if t.cur.pos+1 >= len(t.cur.source) {
		t.cur.advanceBytes(1)
		return Token{Kind: CharacterToken, Data: "<"}
	}
	next := t.cur.byteAt(1)
	if !(isLetter(next) || next == '!' || next == '/' || next == '?') {
		t.cur.advanceBytes(1)
		return Token{Kind: CharacterToken, Data: "<"}
	}
	switch next {
	case '!':
		return t.scanMarkupDeclaration()
	case '/':
		if !isLetter(t.cur.byteAt(2)) {
			return t.scanBogusComment(2)
		}
		return t.scanStartOrEndTag()
	case '?':
		return t.scanBogusComment(1)
	default:
		return t.scanStartOrEndTag()
	}
}

func (t *Tokenizer) scanMarkupDeclaration() Token {
	switch {
	case t.cur.hasPrefixFold("<!DOCTYPE"):
		return t.scanDoctype()
	case t.cur.hasPrefix("<!--"):
		return t.scanComment()
	case t.cur.hasPrefix("<![CDATA["):
		return t.scanCDATA()
	default:
		return t.scanBogusComment(2)
	}
}

func (t *Tokenizer) scanDoctype() Token {
	t.cur.advanceBytes(len("<!DOCTYPE"))
	for !t.cur.eof() && isAttrWhitespace(t.cur.peekByte()) {
		t.cur.advanceBytes(1)
	}
	start := t.cur.pos
	end := t.cur.indexFrom(start, ">")
	var payload string
	if end == -1 {
		payload = t.cur.source[start:]
		t.cur.pos = len(t.cur.source)
	} else {
		payload = t.cur.source[start:end]
		t.cur.pos = end + 1
	}
	return Token{Kind: DoctypeToken, Data: strings.TrimSpace(payload)}
}

func (t *Tokenizer) scanComment() Token {
	if t.cur.hasPrefix("<!--->") {
		t.cur.advanceBytes(len("<!--->"))
		return Token{Kind: CommentToken}
	}
	if t.cur.hasPrefix("<!-->") {
		t.cur.advanceBytes(len("<!-->"))
		return Token{Kind: CommentToken}
	}
	start := t.cur.pos + len("<!--")
	rest := t.cur.source[start:]
	idxEnd := strings.Index(rest, "-->")
	idxBogus := strings.Index(rest, "--!>")

	var data string
	switch {
	case idxEnd == -1 && idxBogus == -1:
		data = strings.TrimSuffix(rest, "--")
		t.cur.pos = len(t.cur.source)
	case idxBogus == -1 || (idxEnd != -1 && idxEnd <= idxBogus):
		data = rest[:idxEnd]
		t.cur.pos = start + idxEnd + len("-->")
	default:
		data = rest[:idxBogus]
		t.cur.pos = start + idxBogus + len("--!>")
	}
	return Token{Kind: CommentToken, Data: filterInvalidChars(data)}
}

func (t *Tokenizer) scanCDATA() Token {
	start := t.cur.pos + len("<![CDATA[")
	rest := t.cur.source[start:]
	idx := strings.Index(rest, "]]>")
	if idx == -1 {
		inner := rest
		if strings.HasSuffix(inner, "]]") {
			inner += " "
		}
		t.cur.pos = len(t.cur.source)
		return Token{Kind: CommentToken, Data: "[CDATA[" + inner + "]]"}
	}
	inner := rest[:idx]
	t.cur.pos = start + idx + len("]]>")
	return Token{Kind: CommentToken, Data: "[CDATA[" + inner + "]]"}
}

// scanBogusComment implements the DATA-mode bogus-comment recovery of §4.2
// decision 5: skipBytes is how many bytes after the current '<' the comment
// content starts at (2 for "</…" and "<!…", 1 for "<?…" so the '?' itself is
// kept).
func (t *Tokenizer) scanBogusComment(skipBytes int) Token {
	start := t.cur.pos + skipBytes
	idx := t.cur.indexFrom(start, ">")
	var data string
	if idx == -1 {
		data = t.cur.source[start:]
		t.cur.pos = len(t.cur.source)
	} else {
		data = t.cur.source[start:idx]
		t.cur.pos = idx + 1
	}
	return Token{Kind: CommentToken, Data: filterInvalidChars(data)}
}

// scanStartOrEndTag implements §4.3 steps 1-9 for both start and end tags;
// they share every step but the last (attribute attachment and the RAWTEXT
// transition, which only apply to start tags).
func (t *Tokenizer) scanStartOrEndTag() Token {
	ltPos := t.cur.pos
	t.cur.advanceBytes(1) // consume '<'
	isEnd := false
	if t.cur.peekByte() == '/' {
		isEnd = true
		t.cur.advanceBytes(1)
	}

	nameStart := t.cur.pos
	for !t.cur.eof() {
		b := t.cur.peekByte()
		if isAttrWhitespace(b) || b == '/' || b == '>' {
			break
		}
		t.cur.advanceRune()
	}
	name := t.cur.source[nameStart:t.cur.pos]
	if name == "" {
		// Step 3: empty tag name — reset and bail, caller sees "<" as text.
		t.cur.pos = ltPos
		t.cur.advanceBytes(1)
		return Token{Kind: CharacterToken, Data: "<"}
	}
	name = strings.ToLower(name)

	for !t.cur.eof() && isAttrWhitespace(t.cur.peekByte()) {
		t.cur.advanceRune()
	}

	attrStart := t.cur.pos
	idx := t.cur.indexFrom(attrStart, ">")
	naiveEnd := idx
	found := idx != -1
	if !found {
		naiveEnd = len(t.cur.source)
	}
	naiveSub := t.cur.source[attrStart:naiveEnd]

	attrEnd := naiveEnd
	if oddDouble, oddSingle := quoteParity(naiveSub); oddDouble || oddSingle {
		// Step 5: unbalanced-quote rescan, tracking the active quote so '>'
		// inside a quoted value doesn't end the tag prematurely.
		end, insideQuote, ok := scanTagEndQuoteAware(t.cur.source, attrStart)
		if insideQuote {
			// Step 6: EOF reached inside a quoted value — suppress the tag.
			t.cur.pos = len(t.cur.source)
			return Token{Kind: CharacterToken, Data: ""}
		}
		attrEnd = end
		found = ok
	}

	if !found {
		// EOF without '>' (§4.3 "EOF handling for start tags without >").
		remainder := t.cur.source[attrStart:]
		t.cur.pos = len(t.cur.source)
		if remainder == "" {
			return Token{Kind: CharacterToken, Data: ""}
		}
		return Token{Kind: CharacterToken, Data: filterInvalidChars(remainder)}
	}

	attrSub := t.cur.source[attrStart:attrEnd]
	t.cur.pos = attrEnd
	t.cur.advanceBytes(1) // consume '>'

	if isEnd {
		return Token{Kind: EndTagToken, TagName: name}
	}

	selfClosing, attrs := parseAttributes(attrSub)
	tok := Token{
		Kind:        StartTagToken,
		TagName:     name,
		Attributes:  attrs,
		SelfClosing: selfClosing,
	}

	if rawtextElements[name] {
		t.mode = RawtextMode
		t.rawtextTag = name
		if name == "script" {
			t.scriptContent.Reset()
			t.scriptSuppressedEndOnce = false
		}
	}
	if name == "textarea" {
		tok.NeedsRawtext = true
	}
	return tok
}

// quoteParity counts '"' and '\'' in s, excluding backslash-escaped
// occurrences, and reports whether either count is odd (§4.3 step 5).
func quoteParity(s string) (oddDouble, oddSingle bool) {
	var dq, sq int
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '"' && c != '\'' {
			continue
		}
		if i > 0 && s[i-1] == '\\' {
			continue
		}
		if c == '"' {
			dq++
		} else {
			sq++
		}
	}
	return dq%2 == 1, sq%2 == 1
}

// scanTagEndQuoteAware re-drives the search for '>' from start, tracking the
// currently open quote so a '>' inside a quoted attribute value doesn't
// count. found is false when the source runs out before an unquoted '>' is
// seen; insideQuote then distinguishes "ran out while still in a quote"
// (§4.3 step 6) from "ran out between attributes" (the EOF-without-'>' rule).
func scanTagEndQuoteAware(source string, start int) (end int, insideQuote bool, found bool) {
	i := start
	var quote byte
	for i < len(source) {
		c := source[i]
		if quote != 0 {
			if c == quote {
				quote = 0
			}
			i++
			continue
		}
		switch c {
		case '"', '\'':
			quote = c
		case '>':
			return i, false, true
		}
		i++
	}
	return len(source), quote != 0, false
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
