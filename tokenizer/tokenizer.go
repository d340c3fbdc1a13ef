package tokenizer

import (
	"fmt"
	"os"
	"strings"
)

// Tokenizer converts a complete in-memory HTML5 source buffer into an
// ordered stream of Tokens via the pull-based Next method. It owns the
// entire lifecycle of a single tokenization pass: the source buffer, cursor
// position, current mode, and pending-token queue all live here and are
// dropped together once the Tokenizer itself is no longer referenced.
//
// A Tokenizer is not safe for concurrent use; nothing about it needs to be,
// since each pass is single-threaded and pull-driven by its one caller.
type Tokenizer struct {
	cur *cursor

	mode       Mode
	rawtextTag string

	scriptContent           strings.Builder
	scriptSuppressedEndOnce bool

	pending tokenQueue

	debug bool
}

// New creates a Tokenizer over source. source is consumed in full; no
// streaming append is supported (§6). When debug is true, every emitted
// token is traced to standard error — the one diagnostic hook the
// tokenizer contract allows, and not otherwise part of its observable
// behavior.
func New(source string, debug bool) *Tokenizer {
	return &Tokenizer{
		cur:   newCursor(source),
		mode:  DataMode,
		debug: debug,
	}
}

// Mode returns the tokenizer's current operating mode.
func (t *Tokenizer) Mode() Mode {
	return t.mode
}

// SetMode is an external control hook (§4.9): the tree constructor may
// inspect and set mode directly. Used together with SetRawtextTag when
// forcing a content model the tokenizer itself couldn't have inferred from
// the tag alone.
func (t *Tokenizer) SetMode(m Mode) {
	t.mode = m
}

// RawtextTag returns the element name currently active in RAWTEXT mode, or
// the empty string outside of it.
func (t *Tokenizer) RawtextTag() string {
	return t.rawtextTag
}

// SetRawtextTag is the writer half of the RawtextTag hook (§4.9).
func (t *Tokenizer) SetRawtextTag(name string) {
	t.rawtextTag = name
}

// StartRawtext is an external control hook (§4.9): the tree constructor
// calls this after consuming a tag it has just decided has RAWTEXT content,
// for a content model the tag scanner can't infer from the tag name alone.
func (t *Tokenizer) StartRawtext(name string) {
	t.mode = RawtextMode
	t.rawtextTag = name
	if name == "script" {
		t.scriptContent.Reset()
		t.scriptSuppressedEndOnce = false
	}
}

// StartPlaintext is an external control hook (§4.9): PLAINTEXT is terminal,
// so once set there is no transition out of it for this Tokenizer.
func (t *Tokenizer) StartPlaintext() {
	t.mode = PlaintextMode
}

// Next is the iterator façade of §4.1: the single externally observable
// pull interface. It returns the next Token and ok=true, or ok=false once
// the stream is exhausted and every pending token has been drained. It is
// the only site that sets IsLastToken.
func (t *Tokenizer) Next() (Token, bool) {
	if !t.pending.empty() {
		tok := t.pending.pop()
		tok.IsLastToken = t.cur.eof() && t.pending.empty()
		t.trace(tok)
		return tok, true
	}
	if t.cur.eof() {
		return Token{}, false
	}

	var tok Token
	var ok bool
	switch t.mode {
	case DataMode:
		tok, ok = t.nextData()
	case RawtextMode:
		if t.rawtextTag == "script" {
			tok, ok = t.nextScriptData()
		} else {
			tok, ok = t.nextRawtext()
		}
	case PlaintextMode:
		tok, ok = t.nextPlaintext()
	default:
		panic(fmt.Sprintf("tokenizer: unknown mode %v", t.mode))
	}
	if !ok {
		return Token{}, false
	}
	tok.IsLastToken = t.cur.eof() && t.pending.empty()
	t.trace(tok)
	return tok, true
}

// nextData implements the DATA-mode dispatch of §4.1 step 3: try a tag
// scan at '<', otherwise extract a character run. The defensive single-rune
// advance guards against a run that can't otherwise make progress; in
// practice extractCharacterRun always consumes at least one byte when not
// at '<' and not at EOF.
func (t *Tokenizer) nextData() (Token, bool) {
	for !t.cur.eof() {
		if t.cur.peekByte() == '<' {
			return t.scanTag(), true
		}
		if tok, ok := t.extractCharacterRun(); ok {
			return tok, true
		}
		t.cur.advanceRune()
	}
	return Token{}, false
}

// extractCharacterRun implements §4.8: advance to the next '<' or EOF,
// filter invalid characters, decode entities in text mode, and emit as a
// single Character token.
func (t *Tokenizer) extractCharacterRun() (Token, bool) {
	start := t.cur.pos
	for !t.cur.eof() && t.cur.peekByte() != '<' {
		t.cur.advanceRune()
	}
	if t.cur.pos == start {
		return Token{}, false
	}
	raw := t.cur.source[start:t.cur.pos]
	raw = filterInvalidChars(raw)
	raw = decodeEntities(raw, false)
	return Token{Kind: CharacterToken, Data: raw}, true
}

// nextPlaintext implements the PLAINTEXT drain of §4.1: the entire
// remainder is emitted as one Character token with no entity decoding, and
// the cursor moves to EOF; PLAINTEXT has no exit, so this is always the
// last productive call for this Tokenizer.
func (t *Tokenizer) nextPlaintext() (Token, bool) {
	if t.cur.eof() {
		return Token{}, false
	}
	raw := filterInvalidChars(t.cur.remaining())
	t.cur.pos = len(t.cur.source)
	return Token{Kind: CharacterToken, Data: raw}, true
}

func (t *Tokenizer) trace(tok Token) {
	if !t.debug {
		return
	}
	fmt.Fprintf(os.Stderr, "tokenizer: mode=%s token=%s %q last=%v\n",
		t.mode, tok.Kind, tok.Data, tok.IsLastToken)
}
