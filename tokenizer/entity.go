package tokenizer

import (
	"strconv"
	"strings"
)

// replacementSentinel is the internal convention from §4.5/§9: a numeric
// reference that the HTML5 algorithm says to turn into U+FFFD is tagged with
// this private-use code point instead, so a caller that cares can tell "the
// source literally contained an invalid byte" (real U+FFFD, produced by
// filterInvalidChars) apart from "a reference decoded to the replacement
// character" (this sentinel). A caller that doesn't care is free to treat
// U+F000 the same as U+FFFD; nothing here requires it to.
const replacementSentinel rune = 0xF000

// decodeEntities decodes numeric and named character references in s. attrMode
// selects the attribute-specific named-reference rule from §4.5: a named
// match lacking a terminating ';' is rejected if immediately followed by '='
// or an ASCII alphanumeric.
func decodeEntities(s string, attrMode bool) string {
	if !strings.ContainsRune(s, '&') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		if s[i] != '&' {
			b.WriteByte(s[i])
			i++
			continue
		}
		rest := s[i+1:]
		if strings.HasPrefix(rest, "#") {
			consumed, r, ok := decodeNumericEscape(rest)
			if !ok {
				b.WriteByte('&')
				i++
				continue
			}
			b.WriteRune(r)
			i += 1 + consumed
			continue
		}
		if consumed, ok := decodeNamedEscape(rest, attrMode, &b); ok {
			i += 1 + consumed
			continue
		}
		b.WriteByte('&')
		i++
	}
	return b.String()
}

// decodeNumericEscape parses the "#..." tail of a numeric reference
// (everything after the '&'). It returns the number of bytes of rest
// consumed and the decoded rune. ok is false only when no digits follow
// "&#" / "&#x", in which case the '&' is emitted literally and scanning
// resumes at '#'.
func decodeNumericEscape(rest string) (consumed int, r rune, ok bool) {
	j := 1 // skip '#'
	hex := false
	if j < len(rest) && (rest[j] == 'x' || rest[j] == 'X') {
		hex = true
		j++
	}
	start := j
	for j < len(rest) && isRefDigit(rest[j], hex) {
		j++
	}
	if j == start {
		return 0, 0, false
	}
	digits := rest[start:j]
	if j < len(rest) && rest[j] == ';' {
		j++
	}
	return j, decodeCodepoint(digits, hex), true
}

func isRefDigit(c byte, hex bool) bool {
	if c >= '0' && c <= '9' {
		return true
	}
	if !hex {
		return false
	}
	return (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// decodeCodepoint interprets digits (already validated as hex/decimal) as a
// Unicode code point per the HTML5 numeric-reference rules in §4.5: NUL and
// surrogates become the sentinel, 0x80-0x9F is remapped through
// windows1252Remap, and anything else is used literally (with out-of-range
// values also becoming the sentinel).
func decodeCodepoint(digits string, hex bool) rune {
	base := 10
	if hex {
		base = 16
	}
	v, err := strconv.ParseUint(digits, base, 32)
	if err != nil {
		return replacementSentinel
	}
	cp := rune(v)
	if cp == 0 {
		return replacementSentinel
	}
	if cp >= 0xD800 && cp <= 0xDFFF {
		return replacementSentinel
	}
	if cp > 0x10FFFF {
		return replacementSentinel
	}
	if remapped, ok := windows1252Remap[cp]; ok {
		return remapped
	}
	return cp
}

// decodeNamedEscape finds the single longest table entry that prefixes rest
// and, if it is accepted under attrMode's rule, writes its replacement to b
// and returns the number of bytes of rest consumed. It returns ok=false when
// no candidate length is present in the table at all, or the one found is
// rejected by the attribute-mode guard — in both cases the caller emits a
// literal '&' and does not retry a shorter candidate, since §4.5 defines the
// guard as rejecting "the match", not falling back to a shorter one.
func decodeNamedEscape(rest string, attrMode bool, b *strings.Builder) (consumed int, ok bool) {
	limit := len(rest)
	if limit > maxEntityNameLen {
		limit = maxEntityNameLen
	}
	for length := limit; length >= 1; length-- {
		cand := rest[:length]
		val, found := namedEntities[cand]
		if !found {
			continue
		}
		if cand[len(cand)-1] != ';' && attrMode {
			var next byte
			if length < len(rest) {
				next = rest[length]
			}
			if next == '=' || isASCIIAlnum(next) {
				return 0, false
			}
		}
		b.WriteString(val)
		return length, true
	}
	return 0, false
}

func isASCIIAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
