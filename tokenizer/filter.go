package tokenizer

import "strings"

const replacementChar rune = 0xFFFD

// filterInvalidChars substitutes U+0000 and every C0 control character other
// than TAB, LF, FF, and CR with U+FFFD, per §3 invariant 3. It is applied to
// every Character, Comment, and RAWTEXT/RCDATA text span before it is handed
// to the caller, except the payload of a CDATA-as-comment token, which is
// kept as written.
func filterInvalidChars(s string) string {
	if !strings.ContainsFunc(s, isSubstitutedControl) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isSubstitutedControl(r) {
			b.WriteRune(replacementChar)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isSubstitutedControl(r rune) bool {
	if r == 0x00 {
		return true
	}
	switch r {
	case '\t', '\n', '\f', '\r':
		return false
	}
	return r >= 0x01 && r <= 0x1F
}
