package naming

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// escapeTokens maps characters that commonly appear in document names to
// fixed word tokens, named after the HTML entity for each character. The
// token is emitted wrapped in underscores so word boundaries stay readable
// and the escaping stays reversible by inspection.
var escapeTokens = map[rune]string{
	' ':  "space",
	'!':  "excl",
	'"':  "quot",
	'#':  "num",
	'$':  "dollar",
	'%':  "percnt",
	'&':  "amp",
	'\'': "apos",
	'(':  "lpar",
	')':  "rpar",
	'*':  "ast",
	'+':  "plus",
	',':  "comma",
	'-':  "hyphen",
	'.':  "period",
	'/':  "sol",
	':':  "colon",
	';':  "semi",
	'<':  "lt",
	'=':  "equals",
	'>':  "gt",
	'?':  "quest",
	'@':  "commat",
	'[':  "lsqb",
	'\\': "bsol",
	']':  "rsqb",
	'^':  "hat",
	'`':  "grave",
	'{':  "lcub",
	'|':  "verbar",
	'}':  "rcub",
	'~':  "tilde",
}

// defensiveName escapes raw into a legal identifier without ever changing
// the case of a letter. Letters, digits and underscores pass through
// untouched; characters from escapeTokens become their word token; anything
// else becomes a codepoint token such as "_x1F600_". A digit-leading result
// is prefixed with an underscore, and the empty input becomes "_empty".
func defensiveName(raw string) string {
	if raw == "" {
		return "_empty"
	}
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch {
		case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			if tok, ok := escapeTokens[r]; ok {
				b.WriteByte('_')
				b.WriteString(tok)
				b.WriteByte('_')
			} else {
				fmt.Fprintf(&b, "_x%X_", r)
			}
		}
	}
	out := b.String()
	if startsWithDigit(out) {
		out = "_" + out
	}
	return out
}

func startsWithDigit(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsDigit(r)
}
