package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// idiomaticSeparators is the exact set of characters the idiomatic strategy
// treats as word separators. Braces are stripped rather than word-forming,
// which turns a URL template fragment like "{region}" into the word "region".
var idiomaticSeparators = map[rune]bool{
	'.': true,
	'-': true,
	'_': true,
	' ': true,
	'/': true,
	'{': true,
	'}': true,
	'+': true,
}

// idiomaticName projects raw into conventional casing for the role. It
// reports ok=false when raw contains any character outside letters, digits
// and the separator set, or when nothing identifier-worthy remains after
// tokenization; the caller then routes the whole name through defensiveName.
// One unsupported character disqualifies the entire name rather than being
// escaped inline, so a given name is always spelled by exactly one strategy.
func (p *Projector) idiomaticName(raw string, role Role) (string, bool) {
	if raw == "" {
		return "", false
	}
	for _, r := range raw {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !idiomaticSeparators[r] {
			return "", false
		}
	}
	if p.foldAccents {
		raw = foldAccents(raw)
	}

	// Leading underscores are kept as a literal prefix and excluded from
	// tokenization, so "_internal" stays "_internal" rather than "Internal".
	body := strings.TrimLeft(raw, "_")
	prefix := raw[:len(raw)-len(body)]

	body = normalizeShoutedCase(body)

	// Tokenize on separators and join with each token's first letter
	// capitalized. The remainder of a token is never re-cased, which is what
	// keeps embedded acronyms like the "URL" in "proxyURL" intact. Every
	// token after the first is preceded by at least one separator, and a
	// separator squeezed between two digit runs survives as an underscore so
	// "2.0" does not collapse into "20".
	var b strings.Builder
	b.Grow(len(body))
	var token []rune
	prevAllDigits := false
	firstToken := true
	flush := func() {
		if len(token) == 0 {
			return
		}
		allDigits := runesAllDigits(token)
		if !firstToken && prevAllDigits && allDigits {
			b.WriteByte('_')
		}
		token[0] = unicode.ToUpper(token[0])
		b.WriteString(string(token))
		prevAllDigits = allDigits
		firstToken = false
		token = token[:0]
	}
	for _, r := range body {
		if idiomaticSeparators[r] {
			flush()
			continue
		}
		token = append(token, r)
	}
	flush()

	joined := b.String()
	if joined == "" && prefix == "" {
		return "", false
	}
	if role == RoleMemberName || role == RoleContentType {
		joined = lowercaseLeadingAcronym(joined)
	}
	out := prefix + joined
	if startsWithDigit(out) {
		out = "_" + out
	}
	return out, true
}

// runesAllDigits reports whether the token consists purely of digits.
func runesAllDigits(token []rune) bool {
	for _, r := range token {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(token) > 0
}

// normalizeShoutedCase title-cases a name whose letters are all uppercase,
// treating underscores as run boundaries: "NOT_AVAILABLE" becomes
// "Not_Available" before tokenization. Names with any lowercase letter, or
// with digits, are returned untouched so embedded acronyms survive.
func normalizeShoutedCase(s string) string {
	hasLetter := false
	for _, r := range s {
		if idiomaticSeparators[r] {
			continue
		}
		if !unicode.IsUpper(r) {
			return s
		}
		hasLetter = true
	}
	if !hasLetter {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	startOfRun := true
	for _, r := range s {
		switch {
		case r == '_':
			startOfRun = true
			b.WriteRune(r)
		case idiomaticSeparators[r]:
			b.WriteRune(r)
		case startOfRun:
			b.WriteRune(r)
			startOfRun = false
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// lowercaseLeadingAcronym softens a leading run of uppercase letters for
// member-style roles: "HTTPProxy" becomes "httpProxy", "URL" becomes "url",
// "HelloWorld" becomes "helloWorld". The last capital of a multi-letter run
// is kept when it begins the following word.
func lowercaseLeadingAcronym(s string) string {
	rs := []rune(s)
	n := 0
	for n < len(rs) && unicode.IsUpper(rs[n]) {
		n++
	}
	if n == 0 {
		return s
	}
	if n > 1 && n < len(rs) && unicode.IsLower(rs[n]) {
		n--
	}
	for i := 0; i < n; i++ {
		rs[i] = unicode.ToLower(rs[i])
	}
	return string(rs)
}

// foldAccents strips combining marks after NFD decomposition, mapping
// accented letters to their base forms.
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
