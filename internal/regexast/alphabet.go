package regexast

// metachars are the characters with special meaning at the top level of a
// regex source string. Everything else is a literal unless escaped.
var metachars = map[byte]struct{}{
	'*': {}, '+': {}, '?': {}, '|': {}, '(': {}, ')': {}, '[': {}, ']': {},
}

// formAlphabet scans raw regex source for the set of literal characters it
// mentions, mirroring the separate alphabet pass in spec.md §4.1: escapes
// count their escaped character literally, metacharacters and the hyphen
// inside a class bracket are skipped. An unescaped space is a literal
// character like any other, not a separator, so it belongs in the alphabet.
func formAlphabet(src string) map[byte]struct{} {
	alphabet := make(map[byte]struct{})
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case c == '-':
			if i-2 >= 0 && i+2 < len(src) && src[i-2] == '[' && src[i+2] == ']' {
				continue
			}
			alphabet[c] = struct{}{}
		case c == '\\':
			if i+1 < len(src) {
				alphabet[src[i+1]] = struct{}{}
			}
		default:
			if _, isMeta := metachars[c]; !isMeta {
				alphabet[c] = struct{}{}
			}
		}
	}
	return alphabet
}
