package maskable

import "iter"

// Token is a {name} placeholder occurrence within a template.
// Start and End are byte offsets; template[Start:End] is "{" + Name + "}".
type Token struct {
	Name  string
	Start int
	End   int
}

// Scan returns the tokens of template in document order.
//
// A token is '{', an identifier matching [A-Za-z_][A-Za-z0-9_]*, and a
// closing '}' immediately after the identifier. Any other '{' is literal
// text. The sequence is lazy and may be ranged over more than once.
func Scan(template string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for i := 0; i < len(template); i++ {
			if template[i] != '{' {
				continue
			}
			end, ok := scanToken(template, i)
			if !ok {
				continue
			}
			if !yield(Token{Name: template[i+1 : end-1], Start: i, End: end}) {
				return
			}
			i = end - 1
		}
	}
}

// Tokens collects every token in template.
func Tokens(template string) []Token {
	var tokens []Token
	for tok := range Scan(template) {
		tokens = append(tokens, tok)
	}
	return tokens
}

// IsTokenName reports whether name is a valid token identifier.
func IsTokenName(name string) bool {
	if name == "" || !isIdentStart(name[0]) {
		return false
	}
	for i := 1; i < len(name); i++ {
		if !isIdentPart(name[i]) {
			return false
		}
	}
	return true
}

// scanToken reports whether a token opens at template[start] and returns
// the offset just past its closing brace.
func scanToken(template string, start int) (int, bool) {
	i := start + 1
	if i >= len(template) || !isIdentStart(template[i]) {
		return 0, false
	}
	for i++; i < len(template) && isIdentPart(template[i]); i++ {
	}
	if i >= len(template) || template[i] != '}' {
		return 0, false
	}
	return i + 1, true
}

func isIdentStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || ('0' <= c && c <= '9')
}
