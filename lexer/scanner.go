package lexer

import "strings"

// maxIdentifierLen is the longest identifier accepted without a diagnostic.
const maxIdentifierLen = 31

// booleanSpellings maps the first letter of a reserved uppercase boolean
// literal to its full spelling. The scanner walks these as a longest-prefix
// table: the instant a spelling completes, a BOOLEAN token is emitted
// without checking for trailing continuation characters. "TRUEx" therefore
// lexes as BOOLEAN "TRUE" followed by whatever "x" dispatches to. This
// maximal-munch gap is inherited language behavior, kept on purpose.
var booleanSpellings = map[byte]string{
	'T': "TRUE",
	'F': "FALSE",
}

// cursor is an immutable position in the source text. Every transition
// returns a new cursor; nothing rewinds and every error path that emits no
// token still consumes at least one character.
type cursor struct {
	off  int // byte offset, 0-based
	line int // 1-based
	col  int // 1-based
}

func (c cursor) pos() Position {
	return Position{Line: c.line, Column: c.col, Offset: c.off}
}

// Scanner converts one in-memory source unit into a token stream, an
// identifier registry, and a diagnostics log in a single forward pass.
// A Scanner is single-use and not safe for concurrent use; distinct
// scanners over distinct sources share no state.
type Scanner struct {
	src     []byte
	tokens  []Token
	symbols *SymbolTable
	diags   *DiagnosticLog
	lines   int // line count after the last Scan
}

// NewScanner creates a Scanner over the given source bytes.
func NewScanner(src []byte) *Scanner {
	return &Scanner{
		src:     src,
		symbols: NewSymbolTable(),
		diags:   NewDiagnosticLog(),
	}
}

// Scan is a convenience that scans src to completion and returns the three
// output artifacts.
func Scan(src []byte) ([]Token, *SymbolTable, *DiagnosticLog) {
	s := NewScanner(src)
	tokens := s.Scan()
	return tokens, s.Symbols(), s.Diagnostics()
}

// Scan tokenizes the entire source. It always terminates, never fails, and
// always appends the EOF sentinel as the final token. Lexical problems are
// logged as diagnostics and scanning continues.
func (s *Scanner) Scan() []Token {
	c := cursor{line: 1, col: 1}

	for !s.atEnd(c) {
		if isSpace(s.at(c)) {
			c = s.step(c)
			continue
		}

		next, tok, ok := s.next(c)
		c = next
		if !ok {
			continue // already reported, offending character consumed
		}
		if tok.Kind == TokenIdentifier {
			s.symbols.Record(tok)
		}
		s.tokens = append(s.tokens, tok)
	}

	s.lines = c.line
	s.tokens = append(s.tokens, Token{Kind: TokenEOF, Lexeme: EOFLexeme, Pos: c.pos()})
	return s.tokens
}

// Tokens returns the token stream produced by Scan.
func (s *Scanner) Tokens() []Token { return s.tokens }

// Symbols returns the identifier registry populated by Scan.
func (s *Scanner) Symbols() *SymbolTable { return s.symbols }

// Diagnostics returns the diagnostics log populated by Scan.
func (s *Scanner) Diagnostics() *DiagnosticLog { return s.diags }

// Lines returns the number of lines processed by Scan.
func (s *Scanner) Lines() int { return s.lines }

// next dispatches on the current character and at most one character of
// lookahead to exactly one sub-recognizer. It returns the advanced cursor,
// the token produced, and false when the character was discarded after a
// diagnostic.
//
// Dispatch priority: block comment, line comment, string, char literal,
// operators (multi-char before single), uppercase word, lowercase word,
// number, punctuator, invalid character.
func (s *Scanner) next(c cursor) (cursor, Token, bool) {
	ch := s.at(c)

	switch {
	case ch == '#':
		switch s.lookahead(c, 1) {
		case '*':
			return s.scanBlockComment(c)
		case '#':
			return s.scanLineComment(c)
		}
		// A bare '#' starts nothing.
		s.diags.reportInvalidChar(c.pos(), ch)
		return s.step(c), Token{}, false

	case ch == '"':
		return s.scanString(c)

	case ch == '\'':
		return s.scanCharLiteral(c)

	case isOperatorChar(ch):
		return s.scanOperator(c)

	case isUpper(ch):
		return s.scanIdentifier(c)

	case isLower(ch):
		return s.scanLowercaseWord(c)

	case isDigit(ch):
		return s.scanNumber(c, false)

	case isPunctuator(ch):
		start := c
		c = s.step(c)
		return c, Token{Kind: TokenPunctuator, Lexeme: string(ch), Pos: start.pos()}, true

	default:
		s.diags.reportInvalidChar(c.pos(), ch)
		return s.step(c), Token{}, false
	}
}

// scanBlockComment consumes "#*" through the closing "*#" inclusive.
// Reaching end of input first logs an unterminated-comment diagnostic and
// returns the partial text as an ERROR token.
func (s *Scanner) scanBlockComment(c cursor) (cursor, Token, bool) {
	start := c
	c = s.step(s.step(c)) // "#*"

	for !s.atEnd(c) {
		if s.at(c) == '*' && s.lookahead(c, 1) == '#' {
			c = s.step(s.step(c))
			return c, Token{Kind: TokenComment, Lexeme: s.text(start, c), Pos: start.pos()}, true
		}
		c = s.step(c)
	}

	s.diags.reportUnterminatedComment(start.pos())
	return c, Token{Kind: TokenError, Lexeme: s.text(start, c), Pos: start.pos()}, true
}

// scanLineComment consumes "##" through the next newline inclusive, or to
// end of input. Line comments always succeed.
func (s *Scanner) scanLineComment(c cursor) (cursor, Token, bool) {
	start := c
	c = s.step(s.step(c)) // "##"

	for !s.atEnd(c) && s.at(c) != '\n' {
		c = s.step(c)
	}
	if !s.atEnd(c) {
		c = s.step(c) // trailing newline belongs to the comment
	}

	return c, Token{Kind: TokenComment, Lexeme: s.text(start, c), Pos: start.pos()}, true
}

// scanOperator recognizes multi-character operators before single-character
// ones. A '+' or '-' immediately followed by a digit is handed to the
// number scanner instead: sign-adjacency decides literal vs operator, so
// "X+5" lexes as identifier "X" then signed integer "+5". Inherited
// language behavior, kept on purpose.
func (s *Scanner) scanOperator(c cursor) (cursor, Token, bool) {
	start := c
	ch := s.at(c)
	la := s.lookahead(c, 1)

	if (ch == '+' && la == '+') || (ch == '-' && la == '-') {
		c = s.step(s.step(c))
		return c, Token{Kind: TokenIncDec, Lexeme: s.text(start, c), Pos: start.pos()}, true
	}

	if (ch == '+' || ch == '-') && isDigit(la) {
		return s.scanNumber(c, true)
	}

	if (ch == '+' || ch == '-' || ch == '*' || ch == '/') && la == '=' {
		c = s.step(s.step(c))
		return c, Token{Kind: TokenAssignOp, Lexeme: s.text(start, c), Pos: start.pos()}, true
	}

	if ch == '*' && la == '*' {
		c = s.step(s.step(c))
		return c, Token{Kind: TokenArithOp, Lexeme: "**", Pos: start.pos()}, true
	}

	if ch == '=' && la != '=' {
		return s.step(c), Token{Kind: TokenAssignOp, Lexeme: "=", Pos: start.pos()}, true
	}

	if (ch == '=' || ch == '!' || ch == '<' || ch == '>') && la == '=' {
		c = s.step(s.step(c))
		return c, Token{Kind: TokenRelOp, Lexeme: s.text(start, c), Pos: start.pos()}, true
	}

	if ch == '<' || ch == '>' {
		return s.step(c), Token{Kind: TokenRelOp, Lexeme: string(ch), Pos: start.pos()}, true
	}

	if (ch == '&' && la == '&') || (ch == '|' && la == '|') {
		c = s.step(s.step(c))
		return c, Token{Kind: TokenLogicalOp, Lexeme: s.text(start, c), Pos: start.pos()}, true
	}

	if ch == '!' {
		return s.step(c), Token{Kind: TokenLogicalOp, Lexeme: "!", Pos: start.pos()}, true
	}

	if ch == '+' || ch == '-' || ch == '*' || ch == '/' || ch == '%' {
		return s.step(c), Token{Kind: TokenArithOp, Lexeme: string(ch), Pos: start.pos()}, true
	}

	// A lone '&' or '|' is not a token.
	s.diags.reportInvalidChar(start.pos(), ch)
	return s.step(c), Token{}, false
}

// scanNumber recognizes integer and float literals:
//
//	[+-]? digit+ ( '.' digit{1,6} ( [eE] [+-]? digit+ )? )?
//
// A fraction longer than six digits is still emitted as a FLOAT token (full
// lexeme, no truncation, no exponent scan past it) alongside a
// malformed-float diagnostic. A '.' not followed by a digit is left
// unconsumed: the digits become an INTEGER, the diagnostic is logged, and
// the dot fails the next dispatch on its own. A missing exponent digit
// turns everything read so far into an ERROR token.
func (s *Scanner) scanNumber(c cursor, signed bool) (cursor, Token, bool) {
	start := c

	if signed {
		c = s.step(c)
	}

	if !isDigit(s.at(c)) {
		// Sign with no following digit; dispatch prevents this, but the
		// sign must not be lost if reached.
		return c, Token{Kind: TokenArithOp, Lexeme: s.text(start, c), Pos: start.pos()}, true
	}
	for isDigit(s.at(c)) {
		c = s.step(c)
	}

	if s.at(c) != '.' {
		return c, Token{Kind: TokenInteger, Lexeme: s.text(start, c), Pos: start.pos()}, true
	}

	if !isDigit(s.lookahead(c, 1)) {
		// e.g. "3." with nothing after the dot.
		s.diags.reportMalformedFloat(start.pos(), s.text(start, c)+".")
		return c, Token{Kind: TokenInteger, Lexeme: s.text(start, c), Pos: start.pos()}, true
	}
	c = s.step(c) // '.'

	decimals := 0
	for isDigit(s.at(c)) {
		c = s.step(c)
		decimals++
	}
	if decimals == 0 {
		s.diags.reportMalformedFloat(start.pos(), s.text(start, c))
		return c, Token{Kind: TokenError, Lexeme: s.text(start, c), Pos: start.pos()}, true
	}
	if decimals > 6 {
		s.diags.reportMalformedFloat(start.pos(), s.text(start, c))
		return c, Token{Kind: TokenFloat, Lexeme: s.text(start, c), Pos: start.pos()}, true
	}

	if ch := s.at(c); ch == 'e' || ch == 'E' {
		c = s.step(c)
		if s.at(c) == '+' || s.at(c) == '-' {
			c = s.step(c)
		}
		if !isDigit(s.at(c)) {
			s.diags.reportMalformedFloat(start.pos(), s.text(start, c))
			return c, Token{Kind: TokenError, Lexeme: s.text(start, c), Pos: start.pos()}, true
		}
		for isDigit(s.at(c)) {
			c = s.step(c)
		}
		return c, Token{Kind: TokenFloatExp, Lexeme: s.text(start, c), Pos: start.pos()}, true
	}

	return c, Token{Kind: TokenFloat, Lexeme: s.text(start, c), Pos: start.pos()}, true
}

// scanIdentifier recognizes [A-Z][a-z0-9_]* and the reserved uppercase
// boolean spellings. An uppercase continuation character is never part of
// an identifier, so "ABC" is three one-letter identifiers.
func (s *Scanner) scanIdentifier(c cursor) (cursor, Token, bool) {
	start := c
	first := s.at(c)
	c = s.step(c)

	if spelling, ok := booleanSpellings[first]; ok {
		matched := 1
		for !s.atEnd(c) {
			ch := s.at(c)
			if matched < len(spelling) && ch == spelling[matched] {
				c = s.step(c)
				matched++
				if matched == len(spelling) {
					return c, Token{Kind: TokenBoolean, Lexeme: spelling, Pos: start.pos()}, true
				}
				continue
			}
			if isIdentPart(ch) {
				// Diverged from the spelling: plain identifier from here.
				c = s.step(c)
				return s.finishIdentifier(start, c)
			}
			break
		}
		// Partial spelling like "TR" or "Fa" ends as a plain identifier.
		return s.identifierToken(start, c)
	}

	return s.finishIdentifier(start, c)
}

func (s *Scanner) finishIdentifier(start, c cursor) (cursor, Token, bool) {
	for isIdentPart(s.at(c)) {
		c = s.step(c)
	}
	return s.identifierToken(start, c)
}

// identifierToken emits an IDENTIFIER token, flagging over-length names
// without rejecting them.
func (s *Scanner) identifierToken(start, c cursor) (cursor, Token, bool) {
	lexeme := s.text(start, c)
	if len(lexeme) > maxIdentifierLen {
		s.diags.reportInvalidIdentifier(start.pos(), lexeme)
	}
	return c, Token{Kind: TokenIdentifier, Lexeme: lexeme, Pos: start.pos()}, true
}

// scanLowercaseWord reads [a-z][a-z0-9_]* and classifies it as a keyword, a
// lowercase boolean literal, or an ERROR: lowercase-starting words are
// never valid identifiers.
func (s *Scanner) scanLowercaseWord(c cursor) (cursor, Token, bool) {
	start := c
	for isIdentPart(s.at(c)) {
		c = s.step(c)
	}
	word := s.text(start, c)

	if keywords[word] {
		return c, Token{Kind: TokenKeyword, Lexeme: word, Pos: start.pos()}, true
	}
	if word == "true" || word == "false" {
		return c, Token{Kind: TokenBoolean, Lexeme: word, Pos: start.pos()}, true
	}

	s.diags.reportInvalidIdentifier(start.pos(), word)
	return c, Token{Kind: TokenError, Lexeme: word, Pos: start.pos()}, true
}

// scanString consumes a double-quoted literal, delimiters included in the
// lexeme. An unknown escape is logged but the pair is still consumed. An
// unescaped newline or end of input before the closing quote yields an
// unterminated-string diagnostic and an ERROR token with the partial text;
// the newline itself is not consumed.
func (s *Scanner) scanString(c cursor) (cursor, Token, bool) {
	start := c
	c = s.step(c) // opening '"'

	for !s.atEnd(c) {
		ch := s.at(c)

		if ch == '\n' {
			s.diags.reportUnterminatedString(start.pos(), s.text(start, c))
			return c, Token{Kind: TokenError, Lexeme: s.text(start, c), Pos: start.pos()}, true
		}

		if ch == '\\' {
			c = s.step(c)
			if s.atEnd(c) {
				break
			}
			if esc := s.at(c); !isValidEscape(esc) {
				s.diags.Report(DiagInvalidEscape, c.pos(), "\\"+string(esc), reasonInvalidEscapeInString)
			}
			c = s.step(c)
			continue
		}

		if ch == '"' {
			c = s.step(c)
			return c, Token{Kind: TokenString, Lexeme: s.text(start, c), Pos: start.pos()}, true
		}

		c = s.step(c)
	}

	s.diags.reportUnterminatedString(start.pos(), s.text(start, c))
	return c, Token{Kind: TokenError, Lexeme: s.text(start, c), Pos: start.pos()}, true
}

// scanCharLiteral consumes a single-quoted literal holding exactly one
// content unit. Zero content (immediate quote, newline, or end of input) is
// unterminated; the offending character stays for the next dispatch. Excess
// content is recovered by discarding forward to the next quote or newline.
func (s *Scanner) scanCharLiteral(c cursor) (cursor, Token, bool) {
	start := c
	c = s.step(c) // opening '\''

	if s.atEnd(c) || s.at(c) == '\n' || s.at(c) == '\'' {
		s.diags.reportUnterminatedChar(start.pos(), s.text(start, c))
		return c, Token{Kind: TokenError, Lexeme: s.text(start, c), Pos: start.pos()}, true
	}

	if s.at(c) == '\\' {
		c = s.step(c)
		if !s.atEnd(c) && isValidEscape(s.at(c)) {
			c = s.step(c)
		} else {
			// The invalid escape character is not consumed here; the
			// excess-content recovery below picks it up.
			s.diags.Report(DiagInvalidEscape, c.pos(), s.text(start, c), reasonInvalidEscapeInChar)
		}
	} else {
		c = s.step(c)
	}

	if s.at(c) == '\'' {
		c = s.step(c)
		return c, Token{Kind: TokenCharLiteral, Lexeme: s.text(start, c), Pos: start.pos()}, true
	}

	s.diags.Report(DiagInvalidCharLiteral, start.pos(), s.text(start, c), reasonInvalidCharLiteral)
	for !s.atEnd(c) && s.at(c) != '\'' && s.at(c) != '\n' {
		c = s.step(c)
	}
	if !s.atEnd(c) && s.at(c) == '\'' {
		c = s.step(c)
	}
	return c, Token{Kind: TokenError, Lexeme: s.text(start, c), Pos: start.pos()}, true
}

// at returns the character under the cursor, or 0 at end of input.
func (s *Scanner) at(c cursor) byte {
	if c.off >= len(s.src) {
		return 0
	}
	return s.src[c.off]
}

// lookahead returns the character n positions past the cursor, or 0 when
// out of bounds.
func (s *Scanner) lookahead(c cursor, n int) byte {
	if c.off+n >= len(s.src) {
		return 0
	}
	return s.src[c.off+n]
}

func (s *Scanner) atEnd(c cursor) bool {
	return c.off >= len(s.src)
}

// step returns the cursor advanced by one character, tracking line and
// column. A newline increments the line and resets the column to 1.
func (s *Scanner) step(c cursor) cursor {
	if c.off >= len(s.src) {
		return c
	}
	ch := s.src[c.off]
	c.off++
	if ch == '\n' {
		c.line++
		c.col = 1
	} else {
		c.col++
	}
	return c
}

// text returns the source substring between two cursors.
func (s *Scanner) text(from, to cursor) string {
	return string(s.src[from.off:to.off])
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isUpper(ch byte) bool {
	return ch >= 'A' && ch <= 'Z'
}

func isLower(ch byte) bool {
	return ch >= 'a' && ch <= 'z'
}

// isIdentPart reports whether ch may continue an identifier or lowercase
// word. Uppercase letters never continue a name in this language.
func isIdentPart(ch byte) bool {
	return isLower(ch) || isDigit(ch) || ch == '_'
}

func isPunctuator(ch byte) bool {
	return strings.IndexByte("(){}[],;:", ch) >= 0
}

func isOperatorChar(ch byte) bool {
	return strings.IndexByte("+-*/%=!<>&|", ch) >= 0
}

func isValidEscape(ch byte) bool {
	switch ch {
	case '"', '\'', '\\', 'n', 't', 'r':
		return true
	}
	return false
}
