package lexer

import "fmt"

// Position tracks a source location for tokens and diagnostics.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset into source
}

// TokenKind identifies the lexical category of a token.
type TokenKind int

const (
	// Literals
	TokenKeyword     TokenKind = iota // start, finish, loop, condition, ...
	TokenIdentifier                   // [A-Z][a-z0-9_]* e.g. Count, Total_sum
	TokenInteger                      // [+-]?[0-9]+ e.g. 42, -5, +100
	TokenFloat                        // [+-]?[0-9]+.[0-9]{1,6} e.g. 3.14, -0.5
	TokenFloatExp                     // float with exponent e.g. 1.5e10, 2.0E-3
	TokenString                       // "..." with escape sequences, delimiters kept
	TokenCharLiteral                  // '.' exactly one content unit
	TokenBoolean                      // TRUE, FALSE, true, false

	// Operators
	TokenArithOp   // + - * / % **
	TokenRelOp     // == != < > <= >=
	TokenLogicalOp // && || !
	TokenAssignOp  // = += -= *= /=
	TokenIncDec    // ++ --

	// Structure
	TokenPunctuator // ( ) { } [ ] , ; :
	TokenComment    // ## line or #* ... *# block

	// Special
	TokenError // malformed lexeme recovered from
	TokenEOF   // end of input sentinel
)

var tokenNames = map[TokenKind]string{
	TokenKeyword:     "KEYWORD",
	TokenIdentifier:  "IDENTIFIER",
	TokenInteger:     "INTEGER",
	TokenFloat:       "FLOAT",
	TokenFloatExp:    "FLOAT_EXP",
	TokenString:      "STRING",
	TokenCharLiteral: "CHAR_LITERAL",
	TokenBoolean:     "BOOLEAN",
	TokenArithOp:     "ARITH_OP",
	TokenRelOp:       "REL_OP",
	TokenLogicalOp:   "LOGICAL_OP",
	TokenAssignOp:    "ASSIGN_OP",
	TokenIncDec:      "INC_DEC",
	TokenPunctuator:  "PUNCTUATOR",
	TokenComment:     "COMMENT",
	TokenError:       "ERROR",
	TokenEOF:         "EOF",
}

func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// TokenKinds lists every kind in declaration order, for per-kind reporting.
func TokenKinds() []TokenKind {
	kinds := make([]TokenKind, 0, len(tokenNames))
	for k := TokenKeyword; k <= TokenEOF; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Token is a single classified lexeme. Immutable once created.
type Token struct {
	Kind   TokenKind
	Lexeme string // verbatim source text, delimiters included
	Pos    Position
}

// String renders the token in the fixed report form
// <KIND, "lexeme", Line: L, Col: C>.
func (t Token) String() string {
	return fmt.Sprintf("<%s, \"%s\", Line: %d, Col: %d>", t.Kind, t.Lexeme, t.Pos.Line, t.Pos.Column)
}

// EOFLexeme is the sentinel lexeme carried by the final token of every scan.
const EOFLexeme = "<EOF>"

// keywords is the reserved-word set. Lowercase words not in this set and not
// a boolean spelling are invalid (identifiers must start uppercase).
var keywords = map[string]bool{
	"start":     true,
	"finish":    true,
	"loop":      true,
	"condition": true,
	"declare":   true,
	"output":    true,
	"input":     true,
	"function":  true,
	"return":    true,
	"break":     true,
	"continue":  true,
	"else":      true,
}
