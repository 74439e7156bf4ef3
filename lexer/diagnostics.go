package lexer

import "fmt"

// DiagnosticKind categorizes a recoverable lexical error.
type DiagnosticKind int

const (
	DiagInvalidCharacter    DiagnosticKind = iota // @, $, etc. that cannot start any token
	DiagMalformedFloat                            // e.g. 3. or 1.1234567 (>6 decimal places)
	DiagMalformedInteger                          // e.g. 1,000 (rare; usually splits into two tokens)
	DiagUnterminatedString                        // "hello with no closing quote
	DiagUnterminatedChar                          // 'a with no closing quote
	DiagInvalidCharLiteral                        // more than one character between single quotes
	DiagInvalidEscape                             // unrecognized escape sequence e.g. \q
	DiagInvalidIdentifier                         // starts lowercase, or exceeds 31 chars
	DiagUnterminatedComment                       // #* with no matching *#
	DiagUnknown                                   // catch-all
)

var diagnosticNames = map[DiagnosticKind]string{
	DiagInvalidCharacter:    "INVALID_CHARACTER",
	DiagMalformedFloat:      "MALFORMED_FLOAT",
	DiagMalformedInteger:    "MALFORMED_INTEGER",
	DiagUnterminatedString:  "UNTERMINATED_STRING",
	DiagUnterminatedChar:    "UNTERMINATED_CHAR",
	DiagInvalidCharLiteral:  "INVALID_CHAR_LITERAL",
	DiagInvalidEscape:       "INVALID_ESCAPE",
	DiagInvalidIdentifier:   "INVALID_IDENTIFIER",
	DiagUnterminatedComment: "UNTERMINATED_COMMENT",
	DiagUnknown:             "UNKNOWN",
}

func (k DiagnosticKind) String() string {
	if name, ok := diagnosticNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// Fixed reason strings. Each diagnostic kind carries one of these, never
// free-form text, so downstream tooling can match on them.
const (
	reasonUnterminatedString    = "String literal has no closing double-quote"
	reasonUnterminatedChar      = "Character literal has no closing single-quote"
	reasonUnterminatedComment   = "Multi-line comment opened but never closed"
	reasonIdentifierTooLong     = "Identifier exceeds maximum length of 31 characters"
	reasonIdentifierLowercase   = "Identifier must start with an uppercase letter [A-Z]"
	reasonMalformedFloat        = "Float has more than 6 decimal places or missing fraction digits"
	reasonInvalidEscapeInString = "Invalid escape sequence in string literal"
	reasonInvalidEscapeInChar   = "Invalid escape in char literal"
	reasonInvalidCharLiteral    = "Character literal must contain exactly one character"
)

// Diagnostic records one recoverable lexical error. Immutable once logged.
type Diagnostic struct {
	Kind   DiagnosticKind
	Pos    Position
	Lexeme string // offending or partial text
	Reason string
}

// String renders the diagnostic in the fixed report form
// [LEXICAL ERROR] <KIND> at Line: L, Col: C | lexeme: "<text>" | <reason>.
func (d Diagnostic) String() string {
	return fmt.Sprintf("[LEXICAL ERROR] %s at Line: %d, Col: %d | lexeme: \"%s\" | %s",
		d.Kind, d.Pos.Line, d.Pos.Column, d.Lexeme, d.Reason)
}

// DiagnosticLog is an append-only, detection-ordered collection of lexical
// errors. It never halts the scanner; every entry describes a problem the
// scanner already recovered from.
type DiagnosticLog struct {
	diags []Diagnostic
}

// NewDiagnosticLog creates an empty log.
func NewDiagnosticLog() *DiagnosticLog {
	return &DiagnosticLog{}
}

// Report appends a diagnostic.
func (l *DiagnosticLog) Report(kind DiagnosticKind, pos Position, lexeme, reason string) {
	l.diags = append(l.diags, Diagnostic{Kind: kind, Pos: pos, Lexeme: lexeme, Reason: reason})
}

// reportInvalidChar logs a character that cannot start any token.
func (l *DiagnosticLog) reportInvalidChar(pos Position, ch byte) {
	l.Report(DiagInvalidCharacter, pos, string(ch),
		fmt.Sprintf("Character '%c' is not a valid token start", ch))
}

func (l *DiagnosticLog) reportUnterminatedString(pos Position, partial string) {
	l.Report(DiagUnterminatedString, pos, partial, reasonUnterminatedString)
}

func (l *DiagnosticLog) reportUnterminatedChar(pos Position, partial string) {
	l.Report(DiagUnterminatedChar, pos, partial, reasonUnterminatedChar)
}

func (l *DiagnosticLog) reportUnterminatedComment(pos Position) {
	l.Report(DiagUnterminatedComment, pos, "#*", reasonUnterminatedComment)
}

// reportInvalidIdentifier covers both failure modes: over-length names and
// words that start with a lowercase letter.
func (l *DiagnosticLog) reportInvalidIdentifier(pos Position, lexeme string) {
	if len(lexeme) > maxIdentifierLen {
		l.Report(DiagInvalidIdentifier, pos, lexeme, reasonIdentifierTooLong)
		return
	}
	l.Report(DiagInvalidIdentifier, pos, lexeme, reasonIdentifierLowercase)
}

func (l *DiagnosticLog) reportMalformedFloat(pos Position, lexeme string) {
	l.Report(DiagMalformedFloat, pos, lexeme, reasonMalformedFloat)
}

// HasErrors reports whether any diagnostic has been logged.
func (l *DiagnosticLog) HasErrors() bool { return len(l.diags) > 0 }

// Count returns the number of logged diagnostics.
func (l *DiagnosticLog) Count() int { return len(l.diags) }

// All returns the diagnostics in detection order. The returned slice is the
// log's backing storage; callers must not mutate it.
func (l *DiagnosticLog) All() []Diagnostic { return l.diags }
