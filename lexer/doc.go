// Package lexer implements a hand-written DFA scanner for the CC toy
// language. One call to Scan converts a full in-memory source unit into
// three artifacts:
//
//   - an ordered token stream, always terminated by the EOF sentinel
//   - an insertion-ordered identifier registry with first-seen positions
//     and occurrence counts
//   - an append-only log of recoverable lexical errors
//
// The scanner applies longest-match tokenization with a fixed dispatch
// priority (comments, strings, chars, operators, words, numbers,
// punctuators) using the current character and at most one character of
// lookahead. Every lexical error is recovered from: the scanner never
// aborts, never reverses the cursor, and consumes at least one character
// on every error path, so it always reaches end of input.
//
// Usage:
//
//	tokens, symbols, diags := lexer.Scan(src)
//	if diags.HasErrors() {
//	    // tokens is still complete; ERROR tokens mark the damage
//	}
//
// Two classification quirks are inherited from the language definition and
// preserved deliberately: a reserved boolean spelling is accepted the
// moment it completes (so "TRUEx" is BOOLEAN then a separate word), and a
// '+' or '-' directly before a digit always begins a signed number literal
// (so "X+5" is an identifier then the integer "+5").
package lexer
