// Package report renders the three scan artifacts (tokens, identifier
// registry, diagnostics) and aggregate statistics as plain text. All
// functions write to a caller-supplied io.Writer and perform no file I/O;
// choosing a destination is the driver's job.
package report

import (
	"fmt"
	"io"

	"github.com/Red0MFHA/CompilerConstruction/lexer"
)

// WriteTokens writes one <KIND, "lexeme", Line: L, Col: C> line per token.
func WriteTokens(w io.Writer, tokens []lexer.Token) error {
	for _, tok := range tokens {
		if _, err := fmt.Fprintln(w, tok); err != nil {
			return err
		}
	}
	return nil
}

// WriteDiagnostics writes the lexical error report in detection order, or a
// single all-clear line when the log is empty.
func WriteDiagnostics(w io.Writer, log *lexer.DiagnosticLog) error {
	if !log.HasErrors() {
		_, err := fmt.Fprintln(w, "No lexical errors detected.")
		return err
	}
	for _, d := range log.All() {
		if _, err := fmt.Fprintln(w, d); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Total errors: %d\n", log.Count())
	return err
}

// WriteSymbols writes the identifier registry in insertion order, one
// <name> | <type> | Line: L, Col: C | Freq: N row per entry.
func WriteSymbols(w io.Writer, table *lexer.SymbolTable) error {
	for _, sym := range table.All() {
		_, err := fmt.Fprintf(w, "%s | %s | Line: %d, Col: %d | Freq: %d\n",
			sym.Name, sym.Type, sym.FirstPos.Line, sym.FirstPos.Column, sym.Frequency)
		if err != nil {
			return err
		}
	}
	return nil
}
