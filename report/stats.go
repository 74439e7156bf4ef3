package report

import (
	"fmt"
	"io"

	"github.com/Red0MFHA/CompilerConstruction/lexer"
)

// Stats aggregates one scan's output for the statistics report.
type Stats struct {
	TotalTokens int
	Lines       int
	Comments    int
	Identifiers int // distinct identifiers, not sightings
	Errors      int
	PerKind     map[lexer.TokenKind]int
}

// Collect computes statistics from the three scan artifacts and the line
// count reported by the scanner.
func Collect(tokens []lexer.Token, table *lexer.SymbolTable, log *lexer.DiagnosticLog, lines int) Stats {
	perKind := make(map[lexer.TokenKind]int)
	for _, tok := range tokens {
		perKind[tok.Kind]++
	}
	return Stats{
		TotalTokens: len(tokens),
		Lines:       lines,
		Comments:    perKind[lexer.TokenComment],
		Identifiers: table.Size(),
		Errors:      log.Count(),
		PerKind:     perKind,
	}
}

// WriteStats writes the aggregate counters followed by a per-kind breakdown
// in kind declaration order, listing only kinds that occurred.
func WriteStats(w io.Writer, st Stats) error {
	lines := []string{
		fmt.Sprintf("Total tokens       : %d", st.TotalTokens),
		fmt.Sprintf("Lines processed    : %d", st.Lines),
		fmt.Sprintf("Comments           : %d", st.Comments),
		fmt.Sprintf("Unique identifiers : %d", st.Identifiers),
		fmt.Sprintf("Lexical errors     : %d", st.Errors),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	for _, kind := range lexer.TokenKinds() {
		if n := st.PerKind[kind]; n > 0 {
			if _, err := fmt.Fprintf(w, "%-12s : %d\n", kind, n); err != nil {
				return err
			}
		}
	}
	return nil
}
