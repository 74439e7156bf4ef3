package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Red0MFHA/CompilerConstruction/lexer"
)

const source = `declare Count = 42;
Count += 3.14; ## trailing comment
flag
`

func scanSource(t *testing.T) (*lexer.Scanner, []lexer.Token) {
	t.Helper()
	s := lexer.NewScanner([]byte(source))
	return s, s.Scan()
}

func TestWriteTokens(t *testing.T) {
	_, tokens := scanSource(t)

	var buf bytes.Buffer
	require.NoError(t, WriteTokens(&buf, tokens))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, len(tokens))
	assert.Equal(t, `<KEYWORD, "declare", Line: 1, Col: 1>`, lines[0])
	assert.Equal(t, `<IDENTIFIER, "Count", Line: 1, Col: 9>`, lines[1])
	assert.Equal(t, `<EOF, "<EOF>", Line: 4, Col: 1>`, lines[len(lines)-1])
}

func TestWriteSymbols(t *testing.T) {
	s, _ := scanSource(t)

	var buf bytes.Buffer
	require.NoError(t, WriteSymbols(&buf, s.Symbols()))

	assert.Equal(t, "Count | UNKNOWN | Line: 1, Col: 9 | Freq: 2\n", buf.String())
}

func TestWriteDiagnostics(t *testing.T) {
	s, _ := scanSource(t)

	var buf bytes.Buffer
	require.NoError(t, WriteDiagnostics(&buf, s.Diagnostics()))

	out := buf.String()
	assert.Contains(t, out, "[LEXICAL ERROR] INVALID_IDENTIFIER at Line: 3, Col: 1")
	assert.Contains(t, out, `lexeme: "flag"`)
	assert.Contains(t, out, "Total errors: 1")
}

func TestWriteDiagnosticsEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDiagnostics(&buf, lexer.NewDiagnosticLog()))
	assert.Equal(t, "No lexical errors detected.\n", buf.String())
}

func TestCollectStats(t *testing.T) {
	s, tokens := scanSource(t)
	st := Collect(tokens, s.Symbols(), s.Diagnostics(), s.Lines())

	assert.Equal(t, len(tokens), st.TotalTokens)
	assert.Equal(t, 4, st.Lines)
	assert.Equal(t, 1, st.Comments)
	assert.Equal(t, 1, st.Identifiers)
	assert.Equal(t, 1, st.Errors)
	assert.Equal(t, 1, st.PerKind[lexer.TokenKeyword])
	assert.Equal(t, 2, st.PerKind[lexer.TokenIdentifier])
	assert.Equal(t, 1, st.PerKind[lexer.TokenFloat])
	assert.Equal(t, 1, st.PerKind[lexer.TokenEOF])
}

func TestWriteStats(t *testing.T) {
	s, tokens := scanSource(t)
	st := Collect(tokens, s.Symbols(), s.Diagnostics(), s.Lines())

	var buf bytes.Buffer
	require.NoError(t, WriteStats(&buf, st))

	out := buf.String()
	assert.Contains(t, out, "Lines processed    : 4")
	assert.Contains(t, out, "Unique identifiers : 1")
	assert.Contains(t, out, "Lexical errors     : 1")
	assert.Contains(t, out, "KEYWORD")
	assert.Contains(t, out, "EOF")
	assert.NotContains(t, out, "FLOAT_EXP", "kinds with zero count are omitted")

	// Breakdown follows kind declaration order.
	assert.Less(t, strings.Index(out, "KEYWORD"), strings.Index(out, "PUNCTUATOR"))
}

func TestWriterErrorsPropagate(t *testing.T) {
	_, tokens := scanSource(t)
	w := &failingWriter{}
	assert.Error(t, WriteTokens(w, tokens))
}

type failingWriter struct{}

func (w *failingWriter) Write(p []byte) (int, error) {
	return 0, assert.AnError
}
