package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbolTableRecord(t *testing.T) {
	table := NewSymbolTable()
	table.Record(Token{Kind: TokenIdentifier, Lexeme: "Count", Pos: Position{Line: 1, Column: 9}})
	table.Record(Token{Kind: TokenIdentifier, Lexeme: "Pi", Pos: Position{Line: 2, Column: 9}})
	table.Record(Token{Kind: TokenIdentifier, Lexeme: "Count", Pos: Position{Line: 3, Column: 5}})

	require.Equal(t, 2, table.Size())

	count, ok := table.Lookup("Count")
	require.True(t, ok)
	assert.Equal(t, 2, count.Frequency)
	assert.Equal(t, 1, count.FirstPos.Line, "first sighting wins")
	assert.Equal(t, 9, count.FirstPos.Column)
	assert.Equal(t, UnknownType, count.Type)
}

func TestSymbolTableIgnoresNonIdentifiers(t *testing.T) {
	table := NewSymbolTable()
	table.Record(Token{Kind: TokenKeyword, Lexeme: "declare", Pos: Position{Line: 1, Column: 1}})
	table.Record(Token{Kind: TokenBoolean, Lexeme: "TRUE", Pos: Position{Line: 1, Column: 1}})
	table.Record(Token{Kind: TokenError, Lexeme: "flag", Pos: Position{Line: 1, Column: 1}})
	assert.Zero(t, table.Size())
}

func TestSymbolTableCaseSensitive(t *testing.T) {
	table := NewSymbolTable()
	table.Record(Token{Kind: TokenIdentifier, Lexeme: "Count"})
	table.Record(Token{Kind: TokenIdentifier, Lexeme: "Co_unt"})
	assert.Equal(t, 2, table.Size())
}

func TestSymbolTableSetType(t *testing.T) {
	table := NewSymbolTable()
	table.Record(Token{Kind: TokenIdentifier, Lexeme: "Count"})

	table.SetType("Count", "INTEGER")
	count, ok := table.Lookup("Count")
	require.True(t, ok)
	assert.Equal(t, "INTEGER", count.Type)

	// Unknown names are a no-op, not an error.
	table.SetType("Missing", "FLOAT")
	_, ok = table.Lookup("Missing")
	assert.False(t, ok)
}

func TestSymbolTableInsertionOrder(t *testing.T) {
	table := NewSymbolTable()
	for _, name := range []string{"Zeta", "Alpha", "Mid", "Alpha"} {
		table.Record(Token{Kind: TokenIdentifier, Lexeme: name})
	}

	var names []string
	for _, sym := range table.All() {
		names = append(names, sym.Name)
	}
	assert.Equal(t, []string{"Zeta", "Alpha", "Mid"}, names, "insertion order, not sorted")
}
