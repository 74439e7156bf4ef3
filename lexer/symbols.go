package lexer

// UnknownType is the placeholder inferred type assigned to every identifier
// until a later phase calls SetType.
const UnknownType = "UNKNOWN"

// Symbol is one identifier-registry entry: the exact lexeme, its first
// occurrence, and how many times it appears.
type Symbol struct {
	Name      string
	Type      string // inferred from context, defaults to UnknownType
	FirstPos  Position
	Frequency int
}

// SymbolTable tracks every IDENTIFIER token, keyed by exact lexeme.
// Insertion order is preserved for deterministic reporting.
type SymbolTable struct {
	entries map[string]*Symbol
	order   []string
}

// NewSymbolTable creates an empty table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{entries: make(map[string]*Symbol)}
}

// Record registers an identifier sighting. Tokens of any other kind are
// ignored, so keywords and booleans never produce entries even when their
// text would match the identifier pattern.
func (t *SymbolTable) Record(tok Token) {
	if tok.Kind != TokenIdentifier {
		return
	}
	if sym, ok := t.entries[tok.Lexeme]; ok {
		sym.Frequency++
		return
	}
	sym := &Symbol{
		Name:      tok.Lexeme,
		Type:      UnknownType,
		FirstPos:  tok.Pos,
		Frequency: 1,
	}
	t.entries[tok.Lexeme] = sym
	t.order = append(t.order, tok.Lexeme)
}

// SetType sets the inferred type for a known identifier. Unknown names are
// ignored.
func (t *SymbolTable) SetType(name, typ string) {
	if sym, ok := t.entries[name]; ok {
		sym.Type = typ
	}
}

// Lookup returns the entry for name, or false if it was never recorded.
func (t *SymbolTable) Lookup(name string) (*Symbol, bool) {
	sym, ok := t.entries[name]
	return sym, ok
}

// Size returns the number of distinct identifiers.
func (t *SymbolTable) Size() int { return len(t.order) }

// All returns the entries in insertion order.
func (t *SymbolTable) All() []*Symbol {
	syms := make([]*Symbol, 0, len(t.order))
	for _, name := range t.order {
		syms = append(syms, t.entries[name])
	}
	return syms
}
