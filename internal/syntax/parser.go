// Package syntax wraps one proto file's tree-sitter concrete syntax tree and
// the structural queries built on it: node classification, position lookup,
// comment attachment, document symbols, per-file rename primitives and parse
// diagnostics. It knows nothing about other files; cross-file resolution
// lives in internal/workspace.
package syntax

import (
	"context"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/protobuf"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Parser turns proto source text into Trees. Tree-sitter parser instances are
// not re-entrant, so every parse holds an exclusive lock; parsing is
// serialized but queries on already-produced Trees are not.
type Parser struct {
	mu     sync.Mutex
	parser *sitter.Parser
}

func NewParser() *Parser {
	p := sitter.NewParser()
	p.SetLanguage(protobuf.GetLanguage())
	return &Parser{parser: p}
}

// Parse produces an immutable Tree for content. Syntax errors do not fail the
// parse; they surface as ERROR nodes inside the returned tree. An error here
// means the grammar engine itself could not run.
func (p *Parser) Parse(uri protocol.DocumentUri, content []byte) (*Tree, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	tree, err := p.parser.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return nil, err
	}
	return &Tree{uri: uri, tree: tree}, nil
}
