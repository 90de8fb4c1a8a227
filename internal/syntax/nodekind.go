package syntax

import (
	sitter "github.com/smacker/go-tree-sitter"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Kind is a closed enumeration over the grammar's node kind tags. Keeping the
// raw strings behind one type avoids scattering grammar spellings through
// call sites.
type Kind string

const (
	KindIdentifier  Kind = "identifier"
	KindError       Kind = "ERROR"
	KindMessage     Kind = "message"
	KindMessageName Kind = "message_name"
	KindEnum        Kind = "enum"
	KindEnumName    Kind = "enum_name"
	KindFieldType   Kind = "message_or_enum_type"
	KindServiceName Kind = "service_name"
	KindRpcName     Kind = "rpc_name"
	KindPackage     Kind = "package"
	KindFullIdent   Kind = "full_ident"
	KindImport      Kind = "import"
	KindString      Kind = "string"
	KindComment     Kind = "comment"
)

func IsKind(n *sitter.Node, k Kind) bool {
	return n != nil && n.Type() == string(k)
}

func IsIdentifier(n *sitter.Node) bool { return IsKind(n, KindIdentifier) }
func IsError(n *sitter.Node) bool      { return IsKind(n, KindError) }
func IsMessage(n *sitter.Node) bool    { return IsKind(n, KindMessage) }
func IsComment(n *sitter.Node) bool    { return IsKind(n, KindComment) }
func IsFieldType(n *sitter.Node) bool  { return IsKind(n, KindFieldType) }
func IsImport(n *sitter.Node) bool     { return IsKind(n, KindImport) }

func IsMessageName(n *sitter.Node) bool { return IsKind(n, KindMessageName) }
func IsEnumName(n *sitter.Node) bool    { return IsKind(n, KindEnumName) }

// IsUserDefined reports whether n declares a user-defined type name, the only
// kinds that can be a definition or rename target.
func IsUserDefined(n *sitter.Node) bool {
	return IsMessageName(n) || IsEnumName(n)
}

// IsActionable reports whether n is eligible for hover, go-to-definition and
// rename requests.
func IsActionable(n *sitter.Node) bool {
	if n == nil {
		return false
	}
	switch Kind(n.Type()) {
	case KindMessageName, KindEnumName, KindFieldType, KindServiceName, KindRpcName:
		return true
	default:
		return false
	}
}

// SymbolKind maps a user-defined name node to its LSP document symbol kind.
func SymbolKind(n *sitter.Node) protocol.SymbolKind {
	switch {
	case IsMessageName(n):
		return protocol.SymbolKindStruct
	case IsEnumName(n):
		return protocol.SymbolKindEnum
	default:
		return protocol.SymbolKindNull
	}
}
