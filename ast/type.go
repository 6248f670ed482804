package ast

// NodeType represents the variant of an AST node
type NodeType uint16

// Node variants. Value nodes carry a scalar payload, vector nodes own
// other nodes.
const (
	nodeTypeValue  NodeType = 128
	nodeTypeVector NodeType = 256

	NodeTypeNumber = nodeTypeValue | 1
	NodeTypeString = nodeTypeValue | 2
	NodeTypeBool   = nodeTypeValue | 4
	NodeTypeSymbol = nodeTypeValue | 8

	NodeTypeList  = nodeTypeVector | 1
	NodeTypeQuote = nodeTypeVector | 2
)

func (nt NodeType) String() string {
	s, ok := nodeTypeName[nt]
	if ok {
		return s
	}
	return ""
}

var nodeTypeName = map[NodeType]string{
	NodeTypeNumber: "number",
	NodeTypeString: "string",
	NodeTypeBool:   "bool",
	NodeTypeSymbol: "symbol",
	NodeTypeList:   "list",
	NodeTypeQuote:  "quote",
}
