package ast

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Encode transforms a node into its canonical text representation. The
// canonical form re-parses to an equal tree, which is what lets quoted
// code travel as plain data.
func Encode(n *Node) []byte {
	return []byte(encodeNode(n))
}

func encodeNode(n *Node) string {
	switch n.Type() {
	case NodeTypeNumber:
		return strconv.FormatInt(n.Number(), 10)

	case NodeTypeString:
		return quoteString(n.Text())

	case NodeTypeBool:
		if n.Bool() {
			return "#t"
		}
		return "#f"

	case NodeTypeSymbol:
		return n.Text()

	case NodeTypeList:
		parts := []string{}
		for _, child := range n.List() {
			parts = append(parts, encodeNode(child))
		}
		return "(" + strings.Join(parts, " ") + ")"

	case NodeTypeQuote:
		return "'" + encodeNode(n.Quoted())
	}

	panic("unknown node type")
}

// quoteString renders s surrounded by double quotes, re-escaping the
// characters the lexer decodes so the output lexes back to the same
// string.
func quoteString(s string) string {
	var b strings.Builder

	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')

	return b.String()
}

// Print displays a human-readable dump of a node on standard output
func Print(n *Node) {
	Fprint(os.Stdout, n)
}

// Fprint writes an indented, one-node-per-line dump of the tree to w
func Fprint(w io.Writer, n *Node) {
	fprintLevel(w, n, 0)
}

func fprintLevel(w io.Writer, n *Node, level int) {
	if n == nil {
		fmt.Fprintf(w, ":nil\n")
		return
	}

	indent := strings.Repeat("    ", level)
	fmt.Fprintf(w, "%s(%s)", indent, n.Type())

	switch {
	case n.IsVector():
		fmt.Fprintln(w)
		switch n.Type() {
		case NodeTypeList:
			for _, child := range n.List() {
				fprintLevel(w, child, level+1)
			}
		case NodeTypeQuote:
			fprintLevel(w, n.Quoted(), level+1)
		}

	case n.IsValue():
		fmt.Fprintf(w, ": %s\n", encodeNode(n))

	default:
		panic("unknown node type")
	}
}
