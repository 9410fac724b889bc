package archive

import "strings"

// Symbol is a leaf symbol: a byte value or EndOfStream.
type Symbol uint16

// EndOfStream terminates the coded payload.
const EndOfStream Symbol = 256

// Code is the root-to-leaf path of a symbol; false is a left edge (bit 0),
// true a right edge (bit 1).
type Code []bool

func (code Code) String() string {
	var sb strings.Builder
	for _, bit := range code {
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// LookupTable maps every symbol of a tree to its code. Symbols not present
// in the tree have a nil code.
type LookupTable [EndOfStream + 1]Code

// Code returns the code for symbol and whether the symbol is in the tree.
func (table *LookupTable) Code(symbol Symbol) (Code, bool) {
	code := table[symbol]
	return code, code != nil
}

// BuildLookup walks the tree once and records the path to every leaf.
func BuildLookup(root *Node) *LookupTable {
	table := new(LookupTable)
	fillTable(root, make(Code, 0, 16), table)
	return table
}

func fillTable(node *Node, code Code, table *LookupTable) {
	if node.IsLeaf() {
		table[node.Symbol()] = append(Code{}, code...)
		return
	}

	fillTable(node.Left, append(code, false), table)
	fillTable(node.Right, append(code, true), table)
}
