package bstree

import (
	"bytes"
	"cmp"
	"fmt"
	"io"
)

type nodeids[K cmp.Ordered] struct {
	idTable map[*Node[K]]int
	max     int
}

func newtable[K cmp.Ordered]() nodeids[K] {
	return nodeids[K]{
		idTable: make(map[*Node[K]]int),
		max:     1,
	}
}

func (ids nodeids[K]) find(node *Node[K]) int {
	return ids.idTable[node]
}

func (ids *nodeids[K]) alloc(node *Node[K]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// ToDot outputs the structure of a tree in Graphviz DOT format
// (for debugging purposes).
//
// Leaves are drawn as boxes, inner nodes as filled circles. A missing child
// of an inner node is drawn as a small empty circle, so that left and right
// children can be told apart.
func ToDot[K cmp.Ordered](root *Node[K], w io.Writer) {
	var bf bytes.Buffer
	bf.WriteString("strict digraph {\n")
	bf.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[K]()
	var nodelist, edgelist bytes.Buffer
	var nilcnt int
	var walk func(node *Node[K])
	walk = func(node *Node[K]) {
		if ids.find(node) > 0 { // corrupt tree, do not loop
			return
		}
		ID := ids.alloc(node)
		isleaf := IsLeaf(node)
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%v\"%s];\n", ID, node.Key, nodeDotStyles(isleaf))
		if isleaf {
			return
		}
		for _, child := range [2]*Node[K]{node.Left, node.Right} {
			if child == nil {
				nilcnt++
				nilid := fmt.Sprintf("nil%d", nilcnt)
				fmt.Fprintf(&nodelist, "\"%s\" %s;\n", nilid, emptyNode())
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%s\";\n", ID, nilid)
				continue
			}
			walk(child)
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.find(child))
		}
	}
	if root != nil {
		walk(root)
	}
	bf.Write(nodelist.Bytes())
	bf.Write(edgelist.Bytes())
	bf.WriteString("}\n")
	if _, err := w.Write(bf.Bytes()); err != nil {
		T().Errorf("bstree DOT: %s", err.Error())
	}
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
