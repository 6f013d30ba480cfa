package searcher

import "fmt"

// tree is an append-only arena of nodes. NodeIDs are slice indices, so they
// stay valid for the lifetime of the tree; nodes are never removed.
type tree[M any] struct {
	nodes []Node[M]
}

// newTree builds an arena holding only the given root. capacity is a
// pre-allocation hint; the arena grows past it freely.
func newTree[M any](root Node[M], capacity int) *tree[M] {
	if capacity < 1 {
		capacity = 1
	}
	nodes := make([]Node[M], 0, capacity)
	nodes = append(nodes, root)
	return &tree[M]{nodes: nodes}
}

func (t *tree[M]) rootID() NodeID { return 0 }

func (t *tree[M]) len() int { return len(t.nodes) }

// node returns a pointer into the arena. The pointer is invalidated by the
// next insert and must not be retained across one.
func (t *tree[M]) node(id NodeID) *Node[M] {
	if id < 0 || int(id) >= len(t.nodes) {
		panic(fmt.Sprintf("searcher: node id %d not in arena of %d nodes", id, len(t.nodes)))
	}
	return &t.nodes[id]
}

// parent returns the parent of id. ok is false only for the root.
func (t *tree[M]) parent(id NodeID) (NodeID, bool) {
	p := t.node(id).parent
	if p == noParent {
		return 0, false
	}
	return p, true
}

// insert appends node as the last child of parent and returns its id.
func (t *tree[M]) insert(node Node[M], parent NodeID) NodeID {
	t.node(parent) // bounds check before mutating
	id := NodeID(len(t.nodes))
	node.parent = parent
	t.nodes = append(t.nodes, node)
	t.nodes[parent].children = append(t.nodes[parent].children, id)
	return id
}
