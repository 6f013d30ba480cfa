package searcher

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spaolacci/murmur3"
)

// TreeFingerprint returns a deterministic digest of the whole tree for
// regression comparison between runs. The algorithm never consults it.
func (m *MCTS[M]) TreeFingerprint() string {
	return m.NodeFingerprint(m.tree.rootID())
}

// NodeFingerprint digests the subtree under id.
func (m *MCTS[M]) NodeFingerprint(id NodeID) string {
	var sb strings.Builder
	m.serializeNode(&sb, id)
	return mixDigest(sb.String())
}

func (m *MCTS[M]) serializeNode(sb *strings.Builder, id NodeID) {
	node := m.tree.node(id)
	solved := 0
	if node.solved {
		solved = 1
	}
	fmt.Fprintf(sb, "[%d/%d/%d/%d/%d/%d/%d;",
		node.id, node.depth, node.wins, node.draws, node.visits, int(node.outcome), solved)
	for _, child := range node.children {
		m.serializeNode(sb, child)
	}
	sb.WriteByte(']')
}

// mixDigest runs the serialized tree through murmur3 x64 128 and renders
// the result as 32 hex characters.
func mixDigest(s string) string {
	h1, h2 := murmur3.Sum128([]byte(s))
	var raw [16]byte
	binary.LittleEndian.PutUint64(raw[:8], h1)
	binary.LittleEndian.PutUint64(raw[8:], h2)
	id, err := uuid.FromBytes(raw[:])
	if err != nil {
		panic(err) // 16 bytes in, cannot fail
	}
	return strings.ReplaceAll(id.String(), "-", "")
}
