package search

import (
	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/worker"
)

// Node is one position of a materialised search tree.
type Node struct {
	Position *chess.Position
	Action   chess.Action // Action that led here from the parent; zero at the root
	Value    float64
	Children []*Node
}

// IsLeaf reports whether the node was not expanded.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// BuildTree expands every line from pos to depth plies and folds values
// bottom-up: the max of the children where First is to move, the min where
// Second is. Nodes without a legal action are terminal and scored directly.
// pos itself is not modified.
func BuildTree(pos *chess.Position, depth int) *Node {
	root := &Node{Position: pos.Clone()}
	expand(root, depth)
	return root
}

func expand(n *Node, depth int) {
	if depth <= 0 {
		n.Value = Evaluate(n.Position)
		return
	}
	actions := engine.LegalActions(n.Position)
	if len(actions) == 0 {
		n.Value = terminalValue(n.Position)
		return
	}

	n.Children = make([]*Node, 0, len(actions))
	for _, action := range actions {
		child := &Node{Position: successor(n.Position, action), Action: action}
		expand(child, depth-1)
		n.Children = append(n.Children, child)
	}
	n.Value = fold(n)
}

// fold computes an internal node's value from its children.
func fold(n *Node) float64 {
	value := n.Children[0].Value
	for _, c := range n.Children[1:] {
		if maximising(n.Position) {
			if c.Value > value {
				value = c.Value
			}
		} else if c.Value < value {
			value = c.Value
		}
	}
	return value
}

// Minimax searches depth plies (at least one) by building the full tree,
// then samples uniformly among the root actions that reach the optimal
// value. It panics if the side to move has no legal action.
func Minimax(pos *chess.Position, depth int, opts ...Option) Result {
	o := newOptions(opts)
	depth = clampDepth(depth)
	actions := rootActions(pos)

	root := &Node{Position: pos.Clone()}
	if o.workers > 1 {
		root.Children = expandParallel(root.Position, actions, depth-1, o.workers)
	} else {
		root.Children = make([]*Node, 0, len(actions))
		for _, action := range actions {
			child := &Node{Position: successor(root.Position, action), Action: action}
			expand(child, depth-1)
			root.Children = append(root.Children, child)
		}
	}
	root.Value = fold(root)

	best := newCandidates(maximising(pos))
	for _, child := range root.Children {
		best.offer(child.Action, child.Value)
	}
	result := best.result(o.rng, CountNodes(root))
	result.Tree = root
	return result
}

// expandParallel builds one subtree per root action on the worker pool.
func expandParallel(pos *chess.Position, actions []chess.Action, depth, workers int) []*Node {
	items := make([]worker.WorkItem, len(actions))
	for i, action := range actions {
		items[i] = worker.WorkItem{Index: i, Action: action, Position: successor(pos, action)}
	}

	results := worker.RunOrdered(items, func(item worker.WorkItem) worker.ProcessResult {
		child := &Node{Position: item.Position, Action: item.Action}
		expand(child, depth)
		return worker.ProcessResult{Index: item.Index, Action: item.Action, Value: child.Value, Payload: child}
	}, worker.WithWorkers(workers))

	children := make([]*Node, len(results))
	for i, r := range results {
		children[i] = r.Payload.(*Node)
	}
	return children
}

// CountNodes returns the number of nodes in the tree, root included.
func CountNodes(root *Node) int {
	if root == nil {
		return 0
	}
	n := 1
	for _, c := range root.Children {
		n += CountNodes(c)
	}
	return n
}

// CountLeaves returns the number of unexpanded nodes: depth-limit leaves
// and terminal positions.
func CountLeaves(root *Node) int {
	if root == nil {
		return 0
	}
	if root.IsLeaf() {
		return 1
	}
	n := 0
	for _, c := range root.Children {
		n += CountLeaves(c)
	}
	return n
}
