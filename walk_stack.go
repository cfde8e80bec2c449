package bst

// phase records how far the walk has progressed through a frame's node.
type phase uint8

const (
	// phaseLeft means the left subtree has not been entered yet.
	phaseLeft phase = iota
	// phaseNode means the left subtree is done and the node itself is next.
	phaseNode
	// phaseRight means the node is done and only the right subtree remains.
	phaseRight
)

// frame is one node on the path from the root of a walk.
type frame[T Number] struct {
	*Node[T]
	phase phase
	// depth is the number of edges between the walk's root and the node.
	depth int
	// leftHeight caches the left child's Height for IsBalanced.
	leftHeight int
}

// walkStack holds the frames of an in-progress walk, deepest last. Walks
// over skewed trees grow this slice instead of the goroutine stack.
type walkStack[T Number] []frame[T]

func (ws *walkStack[T]) push(n *Node[T], depth int) {
	*ws = append(*ws, frame[T]{Node: n, depth: depth})
}

// top returns the deepest frame. The pointer is invalidated by push.
func (ws *walkStack[T]) top() *frame[T] {
	return &(*ws)[len(*ws)-1]
}

func (ws *walkStack[T]) pop() frame[T] {
	f := (*ws)[len(*ws)-1]
	*ws = (*ws)[:len(*ws)-1]
	return f
}

func (ws *walkStack[T]) len() int { return len(*ws) }

func (ws *walkStack[T]) reset() { *ws = (*ws)[:0] }
