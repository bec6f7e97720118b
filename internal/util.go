package internal

// ReconstructPath walks parent links back from current and returns the
// visited nodes in root-to-current order. The root, the first node without a
// parent, is left out; a current node that is itself the root yields nil.
func ReconstructPath[NodeType any](
	current NodeType,
	parentOf func(NodeType) (NodeType, bool),
) []NodeType {
	var path []NodeType
	for {
		previousNode, exists := parentOf(current)
		if !exists {
			break
		}
		path = append(path, current)
		current = previousNode
	}
	Reverse(path)
	return path
}

// Reverse reverses s in place.
func Reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
