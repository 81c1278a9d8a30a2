package entity

// CategoryTreeKey is the fixed key of the single stored category tree.
const CategoryTreeKey = "default"

// CategoryNode is one node of the category hierarchy. Children nest to any depth.
type CategoryNode struct {
	ID       string         `json:"id"`
	Label    string         `json:"label"`
	Children []CategoryNode `json:"children"`
}

// NormalizeCategoryTree returns a copy of nodes where every Children slice is non-nil,
// so the tree always renders "children": [] rather than null.
func NormalizeCategoryTree(nodes []CategoryNode) []CategoryNode {
	out := make([]CategoryNode, len(nodes))
	for i, node := range nodes {
		out[i] = CategoryNode{
			ID:       node.ID,
			Label:    node.Label,
			Children: NormalizeCategoryTree(node.Children),
		}
	}

	return out
}

// ValidateCategoryTree returns the first node missing an id or label, walking depth first.
func ValidateCategoryTree(nodes []CategoryNode) (CategoryNode, bool) {
	for _, node := range nodes {
		if node.ID == "" || node.Label == "" {
			return node, false
		}
		if bad, ok := ValidateCategoryTree(node.Children); !ok {
			return bad, false
		}
	}

	return CategoryNode{}, true
}
