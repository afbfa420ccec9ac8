package orgunit

import (
	"github.com/shinkwangchurch/church-admin/go-api-server/internal/model"
)

// Node is an org unit with its recursively nested children.
// 입력 행 순서(sort_order 오름차순)가 형제 순서로 그대로 유지된다.
type Node struct {
	model.OrgUnit
	Children []*Node `json:"children"`
}

// BuildForest converts flat, parent-referencing rows into a rooted forest.
//
// Two passes over the input: the first indexes every unit by id with an empty
// children slice, the second attaches each unit to its parent's children or,
// when the parent id is nil or does not resolve to a fetched unit, to the
// root slice. An unresolved parent (e.g. referencing a deleted unit) demotes
// the unit to an effective root; this is defined behavior, not an error.
// O(n) in the number of units.
func BuildForest(units []model.OrgUnit) []*Node {
	index := make(map[string]*Node, len(units))
	nodes := make([]*Node, 0, len(units))

	for _, unit := range units {
		node := &Node{OrgUnit: unit, Children: []*Node{}}
		index[unit.ID] = node
		nodes = append(nodes, node)
	}

	roots := make([]*Node, 0)
	for _, node := range nodes {
		if node.ParentID != nil {
			if parent, ok := index[*node.ParentID]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}

	return roots
}

// FindNode locates a node by id with a depth-first search: earlier siblings
// and their full subtrees are visited before later siblings. Returns nil
// when the id is absent from the forest.
func FindNode(forest []*Node, id string) *Node {
	for _, node := range forest {
		if node.ID == id {
			return node
		}
		if found := FindNode(node.Children, id); found != nil {
			return found
		}
	}
	return nil
}

// Flatten returns the forest's units in depth-first order.
func Flatten(forest []*Node) []model.OrgUnit {
	units := make([]model.OrgUnit, 0)
	var walk func(nodes []*Node)
	walk = func(nodes []*Node) {
		for _, node := range nodes {
			units = append(units, node.OrgUnit)
			walk(node.Children)
		}
	}
	walk(forest)
	return units
}
