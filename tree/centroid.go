package tree

import "fmt"

// CentroidNodes returns the node or nodes minimizing eccentricity: the
// largest number of branches between the node and any other node. A
// connected tree has one or two such nodes. The result is in insertion
// order and empty for an empty tree.
func (t *Tree) CentroidNodes() []*Node {
	if len(t.nodes) == 0 {
		return nil
	}
	best := -1
	var centroids []*Node
	for _, n := range t.nodes {
		ecc := t.eccentricity(n)
		switch {
		case best < 0 || ecc < best:
			best = ecc
			centroids = append(centroids[:0], n)
		case ecc == best:
			centroids = append(centroids, n)
		}
	}
	return centroids
}

// Centroid returns the first centroid node, or nil for an empty tree.
// It stands in for the root on rootless trees.
func (t *Tree) Centroid() *Node {
	centroids := t.CentroidNodes()
	if len(centroids) == 0 {
		return nil
	}
	return centroids[0]
}

// eccentricity is the branch count of the longest shortest path out of n,
// by breadth-first search.
func (t *Tree) eccentricity(n *Node) int {
	depth := map[*Node]int{n: 0}
	queue := []*Node{n}
	furthest := 0
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, adj := range t.AdjacentNodes(cur) {
			if _, seen := depth[adj]; seen {
				continue
			}
			depth[adj] = depth[cur] + 1
			if depth[adj] > furthest {
				furthest = depth[adj]
			}
			queue = append(queue, adj)
		}
	}
	return furthest
}

// Validate checks the structural invariants of the tree: a designated
// root must be one of the tree's nodes, every branch must join two known
// nodes, and the graph must be connected with exactly one fewer branch
// than nodes. Trees grown with AddRoot and AddNode always pass; Validate
// exists for trees assembled by other means.
func (t *Tree) Validate() error {
	if len(t.nodes) == 0 {
		if t.root != nil {
			return fmt.Errorf("Tree has a root but no nodes.")
		}
		return nil
	}

	known := make(map[*Node]bool, len(t.nodes))
	for _, n := range t.nodes {
		known[n] = true
	}
	if t.root != nil && !known[t.root] {
		return fmt.Errorf("Tree root is not one of its %d nodes.", len(t.nodes))
	}
	for i, br := range t.branches {
		if !known[br.a] || !known[br.b] {
			return fmt.Errorf("Branch %d joins a node outside the tree.", i)
		}
	}
	if len(t.branches) != len(t.nodes)-1 {
		return fmt.Errorf("Tree has %d nodes but %d branches; want %d.",
			len(t.nodes), len(t.branches), len(t.nodes)-1)
	}

	// With branches = nodes-1, reaching every node from the first one
	// rules out both cycles and disconnected pieces.
	seen := map[*Node]bool{t.nodes[0]: true}
	queue := []*Node{t.nodes[0]}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, adj := range t.AdjacentNodes(cur) {
			if !seen[adj] {
				seen[adj] = true
				queue = append(queue, adj)
			}
		}
	}
	if len(seen) != len(t.nodes) {
		return fmt.Errorf("Tree is not connected: reached %d of %d nodes.",
			len(seen), len(t.nodes))
	}
	return nil
}
