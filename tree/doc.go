/*
Package tree provides the phylogenetic tree structure populated by the
readers and walked by the writers in this repository: an unordered,
connected graph of nodes joined by branches, with at most one node
designated as the root.

Nodes and branches carry small insertion-ordered bags of tagged attribute
values. The core schema uses three well-known keys: "title" for labels,
"distance" for branch lengths and "support" for confidence values. Node
and Branch have typed accessors for these. Metadata annotations from
input files land in the same bags under their own keys.

Trees are built incrementally with AddRoot and AddNode, the way a parser
discovers them. Rootless trees are supported for output purposes: the
centroid node (the one minimizing the maximum branch count to any other
node) stands in for the root.
*/
package tree
