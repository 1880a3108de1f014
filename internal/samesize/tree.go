package samesize

import "unicode/utf8"

// NodeID addresses a DirectoryNode inside a Tree.
type NodeID int

// NoParent is the parent of the root node.
const NoParent NodeID = -1

// DirectoryNode is one visited directory.
type DirectoryNode struct {
	// Name is the directory's base name, bounded to the tree's name width.
	Name string
	// Parent is the enclosing directory, or NoParent for the root.
	Parent NodeID
}

// Tree is an append-only arena of DirectoryNodes. Nodes are never mutated or
// removed, so a NodeID stays valid for the lifetime of the Tree.
type Tree struct {
	nodes     []DirectoryNode
	nameWidth int
}

// NewTree creates a tree holding only the root node. The root has an empty
// name and is elided from rendered paths.
func NewTree(nameWidth int) *Tree {
	return &Tree{
		nodes:     []DirectoryNode{{Parent: NoParent}},
		nameWidth: nameWidth,
	}
}

// Root returns the ID of the root node.
func (t *Tree) Root() NodeID {
	return 0
}

// Add appends a directory under parent and returns its ID.
func (t *Tree) Add(parent NodeID, name string) NodeID {
	t.nodes = append(t.nodes, DirectoryNode{
		Name:   truncateName(name, t.nameWidth),
		Parent: parent,
	})

	return NodeID(len(t.nodes) - 1)
}

// Node returns the node for id.
func (t *Tree) Node(id NodeID) DirectoryNode {
	return t.nodes[id]
}

// Len returns the number of nodes, root included.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// baseName returns the part of path after the last '/'.
func baseName(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[i+1:]
		}
	}

	return path
}

// truncateName bounds name to width bytes without splitting a UTF-8 sequence.
func truncateName(name string, width int) string {
	if width <= 0 || len(name) <= width {
		return name
	}

	cut := width
	for cut > 0 && !utf8.RuneStart(name[cut]) {
		cut--
	}

	return name[:cut]
}
