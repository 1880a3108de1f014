package samesize

import (
	"sort"
	"strings"
)

// Path is one rendered duplicate candidate.
type Path struct {
	// Text is the path relative to the scan root, starting with '/'.
	Text string
	// TooDeep means the path had more segments than the depth bound and
	// Text holds only the deepest ones.
	TooDeep bool
}

// Group is one size with more than one candidate.
type Group struct {
	// Size is the shared byte size.
	Size int64
	// Overflowed means more files of this size exist than are listed.
	Overflowed bool
	// Paths lists the tracked candidates in the order they were found.
	Paths []Path
}

// Report is the outcome of a scan, ordered by size ascending.
type Report struct {
	Groups []Group
	// Capacity is the per-size entry bound the index ran with.
	Capacity int
	// MaxDepth is the path segment bound used for rendering.
	MaxDepth int
}

// BuildReport collects every group of index with more than one entry, sorted
// by size, and renders each entry's path from tree. It only reads index and tree.
func BuildReport(index *SizeIndex, tree *Tree, maxDepth int) *Report {
	groups := index.Groups()

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Size < groups[j].Size
	})

	report := &Report{
		Groups:   make([]Group, 0),
		Capacity: index.Capacity(),
		MaxDepth: maxDepth,
	}

	for _, group := range groups {
		if len(group.Entries) < 2 {
			continue
		}

		paths := make([]Path, 0, len(group.Entries))
		for _, entry := range group.Entries {
			paths = append(paths, RenderPath(tree, entry, maxDepth))
		}

		report.Groups = append(report.Groups, Group{
			Size:       group.Size,
			Overflowed: group.Overflowed,
			Paths:      paths,
		})
	}

	return report
}

// RenderPath rebuilds entry's path by following parent links up to the root.
// The root's own name is elided, so a file directly under the root renders as
// "/name". Paths with more than maxDepth segments keep the deepest maxDepth
// and are flagged TooDeep.
func RenderPath(tree *Tree, entry DuplicateEntry, maxDepth int) Path {
	segments := []string{entry.Name}
	tooDeep := false

	for id := entry.Parent; ; {
		node := tree.Node(id)
		if node.Parent == NoParent {
			break
		}

		if len(segments) == maxDepth {
			tooDeep = true

			break
		}

		segments = append(segments, node.Name)
		id = node.Parent
	}

	var b strings.Builder
	for i := len(segments) - 1; i >= 0; i-- {
		b.WriteByte('/')
		b.WriteString(segments[i])
	}

	return Path{Text: b.String(), TooDeep: tooDeep}
}
