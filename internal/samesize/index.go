package samesize

import (
	"fmt"

	"go.uber.org/zap"
)

// DuplicateEntry is one file recorded in a SizeGroup.
type DuplicateEntry struct {
	// Name is the file's base name, bounded to the index's name width.
	Name string
	// Parent is the directory holding the file.
	Parent NodeID
}

// SizeGroup is every tracked file of one size.
type SizeGroup struct {
	// Size is the shared byte size.
	Size int64
	// Entries holds at most the index capacity, in insertion order.
	Entries []DuplicateEntry
	// Overflowed is set once a file of this size was dropped for lack of room.
	Overflowed bool
}

// Outcome describes what Record did with a file.
type Outcome int

const (
	// OutcomeCreated means the file started a new group.
	OutcomeCreated Outcome = iota
	// OutcomeAppended means the file joined an existing group.
	OutcomeAppended
	// OutcomeOverflowed means the group was full and is now flagged.
	OutcomeOverflowed
	// OutcomeDropped means the group was already flagged and the file was ignored.
	OutcomeDropped
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeAppended:
		return "appended"
	case OutcomeOverflowed:
		return "overflowed"
	case OutcomeDropped:
		return "dropped"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// bucketNode holds up to groupsPerNode groups and links to the next node of
// the same bucket once full.
type bucketNode struct {
	groups []SizeGroup
	next   *bucketNode
}

// SizeIndex maps a file size to its SizeGroup. Sizes hash to a fixed number of
// buckets; each bucket is a chain of fixed-width nodes. At most one group
// exists per size.
//
// A SizeIndex is not safe for concurrent use. It is written by one walk and
// read afterwards.
type SizeIndex struct {
	buckets       []bucketNode
	groupsPerNode int
	capacity      int
	nameWidth     int
	groups        int
	log           *zap.SugaredLogger
}

// NewSizeIndex allocates an index for limits. Diagnostics go to log.
func NewSizeIndex(limits Limits, log *zap.SugaredLogger) (*SizeIndex, error) {
	if err := limits.Validate(); err != nil {
		return nil, err
	}

	if log == nil {
		log = zap.NewNop().Sugar()
	}

	return &SizeIndex{
		buckets:       make([]bucketNode, limits.Buckets),
		groupsPerNode: limits.GroupsPerNode,
		capacity:      limits.Capacity,
		nameWidth:     limits.NameWidth,
		log:           log,
	}, nil
}

// Record registers one file of size under parent. The base name is taken from
// path and truncated to the name width.
func (x *SizeIndex) Record(parent NodeID, path string, size int64) Outcome {
	node := &x.buckets[x.bucket(size)]

	for {
		for i := range node.groups {
			group := &node.groups[i]
			if group.Size != size {
				continue
			}

			if len(group.Entries) == x.capacity {
				if group.Overflowed {
					return OutcomeDropped
				}

				x.log.Warnw(fmt.Sprintf("Too many duplicates of size %d", size), "size", size, "capacity", x.capacity)
				group.Overflowed = true

				return OutcomeOverflowed
			}

			group.Entries = append(group.Entries, x.entry(parent, path))

			return OutcomeAppended
		}

		if node.next == nil {
			break
		}

		node = node.next
	}

	if len(node.groups) == x.groupsPerNode {
		node.next = &bucketNode{}
		node = node.next
	}

	if node.groups == nil {
		node.groups = make([]SizeGroup, 0, x.groupsPerNode)
	}

	node.groups = append(node.groups, SizeGroup{
		Size:    size,
		Entries: []DuplicateEntry{x.entry(parent, path)},
	})
	x.groups++

	return OutcomeCreated
}

// Lookup returns the group for size, if any.
func (x *SizeIndex) Lookup(size int64) (*SizeGroup, bool) {
	for node := &x.buckets[x.bucket(size)]; node != nil; node = node.next {
		for i := range node.groups {
			if node.groups[i].Size == size {
				return &node.groups[i], true
			}
		}
	}

	return nil, false
}

// Groups returns every group in bucket order, then chain order.
func (x *SizeIndex) Groups() []*SizeGroup {
	out := make([]*SizeGroup, 0, x.groups)

	for b := range x.buckets {
		for node := &x.buckets[b]; node != nil; node = node.next {
			for i := range node.groups {
				out = append(out, &node.groups[i])
			}
		}
	}

	return out
}

// Len returns the number of distinct sizes recorded.
func (x *SizeIndex) Len() int {
	return x.groups
}

// Capacity returns the most entries a group tracks.
func (x *SizeIndex) Capacity() int {
	return x.capacity
}

// chainLength returns the number of nodes in the bucket for size.
func (x *SizeIndex) chainLength(size int64) int {
	n := 0
	for node := &x.buckets[x.bucket(size)]; node != nil; node = node.next {
		n++
	}

	return n
}

func (x *SizeIndex) bucket(size int64) int {
	return int(uint64(size) % uint64(len(x.buckets))) //nolint:gosec // sizes are non-negative
}

func (x *SizeIndex) entry(parent NodeID, path string) DuplicateEntry {
	return DuplicateEntry{
		Name:   truncateName(baseName(path), x.nameWidth),
		Parent: parent,
	}
}
