package samesize

import (
	"errors"
	"fmt"
)

// Defaults for Limits.
const (
	DefaultMinSize       = 1024
	DefaultBuckets       = 1024
	DefaultGroupsPerNode = 16
	DefaultCapacity      = 32
	DefaultMaxDepth      = 64
	DefaultNameWidth     = 255
)

// ErrIndexAllocation is returned when the size index cannot be built from the
// requested limits.
var ErrIndexAllocation = errors.New("cannot allocate size index")

// Limits bounds the size index and path rendering.
type Limits struct {
	// MinSize is the smallest file size, in bytes, that is indexed.
	MinSize int64
	// Buckets is the width of the bucket array.
	Buckets int
	// GroupsPerNode is how many size groups a bucket node holds before chaining.
	GroupsPerNode int
	// Capacity is how many entries a size group tracks.
	Capacity int
	// MaxDepth is the most path segments rendered for one entry.
	MaxDepth int
	// NameWidth is the most bytes stored for one file or directory name.
	NameWidth int
}

// DefaultLimits returns the default limits.
func DefaultLimits() Limits {
	return Limits{
		MinSize:       DefaultMinSize,
		Buckets:       DefaultBuckets,
		GroupsPerNode: DefaultGroupsPerNode,
		Capacity:      DefaultCapacity,
		MaxDepth:      DefaultMaxDepth,
		NameWidth:     DefaultNameWidth,
	}
}

// Validate reports the first limit that cannot back an index.
func (l Limits) Validate() error {
	switch {
	case l.MinSize < 0:
		return fmt.Errorf("%w: min size %d is negative", ErrIndexAllocation, l.MinSize)
	case l.Buckets <= 0:
		return fmt.Errorf("%w: bucket count %d must be positive", ErrIndexAllocation, l.Buckets)
	case l.GroupsPerNode <= 0:
		return fmt.Errorf("%w: groups per node %d must be positive", ErrIndexAllocation, l.GroupsPerNode)
	case l.Capacity <= 0:
		return fmt.Errorf("%w: capacity %d must be positive", ErrIndexAllocation, l.Capacity)
	case l.MaxDepth <= 0:
		return fmt.Errorf("%w: max depth %d must be positive", ErrIndexAllocation, l.MaxDepth)
	case l.NameWidth <= 0:
		return fmt.Errorf("%w: name width %d must be positive", ErrIndexAllocation, l.NameWidth)
	}

	return nil
}
