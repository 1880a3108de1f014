package samesize

import (
	"sync/atomic"
	"time"
)

// WalkStats summarises one walk.
type WalkStats struct {
	// Directories is the number of directories entered, root included.
	Directories int64
	// Files is the number of regular files seen.
	Files int64
	// Indexed is the number of files recorded in the size index.
	Indexed int64
	// IndexedBytes is the cumulative size of indexed files.
	IndexedBytes int64
	// Small is the number of files below the size threshold.
	Small int64
	// Dropped is the number of files left out of a full size group.
	Dropped int64
	// Skipped is the number of entries that were neither files nor directories.
	Skipped int64
	// Errors is the number of directories or files that could not be read.
	Errors int64
}

// counters are written by the walk and read by the progress reporter.
type counters struct {
	directories  atomic.Int64
	files        atomic.Int64
	indexed      atomic.Int64
	indexedBytes atomic.Int64
	small        atomic.Int64
	dropped      atomic.Int64
	skipped      atomic.Int64
	errors       atomic.Int64
}

func (c *counters) snapshot() WalkStats {
	return WalkStats{
		Directories:  c.directories.Load(),
		Files:        c.files.Load(),
		Indexed:      c.indexed.Load(),
		IndexedBytes: c.indexedBytes.Load(),
		Small:        c.small.Load(),
		Dropped:      c.dropped.Load(),
		Skipped:      c.skipped.Load(),
		Errors:       c.errors.Load(),
	}
}

// Result is everything a scan produced.
type Result struct {
	// Root is the scanned directory as given.
	Root string
	// Report holds the duplicate candidates.
	Report *Report
	// Walk summarises the traversal.
	Walk WalkStats
	// Sizes is the number of distinct sizes indexed.
	Sizes int
	// Limits are the bounds the scan ran with.
	Limits Limits
	// Elapsed is the total time taken.
	Elapsed time.Duration
}
