// Package samesize finds groups of files that share an identical byte size.
//
// It walks a directory tree depth-first on a single goroutine, records every
// regular file at or above a size threshold in a bucketed size index, and
// rebuilds each candidate's path from a tree of visited directories once the
// walk has finished. Same size is a heuristic for duplicate content; no file
// contents are read.
package samesize
