package samesize

import (
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Walker visits a directory tree depth-first, feeding regular files into a
// SizeIndex and recording every directory it enters in a Tree.
//
// Symbolic links are never followed. A Walker is not safe for concurrent use.
type Walker struct {
	fs      afero.Fs
	index   *SizeIndex
	tree    *Tree
	minSize int64
	log     *zap.SugaredLogger
	count   counters
}

// NewWalker creates a Walker reading from fsys.
func NewWalker(fsys afero.Fs, index *SizeIndex, tree *Tree, minSize int64, log *zap.SugaredLogger) *Walker {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	return &Walker{
		fs:      fsys,
		index:   index,
		tree:    tree,
		minSize: minSize,
		log:     log,
	}
}

// Walk visits every entry of path, which is represented by dir in the tree.
// Failures below path are reported and skipped; Walk itself never fails.
func (w *Walker) Walk(dir NodeID, path string) {
	w.count.directories.Add(1)
	w.log.Debugw("entering directory", "path", path)

	children, err := afero.ReadDir(w.fs, path)
	if err != nil {
		w.count.errors.Add(1)
		w.log.Warnw("Couldn't open dir", "path", path, "error", err)

		return
	}

	for _, child := range children {
		name := child.Name()
		if name == "." || name == ".." {
			continue
		}

		childPath := filepath.Join(path, name)

		switch mode := child.Mode(); {
		case mode.IsRegular():
			w.file(dir, childPath)
		case mode.IsDir():
			w.Walk(w.tree.Add(dir, name), childPath)
		default:
			w.count.skipped.Add(1)
			w.log.Warnw("Unhandled file type", "path", childPath, "mode", mode.Type().String())
		}
	}
}

// Stats returns the counters so far. It may be called while Walk runs.
func (w *Walker) Stats() WalkStats {
	return w.count.snapshot()
}

func (w *Walker) file(dir NodeID, path string) {
	w.count.files.Add(1)

	info, err := w.fs.Stat(path)
	if err != nil {
		w.count.errors.Add(1)
		w.log.Warnw("Bad stat", "path", path, "error", err)

		return
	}

	size := info.Size()
	if size < w.minSize {
		w.count.small.Add(1)
		w.log.Debugw("skipping file (below min size)", "path", path, "size", size)

		return
	}

	switch w.index.Record(dir, path, size) {
	case OutcomeCreated, OutcomeAppended:
		w.count.indexed.Add(1)
		w.count.indexedBytes.Add(size)
	case OutcomeOverflowed, OutcomeDropped:
		w.count.dropped.Add(1)
	}
}
