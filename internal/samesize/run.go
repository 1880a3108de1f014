package samesize

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// ErrNotDirectory is returned when the scan root is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// Options configures a scan and CLI behavior.
type Options struct {
	// Path is the directory to scan.
	Path string
	// Limits bounds the index and path rendering. The zero value means DefaultLimits.
	Limits Limits
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
	// Fs is the filesystem to scan. Nil means the host filesystem.
	Fs afero.Fs
	// Log receives diagnostics. Nil discards them.
	Log *zap.SugaredLogger
	// Debug indicates whether debug diagnostics are enabled.
	Debug bool
	// Summary indicates whether to print scan statistics after the report.
	Summary bool
	// NoProgress disables the progress line.
	NoProgress bool
	// Color is auto, always or never.
	Color string
	// Version indicates whether to show version and exit.
	Version bool
	// Integration indicates whether to output the integration script.
	Integration bool
}

// startProgressReporter invokes hook(files, bytes) on each tick until ctx is done.
func startProgressReporter(ctx context.Context, w *Walker, hook func(int64, int64), interval time.Duration) {
	if hook == nil {
		return
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				stats := w.Stats()
				hook(stats.Indexed, stats.IndexedBytes)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Run scans opt.Path and returns the groups of same-size files found.
//
// Only an inaccessible root, a root that is not a directory, or limits that
// cannot back an index fail the run. Problems below the root are reported
// through opt.Log and counted in Result.Walk.
//
// Progress updates are sent to progressHook if provided; ctx bounds the
// progress reporter only, the walk always runs to completion.
func Run(ctx context.Context, opt Options, progressHook func(int64, int64)) (*Result, error) {
	if opt.Fs == nil {
		opt.Fs = afero.NewOsFs()
	}

	if opt.Log == nil {
		opt.Log = zap.NewNop().Sugar()
	}

	if opt.Limits == (Limits{}) {
		opt.Limits = DefaultLimits()
	}

	if opt.Path == "" {
		return nil, errors.New("no path given")
	}

	opt.Path = filepath.Clean(opt.Path)

	if info, err := opt.Fs.Stat(opt.Path); err != nil {
		return nil, fmt.Errorf("accessing path %q: %w", opt.Path, err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("path %q: %w", opt.Path, ErrNotDirectory)
	}

	index, err := NewSizeIndex(opt.Limits, opt.Log)
	if err != nil {
		return nil, err
	}

	opt.Log.Debugw("limits",
		"min_size", opt.Limits.MinSize,
		"buckets", opt.Limits.Buckets,
		"groups_per_node", opt.Limits.GroupsPerNode,
		"capacity", opt.Limits.Capacity,
		"max_depth", opt.Limits.MaxDepth,
		"name_width", opt.Limits.NameWidth,
	)

	tree := NewTree(opt.Limits.NameWidth)
	walker := NewWalker(opt.Fs, index, tree, opt.Limits.MinSize, opt.Log)

	// Create child context to ensure progress reporter cleanup
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	startProgressReporter(ctx, walker, progressHook, opt.ProgressInterval)

	start := time.Now()

	walker.Walk(tree.Root(), opt.Path)

	cancel()

	return &Result{
		Root:    opt.Path,
		Report:  BuildReport(index, tree, opt.Limits.MaxDepth),
		Walk:    walker.Stats(),
		Sizes:   index.Len(),
		Limits:  opt.Limits,
		Elapsed: time.Since(start),
	}, nil
}
