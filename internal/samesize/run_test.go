package samesize

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pathsOf(group Group) []string {
	out := make([]string, 0, len(group.Paths))
	for _, path := range group.Paths {
		out = append(out, path.Text)
	}

	return out
}

func TestRun_SameSizeAcrossDirectories(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/root/x.bin", 2000)
	writeFile(t, fsys, "/root/sub/y.bin", 2000)
	writeFile(t, fsys, "/root/z.bin", 500)

	result, err := Run(context.Background(), Options{Path: "/root", Fs: fsys}, nil)
	require.NoError(t, err)

	require.Len(t, result.Report.Groups, 1)

	group := result.Report.Groups[0]
	assert.Equal(t, int64(2000), group.Size)
	assert.False(t, group.Overflowed)
	assert.ElementsMatch(t, []string{"/x.bin", "/sub/y.bin"}, pathsOf(group))

	assert.Equal(t, int64(3), result.Walk.Files)
	assert.Equal(t, int64(1), result.Walk.Small)
	assert.Equal(t, 1, result.Sizes)
	assert.Equal(t, "/root", result.Root)
}

func TestRun_SingleFileReportsNothing(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/root/only.bin", 5000)

	result, err := Run(context.Background(), Options{Path: "/root", Fs: fsys}, nil)
	require.NoError(t, err)

	assert.Empty(t, result.Report.Groups)
	assert.Equal(t, 1, result.Sizes)
}

func TestRun_CapacityOverflow(t *testing.T) {
	fsys := afero.NewMemMapFs()

	for i := 0; i < DefaultCapacity+5; i++ {
		writeFile(t, fsys, fmt.Sprintf("/root/f%03d.bin", i), 9000)
	}

	log, logs := observed()

	result, err := Run(context.Background(), Options{Path: "/root", Fs: fsys, Log: log}, nil)
	require.NoError(t, err)

	require.Len(t, result.Report.Groups, 1)

	group := result.Report.Groups[0]
	assert.Equal(t, int64(9000), group.Size)
	assert.True(t, group.Overflowed)
	assert.Len(t, group.Paths, DefaultCapacity)
	assert.Equal(t, DefaultCapacity, result.Report.Capacity)
	assert.Equal(t, int64(5), result.Walk.Dropped)

	assert.Equal(t, 1, logs.FilterMessageSnippet("Too many duplicates").Len())
}

func TestRun_RootIsAFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/root/file.bin", 2048)

	result, err := Run(context.Background(), Options{Path: "/root/file.bin", Fs: fsys}, nil)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, ErrNotDirectory))
	assert.Contains(t, err.Error(), "not a directory")
}

func TestRun_RootMissing(t *testing.T) {
	_, err := Run(context.Background(), Options{Path: "/nowhere", Fs: afero.NewMemMapFs()}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accessing path")
}

func TestRun_EmptyPath(t *testing.T) {
	_, err := Run(context.Background(), Options{Fs: afero.NewMemMapFs()}, nil)
	assert.Error(t, err)
}

func TestRun_InvalidLimits(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/root", 0o755))

	limits := DefaultLimits()
	limits.Buckets = 0

	_, err := Run(context.Background(), Options{Path: "/root", Fs: fsys, Limits: limits}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIndexAllocation))
}

func TestRun_CustomLimits(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/root/a", 100)
	writeFile(t, fsys, "/root/b", 100)
	writeFile(t, fsys, "/root/deep/er/c", 100)

	limits := testLimits()
	limits.MinSize = 100
	limits.MaxDepth = 2

	result, err := Run(context.Background(), Options{Path: "/root/", Fs: fsys, Limits: limits}, nil)
	require.NoError(t, err)

	require.Len(t, result.Report.Groups, 1)

	group := result.Report.Groups[0]
	assert.Len(t, group.Paths, 3)

	tooDeep := 0
	for _, path := range group.Paths {
		if path.TooDeep {
			tooDeep++
			assert.Equal(t, "/er/c", path.Text)
		}
	}

	assert.Equal(t, 1, tooDeep)
	assert.Equal(t, limits, result.Limits)
}

func TestRun_ProgressHookStops(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/root/a", 2048)

	calls := make(chan int64, 1024)
	hook := func(files, _ int64) {
		select {
		case calls <- files:
		default:
		}
	}

	_, err := Run(context.Background(), Options{
		Path:             "/root",
		Fs:               fsys,
		ProgressInterval: time.Millisecond,
	}, hook)
	require.NoError(t, err)

	// The reporter goroutine stops with Run; no further ticks arrive.
	time.Sleep(20 * time.Millisecond)
	drained := len(calls)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, drained, len(calls))
}
