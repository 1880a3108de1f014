package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/idelchi/samesize/internal/samesize"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
	// TooDeepPrefix marks a path that was cut at the depth bound.
	TooDeepPrefix = "File too deeply nested in directory: "
)

// PrintText outputs the duplicate groups, one header per size followed by one
// line per path.
func PrintText(result *samesize.Result, writer io.Writer, colorize bool) error {
	header := color.New(color.FgCyan, color.Bold)
	caveat := color.New(color.FgYellow)

	if colorize {
		header.EnableColor()
		caveat.EnableColor()
	} else {
		header.DisableColor()
		caveat.DisableColor()
	}

	for _, group := range result.Report.Groups {
		if _, err := header.Fprintf(writer, "With size %d (%s):",
			group.Size, humanize.IBytes(uint64(group.Size))); err != nil { //nolint:gosec // Sizes are never negative
			return err
		}

		if group.Overflowed {
			if _, err := caveat.Fprintf(writer, " over %d duplicates of this size!", result.Report.Capacity); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintln(writer); err != nil {
			return err
		}

		for _, path := range group.Paths {
			if path.TooDeep {
				if _, err := caveat.Fprint(writer, TooDeepPrefix); err != nil {
					return err
				}
			}

			if _, err := fmt.Fprintln(writer, path.Text); err != nil {
				return err
			}
		}
	}

	return nil
}

// PrintSummary outputs scan statistics in human-readable table format.
//
//nolint:forbidigo // This function prints output to the console.
func PrintSummary(result *samesize.Result, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	overflowed := 0
	for _, group := range result.Report.Groups {
		if group.Overflowed {
			overflowed++
		}
	}

	fmt.Fprintln(w, "\nStats:\t\t")
	fmt.Fprintf(w, "Directories:\t%d\n", result.Walk.Directories)
	fmt.Fprintf(w, "Files seen:\t%d\n", result.Walk.Files)
	fmt.Fprintf(w, "Files indexed:\t%d (%s)\n",
		result.Walk.Indexed, humanize.IBytes(uint64(result.Walk.IndexedBytes))) //nolint:gosec // Bytes is always positive
	fmt.Fprintf(w, "Below %s:\t%d\n",
		humanize.IBytes(uint64(result.Limits.MinSize)), result.Walk.Small) //nolint:gosec // MinSize is validated
	fmt.Fprintf(w, "Distinct sizes:\t%d\n", result.Sizes)
	fmt.Fprintf(w, "Groups reported:\t%d (%d over %d duplicates)\n",
		len(result.Report.Groups), overflowed, result.Report.Capacity)
	fmt.Fprintf(w, "Untracked duplicates:\t%d\n", result.Walk.Dropped)
	fmt.Fprintf(w, "Skipped entries:\t%d\n", result.Walk.Skipped)
	fmt.Fprintf(w, "Errors:\t%d\n", result.Walk.Errors)

	fmt.Fprintf(w, "\nElapsed:\t%v\n", result.Elapsed)

	return w.Flush()
}
