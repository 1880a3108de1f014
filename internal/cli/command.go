package cli

import (
	"fmt"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/idelchi/samesize/internal/integration"
	"github.com/idelchi/samesize/internal/samesize"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// flagValues holds raw flag input that needs parsing before it lands in Options.
type flagValues struct {
	minSize string
}

// bindFlags registers every flag on flags.
func bindFlags(flags *pflag.FlagSet, options *samesize.Options, raw *flagValues) {
	defaults := samesize.DefaultLimits()

	flags.StringVar(&raw.minSize, "min-size", humanize.IBytes(uint64(defaults.MinSize)),
		"Minimum file size to consider (e.g., 1KiB, 4MB)")
	flags.IntVar(&options.Limits.Capacity, "max-dups", defaults.Capacity,
		"Number of duplicates tracked per size")
	flags.IntVar(&options.Limits.MaxDepth, "max-depth", defaults.MaxDepth,
		"Maximum number of path segments rendered per file")
	flags.IntVar(&options.Limits.Buckets, "buckets", defaults.Buckets,
		"Number of size index buckets")
	flags.BoolVar(&options.Debug, "debug", false, "Enable debug output")
	flags.BoolVar(&options.Summary, "summary", false, "Print scan statistics after the report")
	flags.BoolVar(&options.NoProgress, "no-progress", false, "Disable the progress line on stderr")
	flags.StringVar(&options.Color, "color", "auto", "Colorize output: auto, always or never")
	flags.BoolVarP(&options.Version, "version", "v", false, "Show version and exit")
	flags.BoolVarP(&options.Integration, "init", "i", false, "Output init script for shell usage")

	flags.SortFlags = false
}

// Command builds the root command.
func (c CLI) Command() *cobra.Command {
	var (
		options samesize.Options
		raw     flagValues
	)

	allowedColors := []string{"auto", "always", "never"}

	cmd := &cobra.Command{
		Use:   "samesize [flags] <path>",
		Short: "Report groups of files that share an identical size",
		Long: heredoc.Doc(`
			samesize walks a directory tree and reports groups of regular files
			that have exactly the same size in bytes, as candidates for duplicates.

			File contents are never read: two files of equal size are reported
			together whether or not their bytes match. Files smaller than
			--min-size are ignored, symbolic links are not followed.

			Each group is printed as a header with the shared size followed by
			one line per file, relative to the scanned directory. When more than
			--max-dups files share a size, only the first ones are listed and the
			header says so.

			The '-i' flag prints a zsh function that pipes the reported paths
			into 'fzf' for interactive browsing.
		`),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if options.Version || options.Integration {
				return nil
			}

			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if options.Version {
				fmt.Fprintln(cmd.OutOrStdout(), c.version)

				return nil
			}

			if options.Integration {
				rendered, err := integration.Render()
				if err != nil {
					return fmt.Errorf("rendering integration script: %w", err)
				}

				fmt.Fprintln(cmd.OutOrStdout(), rendered)

				return nil
			}

			if !slices.Contains(allowedColors, options.Color) {
				return fmt.Errorf("invalid color mode %q: must be one of %v", options.Color, allowedColors)
			}

			if raw.minSize != "" {
				size, err := humanize.ParseBytes(raw.minSize)
				if err != nil {
					return fmt.Errorf("invalid min-size: %w", err)
				}

				options.Limits.MinSize = int64(size) //nolint:gosec // Size conversion from humanize is safe
			}

			options.Path = args[0]

			return logic(cmd, options)
		},
	}

	defaults := samesize.DefaultLimits()
	options.Limits.GroupsPerNode = defaults.GroupsPerNode
	options.Limits.NameWidth = defaults.NameWidth

	bindFlags(cmd.Flags(), &options, &raw)

	return cmd
}

// Execute runs the CLI with the process arguments.
func (c CLI) Execute() error {
	return c.Command().Execute()
}
