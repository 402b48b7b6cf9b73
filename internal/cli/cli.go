// Package cli implements the tablr command line interface.
package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/bjaus/tablr"
	"github.com/bjaus/tablr/internal/config"
	"github.com/bjaus/tablr/internal/logging"
)

// version is set at build time via -ldflags.
var version = "unknown version"

// Swappable for tests.
var (
	stdinIsPiped = func() bool {
		stat, err := os.Stdin.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) == 0
	}
	termGetSize = term.GetSize
)

// Execute runs the root command and returns its error.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the tablr command: read records from a file or a
// pipe, render them on stdout as ASCII tables sized to the terminal.
func NewRootCommand() *cobra.Command {
	var (
		repeat     []string
		width      int
		inputName  string
		configPath string
		debug      bool
	)

	cmd := &cobra.Command{
		Use:   "tablr [file]",
		Short: "Render structured records as width-aware ASCII tables",
		Long: `tablr reads records from JSON, JSONL, YAML, or CSV input and renders
them as bordered ASCII tables. Columns keep their input order and size
themselves to their content; numeric columns are right-aligned. When the
columns do not fit the terminal, the table is split into several blocks,
each repeating the key columns so rows stay identifiable.`,
		Example: "\n  tablr servers.json\n  docker ps --format json | tablr -r Names\n  tablr --input csv --width 120 report.csv\n",
		Args:    cobra.MaximumNArgs(1),
		Version: version,

		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.New(debug)
			defer logging.Sync()

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			applyConfig(cmd.Flags(), cfg, &width, &inputName, &repeat)

			data, source, ok, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			if !ok {
				return cmd.Help()
			}
			log.Info("read input", "source", source, "bytes", len(data))

			format, err := tablr.ParseFormat(inputName)
			if err != nil {
				return err
			}
			records, err := tablr.Decode(bytes.NewReader(data), format)
			if err != nil {
				return fmt.Errorf("decode %s input: %w", format, err)
			}

			if width <= 0 {
				width = detectWidth()
			}
			log.Info("rendering", "format", format.String(), "records", len(records), "width", width)

			return tablr.Write(cmd.OutOrStdout(), records,
				tablr.WithWidth(width),
				tablr.WithRepeatColumns(repeat...),
			)
		},
	}

	cmd.SetVersionTemplate(`{{.Version}}` + "\n")
	cmd.Flags().StringSliceVarP(&repeat, "repeat", "r", nil, "columns repeated at the start of every block after the first")
	cmd.Flags().IntVarP(&width, "width", "w", 0, "output width in columns (default: terminal width)")
	cmd.Flags().StringVarP(&inputName, "input", "i", tablr.Auto.String(), "input format: auto, json, jsonl, yaml, or csv")
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default: tablr/config.toml in the user config dir)")
	cmd.Flags().BoolVar(&debug, "debug", false, "log diagnostics as JSON to stderr")
	return cmd
}

// applyConfig fills flag targets from the config file for flags the user
// did not set on the command line.
func applyConfig(flags *pflag.FlagSet, cfg config.Config, width *int, input *string, repeat *[]string) {
	if !flags.Changed("width") && cfg.Width > 0 {
		*width = cfg.Width
	}
	if !flags.Changed("input") && cfg.Input != "" {
		*input = cfg.Input
	}
	if !flags.Changed("repeat") && len(cfg.Repeat) > 0 {
		*repeat = cfg.Repeat
	}
}

// readInput returns the raw input bytes and a label for logging. ok is
// false when there is no file argument and nothing piped on stdin.
func readInput(cmd *cobra.Command, args []string) (data []byte, source string, ok bool, err error) {
	if len(args) > 0 {
		data, err = os.ReadFile(args[0])
		if err != nil {
			return nil, "", false, fmt.Errorf("read input: %w", err)
		}
		return data, args[0], true, nil
	}
	if !stdinIsPiped() {
		return nil, "", false, nil
	}
	data, err = io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, "", false, fmt.Errorf("read stdin: %w", err)
	}
	return data, "stdin", true, nil
}

// detectWidth returns the best-effort terminal width by probing stdout,
// stderr, and stdin, then falling back to $COLUMNS, then to the package
// default.
func detectWidth() int {
	fds := []uintptr{os.Stdout.Fd(), os.Stderr.Fd(), os.Stdin.Fd()}
	for _, fd := range fds {
		if w, _, err := termGetSize(int(fd)); err == nil && w > 0 {
			return w
		}
	}
	if col := os.Getenv("COLUMNS"); col != "" {
		if w, err := strconv.Atoi(col); err == nil && w > 0 {
			return w
		}
	}
	return tablr.DefaultWidth
}
