// Command wordfreq counts word occurrences in text files.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/theflywheel/containers"
)

var (
	top      int
	sep      string
	hashName string
	verbose  bool

	rootCmd = &cobra.Command{
		Use:          "wordfreq [files...]",
		Short:        "count word occurrences in text files",
		Long:         "wordfreq reads each file (or stdin when none is given), splits it into records and words, and prints the most frequent words.",
		SilenceUsage: true,
		RunE:         run,
	}
)

func init() {
	flags := rootCmd.Flags()
	flags.IntVarP(&top, "top", "n", 10, "number of words to print (0 prints all)")
	flags.StringVarP(&sep, "sep", "s", "", "record separator (default: newline)")
	flags.StringVar(&hashName, "hash", "fnv", "hash function for the word table: fnv or xxhash")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log table growth")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
	}))
}

func run(cmd *cobra.Command, args []string) error {
	logger := newLogger(verbose)

	hash, err := hashFunc(hashName)
	if err != nil {
		return err
	}

	c, err := newCounter(hash, sep, containers.WithLogger(logger))
	if err != nil {
		return err
	}
	defer c.Free()

	var errs *multierror.Error
	if len(args) == 0 {
		text, err := containers.ReadTextFrom(cmd.InOrStdin())
		if err != nil {
			return err
		}
		c.Add(text)
	}
	for _, path := range args {
		text, err := containers.ReadText(path)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		c.Add(text)
		logger.Debug("counted file", "path", path, "bytes", text.Len(), "distinct", c.Distinct())
	}

	out := cmd.OutOrStdout()
	for _, wc := range c.Top(top) {
		fmt.Fprintf(out, "%7d %s\n", wc.Count, wc.Word)
	}

	return errs.ErrorOrNil()
}
