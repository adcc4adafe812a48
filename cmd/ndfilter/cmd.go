package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-nd/nd/outofbounds"
)

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "ndfilter",
		Short:         "Run N-dimensional local operators over synthetic images",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.AddCommand(newRunCmd(stdout, stderr), newListCmd(stdout))
	return root
}

func newRunCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		path    string
		verbose bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the pipeline described by a YAML file",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			f, err := os.Open(path)
			if err != nil {
				return reportError(stderr, err)
			}
			defer f.Close()

			p, err := decodePipeline(f)
			if err != nil {
				return reportError(stderr, fmt.Errorf("%s: %w", path, err))
			}

			rows, runErr := p.Run(newLogger(stderr, verbose))
			if err := printReport(stdout, rows); err != nil {
				return reportError(stderr, err)
			}
			if runErr != nil {
				return reportError(stderr, runErr)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "config", "c", "", "pipeline description (YAML)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every operator at debug level")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func newListCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stages, inputs and out-of-bounds strategies",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return printList(stdout)
		},
	}
}

func printList(w io.Writer) error {
	sections := []struct {
		title string
		names []string
	}{
		{"stages", lo.Map(stageRegistry, func(e stageEntry, _ int) string {
			return fmt.Sprintf("%-10s %s", e.name, e.help)
		})},
		{"inputs", inputKinds()},
		{"out-of-bounds", lo.Map(outofbounds.Strategies(), func(s outofbounds.Strategy, _ int) string {
			return s.String()
		})},
	}
	for _, s := range sections {
		if _, err := fmt.Fprintf(w, "%s:\n  %s\n", s.title, strings.Join(s.names, "\n  ")); err != nil {
			return err
		}
	}
	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func reportError(w io.Writer, err error) error {
	_, _ = fmt.Fprintf(w, "error: %v\n", err)
	return err
}
