// Package main provides the omnifetch command-line tool for displaying OmniOS
// system information next to the OmniOS phoenix logo.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kris-nova/logger"
	"github.com/spf13/cobra"

	"omnifetch/ascii"
	"omnifetch/config"
	"omnifetch/display"
	"omnifetch/sysinfo"
)

// Version is set by ldflags at build time.
var Version = "0.1.0"

// main is the entry point for the omnifetch application.
// Any failure is reported once on stderr and nothing is printed on stdout.
func main() {
	if err := execute(newRootCmd()); err != nil {
		os.Exit(1)
	}
}

// execute runs cmd and reports a failure through the logger. Logging is set
// up first so that errors cobra raises before RunE, such as a rejected
// argument, still go to stderr.
func execute(cmd *cobra.Command) error {
	setupLogging(os.Getenv("OMNIFETCH_DEBUG") != "")
	err := cmd.Execute()
	if err != nil {
		logger.Critical("%v", err)
	}
	return err
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "omnifetch",
		Short:         "Print information about an OmniOS machine",
		Args:          cobra.NoArgs,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

// setupLogging sends log output to stderr, keeping stdout for the report.
func setupLogging(debug bool) {
	logger.Writer = os.Stderr
	if debug {
		logger.BitwiseLevel = logger.LogEverything
		return
	}
	logger.BitwiseLevel = logger.LogCritical | logger.LogWarning
}

// run collects every fact and prints the report to w.
//
// Collection happens before anything is written, so a failing probe leaves
// w untouched.
func run(ctx context.Context, w io.Writer) error {
	path := config.DefaultPath()
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	setupLogging(cfg.Debug)
	logger.Debug("config: %s (release file %s)", path, cfg.ReleaseFile)

	user, err := sysinfo.Username()
	if err != nil {
		return err
	}
	host, err := sysinfo.Hostname()
	if err != nil {
		return err
	}

	facts, err := sysinfo.NewCollector(cfg.ReleaseFile).Collect(ctx)
	if err != nil {
		return err
	}

	c := display.Colorizer{Enabled: display.ShouldColorize()}
	lines := display.Render(c, user, host, facts, ascii.Fenix(), ascii.OmniOS())
	return printLines(w, lines)
}

func printLines(w io.Writer, lines []string) error {
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}
