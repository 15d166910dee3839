package main

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/jonathan/syllabify/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// executeCommand runs the root command in-process with args and returns
// what it wrote to stdout.
func executeCommand(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()
	resetCommandState(rootCmd)
	t.Cleanup(func() { resetCommandState(rootCmd) })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	if stdin != nil {
		rootCmd.SetIn(stdin)
	}
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

// resetCommandState restores flag defaults and package state between runs.
func resetCommandState(cmd *cobra.Command) {
	appConfig = config.Config{}
	logger = zap.NewNop()
	cmd.SetIn(nil)

	var reset func(c *cobra.Command)
	reset = func(c *cobra.Command) {
		for _, fs := range []*pflag.FlagSet{c.Flags(), c.PersistentFlags()} {
			fs.VisitAll(func(f *pflag.Flag) {
				_ = f.Value.Set(f.DefValue)
				f.Changed = false
			})
		}
		for _, sub := range c.Commands() {
			reset(sub)
		}
	}
	reset(cmd)
}
