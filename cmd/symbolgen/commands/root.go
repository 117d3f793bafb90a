// Copyright 2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package commands implements the symbolgen subcommands.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// CLI is the symbolgen command line.
type CLI struct {
	rootCmd *cobra.Command
	verbose bool
	logger  *zap.Logger
}

// New creates the symbolgen command tree.
func New() *CLI {
	c := &CLI{logger: zap.NewNop()}

	c.rootCmd = &cobra.Command{
		Use:           "symbolgen",
		Short:         "Compute packed string symbols ahead of time",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setupLogger(cmd.ErrOrStderr())
		},
	}
	c.rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log progress to stderr")

	c.rootCmd.AddCommand(c.newGenerateCmd())
	c.rootCmd.AddCommand(c.newEncodeCmd())
	c.rootCmd.AddCommand(c.newDecodeCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	defer func() { _ = c.logger.Sync() }()
	return c.rootCmd.ExecuteContext(ctx)
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects standard output and error. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// setupLogger logs warnings and errors to w, or everything with --verbose.
func (c *CLI) setupLogger(w io.Writer) error {
	level := zapcore.WarnLevel
	if c.verbose {
		level = zapcore.DebugLevel
	}

	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	c.logger = zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.AddSync(w),
		level,
	)).Named("symbolgen")
	return nil
}
