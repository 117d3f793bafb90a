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

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"buf.build/go/symbol/internal/gen"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	var opts gen.Options
	cmd := &cobra.Command{
		Use:   "generate [dir]",
		Short: "Write symbols declared by //symbol: directives to a Go file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Dir = args[0]
			}
			opts.Logger = c.logger

			out, err := gen.Generate(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if out != "" {
				c.logger.Debug("done", zap.String("path", out))
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", gen.DefaultOutput, "name of the generated file")
	cmd.Flags().StringVarP(&opts.Manifest, "manifest", "m", "", "YAML manifest of additional alphabets and symbols")
	return cmd
}
