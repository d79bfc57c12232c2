// Copyright 2026 go-linsort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"slices"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-linsort/bench"
)

// demoInput is the showcase array every algorithm sorts in the demo.
var demoInput = []int{170, 45, 75, 90, 802, 24, 2, 66}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run every algorithm over a small showcase array",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			heading := color.New(color.FgCyan, color.Bold)

			for _, alg := range bench.Algorithms() {
				data := slices.Clone(demoInput)

				heading.Fprintln(out, alg.Name)
				fmt.Fprintf(out, "  original: %s\n", bench.FormatValues(demoInput, 20))
				if err := alg.Sort(data); err != nil {
					return errors.Wrap(err, alg.Name)
				}
				fmt.Fprintf(out, "  sorted:   %s\n\n", bench.FormatValues(data, 20))
			}
			return nil
		},
	}
}
