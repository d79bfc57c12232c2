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
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-linsort/bench"
	"github.com/ajroetker/go-linsort/linsort/workerpool"
)

func newSuiteCmd() *cobra.Command {
	var (
		seed    int64
		scale   float64
		workers int
	)

	cmd := &cobra.Command{
		Use:   "suite",
		Short: "Run the full benchmark suite over synthetic datasets",
		Long: `Run six experiments over the five algorithms: varying value range,
input distributions, scalability, the bucket sort worst case, sparse
data over a large range, and many duplicates. Timings are wall-clock
per sort call; every result is verified sorted after measurement.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pool := workerpool.New(workers)
			defer pool.Close()

			s := &bench.Suite{
				Seed:     seed,
				Scale:    scale,
				Pool:     pool,
				Reporter: bench.NewConsoleReporter(cmd.OutOrStdout()),
			}
			s.Run()
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 1, "seed for dataset generation")
	cmd.Flags().Float64Var(&scale, "scale", 1, "multiplier applied to every dataset size")
	cmd.Flags().IntVar(&workers, "workers", 0, "dataset generation workers (0 = GOMAXPROCS)")
	return cmd
}
