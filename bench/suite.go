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

package bench

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/ajroetker/go-linsort/linsort/workerpool"
)

// Suite runs the six comparison experiments over the five algorithms:
// varying value range, input distributions, scalability, the bucket sort
// worst case, sparse data over a large range, and many duplicates.
type Suite struct {
	// Seed drives all dataset generation; runs with equal seeds measure
	// identical datasets.
	Seed int64
	// Scale multiplies every dataset size. Zero means 1.
	Scale float64
	// Pool parallelizes dataset generation; nil generates sequentially.
	Pool *workerpool.Pool
	// Reporter receives all output.
	Reporter Reporter
}

// Run executes every experiment in order.
func (s *Suite) Run() {
	s.varyingRange()
	s.distributions()
	s.scalability()
	s.bucketWorstCase()
	s.sparseLargeRange()
	s.manyDuplicates()
}

func (s *Suite) size(n int) int {
	if s.Scale > 0 {
		n = int(float64(n) * s.Scale)
	}
	return max(n, 1)
}

func (s *Suite) runCase(label string, data []int) {
	s.Reporter.Case(label)
	for _, alg := range Algorithms() {
		s.Reporter.Result(Measure(alg, data))
	}
}

func (s *Suite) varyingRange() {
	s.Reporter.Section("Varying input range",
		"Counting and pigeonhole sort pay for the value range; radix and bucket sort are far less affected.")
	n := s.size(1000)
	for _, valueRange := range []int{100, 1000, 10000, 100000} {
		data := Generate(s.Pool, Uniform{Max: valueRange}, s.Seed, n)
		s.runCase(fmt.Sprintf("range [0, %s], %s values",
			humanize.Comma(int64(valueRange)), humanize.Comma(int64(n))), data)
	}
}

func (s *Suite) distributions() {
	s.Reporter.Section("Input distributions",
		"Bucket sort favors uniform data; the others are largely distribution-independent.")
	n := s.size(5000)
	sources := []Source{
		Uniform{Max: 1000},
		Normal{Mean: 500, StdDev: 150, Min: 0, Max: 1000},
		Exponential{Label: "skewed", Rate: 0.003, Max: 1000},
		Exponential{Rate: 0.005, Max: 1000},
	}
	for _, src := range sources {
		data := Generate(s.Pool, src, s.Seed, n)
		s.runCase(fmt.Sprintf("%s distribution, %s values",
			src.Name(), humanize.Comma(int64(n))), data)
	}
}

func (s *Suite) scalability() {
	s.Reporter.Section("Scalability",
		"All five algorithms should grow linearly; bucket sort may degrade under poor distribution.")
	for _, n := range []int{1000, 5000, 10000, 20000} {
		n = s.size(n)
		data := Generate(s.Pool, Uniform{Max: 10000}, s.Seed, n)
		s.runCase(fmt.Sprintf("%s values", humanize.Comma(int64(n))), data)
	}
}

func (s *Suite) bucketWorstCase() {
	s.Reporter.Section("Bucket sort worst case",
		"A tiny value range crowds all elements into few buckets, degrading the per-bucket insertion sort.")
	n := s.size(5000)
	data := Generate(s.Pool, Uniform{Max: 10}, s.Seed, n)
	s.runCase(fmt.Sprintf("range [0, 10], %s values", humanize.Comma(int64(n))), data)
}

func (s *Suite) sparseLargeRange() {
	s.Reporter.Section("Sparse data over a large range",
		"Counting and pigeonhole sort allocate range-sized tables here; radix and bucket sort stay lean.")
	n := s.size(5000)
	data := Generate(s.Pool, Uniform{Max: 1000000}, s.Seed, n)
	s.runCase(fmt.Sprintf("range [0, 1,000,000], %s values", humanize.Comma(int64(n))), data)
}

func (s *Suite) manyDuplicates() {
	s.Reporter.Section("Many duplicate values",
		"Ten distinct values; counting and pigeonhole sort excel, stable sorts keep duplicate order.")
	n := s.size(5000)
	data := Generate(s.Pool, Uniform{Max: 9}, s.Seed, n)
	s.runCase(fmt.Sprintf("10 distinct values, %s values", humanize.Comma(int64(n))), data)
}
