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

// Package bench generates synthetic integer datasets under named
// distributions, times the linsort algorithms over them, and reports the
// results through an injected Reporter. The sorting algorithms stay pure;
// all randomness, timing and I/O live here.
package bench

import (
	"time"

	"github.com/pkg/errors"

	"github.com/ajroetker/go-linsort/linsort"
)

// Algorithm pairs a display name with a sort entry point over []int.
type Algorithm struct {
	Name string
	Sort func([]int) error
}

// Algorithms returns the five algorithms under comparison, in report
// order.
func Algorithms() []Algorithm {
	return []Algorithm{
		{Name: "Counting Sort (Stable)", Sort: linsort.CountingSort[int]},
		{Name: "Counting Sort (Unstable)", Sort: linsort.CountingSortUnstable[int]},
		{Name: "Radix Sort (LSD)", Sort: linsort.RadixSort[int]},
		{Name: "Pigeonhole Sort", Sort: linsort.PigeonholeSort[int]},
		{Name: "Bucket Sort", Sort: func(data []int) error {
			linsort.BucketSort(data)
			return nil
		}},
	}
}

// Result is one timed sort call.
type Result struct {
	Algorithm string
	N         int
	Elapsed   time.Duration
	Err       error
}

// Measure times alg over a private copy of data, then verifies the
// output is sorted. Verification runs outside the timed window. The
// caller's data is never mutated.
func Measure(alg Algorithm, data []int) Result {
	work := make([]int, len(data))
	copy(work, data)

	start := time.Now()
	err := alg.Sort(work)
	elapsed := time.Since(start)

	if err != nil {
		err = errors.Wrap(err, alg.Name)
	} else if !linsort.IsSorted(work) {
		err = errors.Errorf("%s produced an unsorted result", alg.Name)
	}

	return Result{Algorithm: alg.Name, N: len(data), Elapsed: elapsed, Err: err}
}
