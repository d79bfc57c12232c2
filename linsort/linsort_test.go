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

package linsort

import (
	"math/rand"
	"slices"
	"testing"
)

// every algorithm behind the same fallible signature, for cross-cutting
// tests
var allAlgorithms = []struct {
	name string
	sort func([]int) error
}{
	{"CountingSort", CountingSort[int]},
	{"CountingSortUnstable", CountingSortUnstable[int]},
	{"RadixSort", RadixSort[int]},
	{"PigeonholeSort", PigeonholeSort[int]},
	{"BucketSort", func(data []int) error { BucketSort(data); return nil }},
}

// sameMultiset reports whether got is a permutation of want.
func sameMultiset(got, want []int) bool {
	if len(got) != len(want) {
		return false
	}
	a := slices.Clone(got)
	b := slices.Clone(want)
	slices.Sort(a)
	slices.Sort(b)
	return slices.Equal(a, b)
}

// TestAllAlgorithmsShowcase runs every algorithm over the demo input.
func TestAllAlgorithmsShowcase(t *testing.T) {
	input := []int{170, 45, 75, 90, 802, 24, 2, 66}
	want := []int{2, 24, 45, 66, 75, 90, 170, 802}

	for _, alg := range allAlgorithms {
		t.Run(alg.name, func(t *testing.T) {
			data := slices.Clone(input)
			if err := alg.sort(data); err != nil {
				t.Fatalf("%s returned error: %v", alg.name, err)
			}
			if !slices.Equal(data, want) {
				t.Errorf("%s = %v, want %v", alg.name, data, want)
			}
		})
	}
}

// TestAllAlgorithmsEmpty verifies empty input is a no-op success.
func TestAllAlgorithmsEmpty(t *testing.T) {
	for _, alg := range allAlgorithms {
		var empty []int
		if err := alg.sort(empty); err != nil {
			t.Errorf("%s(empty) returned error: %v", alg.name, err)
		}
		if len(empty) != 0 {
			t.Errorf("%s(empty) modified the slice", alg.name)
		}
	}
}

// TestAllAlgorithmsSingle verifies single-element input is unchanged.
func TestAllAlgorithmsSingle(t *testing.T) {
	for _, alg := range allAlgorithms {
		data := []int{42}
		if err := alg.sort(data); err != nil {
			t.Errorf("%s([42]) returned error: %v", alg.name, err)
		}
		if data[0] != 42 {
			t.Errorf("%s([42]) = %v, want [42]", alg.name, data)
		}
	}
}

// TestAllAlgorithmsIdempotent verifies sorting sorted input changes nothing.
func TestAllAlgorithmsIdempotent(t *testing.T) {
	sorted := []int{0, 1, 1, 2, 3, 5, 8, 13, 21, 34}
	for _, alg := range allAlgorithms {
		data := slices.Clone(sorted)
		if err := alg.sort(data); err != nil {
			t.Errorf("%s(sorted) returned error: %v", alg.name, err)
			continue
		}
		if !slices.Equal(data, sorted) {
			t.Errorf("%s(sorted) = %v, want %v", alg.name, data, sorted)
		}
	}
}

// TestAllAlgorithmsMatchStdlib cross-checks every algorithm against
// slices.Sort over random data at several sizes.
func TestAllAlgorithmsMatchStdlib(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	sizes := []int{0, 1, 2, 7, 8, 100, 256, 1000, 10000}

	for _, alg := range allAlgorithms {
		for _, n := range sizes {
			data := make([]int, n)
			for i := range data {
				data[i] = rng.Intn(100000)
			}
			want := slices.Clone(data)
			slices.Sort(want)

			if err := alg.sort(data); err != nil {
				t.Errorf("%s(n=%d) returned error: %v", alg.name, n, err)
				continue
			}
			if !slices.Equal(data, want) {
				t.Errorf("%s(n=%d) does not match stdlib sort", alg.name, n)
			}
		}
	}
}

// TestMinShiftingAlgorithmsNegative verifies the min-shifting algorithms
// accept negative values (radix intentionally excluded).
func TestMinShiftingAlgorithmsNegative(t *testing.T) {
	input := []int{5, -3, 0, -17, 42, -3, 5}
	want := slices.Clone(input)
	slices.Sort(want)

	for _, alg := range allAlgorithms {
		if alg.name == "RadixSort" {
			continue
		}
		data := slices.Clone(input)
		if err := alg.sort(data); err != nil {
			t.Errorf("%s(negatives) returned error: %v", alg.name, err)
			continue
		}
		if !slices.Equal(data, want) {
			t.Errorf("%s(negatives) = %v, want %v", alg.name, data, want)
		}
	}
}

// TestAllAlgorithmsManyDuplicates sorts data drawn from only ten values.
func TestAllAlgorithmsManyDuplicates(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	data := make([]int, 5000)
	for i := range data {
		data[i] = rng.Intn(10)
	}

	for _, alg := range allAlgorithms {
		work := slices.Clone(data)
		if err := alg.sort(work); err != nil {
			t.Errorf("%s(duplicates) returned error: %v", alg.name, err)
			continue
		}
		if !IsSorted(work) {
			t.Errorf("%s(duplicates) produced unsorted result", alg.name)
		}
		if !sameMultiset(work, data) {
			t.Errorf("%s(duplicates) lost or invented elements", alg.name)
		}
	}
}
