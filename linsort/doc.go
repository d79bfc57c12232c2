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

// Package linsort implements linear-time, non-comparison sorting algorithms
// for integer slices, to be compared against each other and against the
// standard library under controlled input distributions.
//
// # Algorithms
//
//   - CountingSort: stable counting sort, O(n + range) time and space
//   - CountingSortUnstable: counting sort with in-place rebuild, O(range)
//     extra space, no stability guarantee
//   - RadixSort / RadixSortBase: stable LSD radix sort over decimal digits
//     (or a caller-chosen base), non-negative values only
//   - PigeonholeSort: value-indexed holes, stable by construction
//   - BucketSort: proportional range partitioning with per-bucket
//     insertion sort, no stability guarantee
//
// All sorts mutate the caller's slice in place; the sorted slice is the
// result. They are pure, deterministic and allocate only for the duration
// of one call, so concurrent calls on disjoint slices are safe.
//
// # Choosing an algorithm
//
// Counting and pigeonhole sort allocate a table proportional to
// max − min + 1 and are only sensible when the value range is small
// relative to the element count. Radix sort depends on digit count
// instead of range. Bucket sort assumes roughly uniform values; heavily
// skewed inputs push most elements into few buckets and degrade the
// per-bucket insertion sort toward O(n²). None of these trade-offs are
// detected at runtime — they are the point of comparing the algorithms.
//
// # Stability
//
// Equal elements of a plain integer slice are indistinguishable, so the
// stable algorithms also come in keyed variants (CountingSortFunc,
// PigeonholeSortFunc, RadixSortFunc) that order arbitrary element types
// by an integer key and preserve the relative order of elements with
// equal keys.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-linsort/linsort"
//
//	func Process(data []int) error {
//	    if err := linsort.RadixSort(data); err != nil {
//	        return err
//	    }
//	    // data is now in non-decreasing order
//	    return nil
//	}
package linsort
