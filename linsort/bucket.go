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

import "math/bits"

// BucketSort sorts data in place by partitioning elements into len(data)
// buckets proportionally to their position in [min, max], insertion
// sorting each bucket, and concatenating the buckets in index order.
// Stability is not guaranteed.
//
// Bucket assignment follows (value − min) · (bucketCount − 1) / range,
// clamped to the last bucket; the clamp decides which elements land in
// the boundary bucket and is part of the contract. Skewed or low-range
// inputs crowd few buckets and degrade toward O(n²) — an accepted
// property, not detected or rebalanced.
//
// Never fails: all-identical input (min == max) returns immediately.
func BucketSort[T Ints](data []T) {
	n := len(data)
	if n == 0 {
		return
	}

	lo, hi := data[0], data[0]
	for _, v := range data[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo == hi {
		return
	}

	// range = max − min + 1 in uint64. The full int64 domain wraps the
	// +1 to zero; saturate instead, the clamp absorbs the off-by-one.
	width := uint64(int64(hi)) - uint64(int64(lo)) + 1
	if width == 0 {
		width = ^uint64(0)
	}

	bucketCount := n
	buckets := make([][]T, bucketCount)
	last := uint64(bucketCount - 1)
	for _, v := range data {
		delta := uint64(int64(v)) - uint64(int64(lo))
		// delta · (bucketCount−1) can exceed 64 bits; divide the 128-bit
		// product. delta < width guarantees the quotient fits.
		prodHi, prodLo := bits.Mul64(delta, last)
		idx, _ := bits.Div64(prodHi, prodLo, width)
		if idx > last {
			idx = last
		}
		buckets[idx] = append(buckets[idx], v)
	}

	pos := 0
	for _, b := range buckets {
		insertionSort(b)
		pos += copy(data[pos:], b)
	}
}
