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

import "github.com/pkg/errors"

// RadixSort sorts non-negative integers in place using a stable LSD radix
// sort over decimal digits: one stable counting pass per digit, least
// significant first. O(d·(n + 10)) time for d-digit values, O(n) extra
// space.
//
// Returns ErrNegativeValue, with data untouched, if any value is
// negative.
func RadixSort[T Ints](data []T) error {
	return RadixSortBase(data, 10)
}

// RadixSortBase is RadixSort with a caller-chosen base. Larger bases need
// fewer passes but a larger per-pass counting table; powers of two keep
// the digit extraction cheap. Bases below 2 return ErrInvalidBase.
func RadixSortBase[T Ints](data []T, base int) error {
	if base < 2 {
		return errors.WithStack(ErrInvalidBase)
	}
	if len(data) == 0 {
		return nil
	}

	var maxVal T
	for _, v := range data {
		if v < 0 {
			return errors.WithStack(ErrNegativeValue)
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		// All zeros; nothing to reorder.
		return nil
	}

	// One pass per digit while max still has a digit at the current
	// weight. The next weight is only computed after confirming it cannot
	// exceed max, which also keeps weight from overflowing int64.
	out := make([]T, len(data))
	b := int64(base)
	maxv := int64(maxVal)
	for weight := int64(1); ; weight *= b {
		digitPass(data, out, weight, b)
		if weight > maxv/b {
			break
		}
	}
	return nil
}

// digitPass stably reorders data by the digit (v / weight) % base.
// weight must be a non-negative power of base. After the pass, data is
// sorted by the integer formed by all digits at weights <= weight: the
// pass only discriminates on the new digit and its stability preserves
// the order established by earlier passes.
func digitPass[T Ints](data, out []T, weight, base int64) {
	if len(data) == 0 {
		return
	}

	counts := make([]int, base)
	for _, v := range data {
		counts[(int64(v)/weight)%base]++
	}
	for i := int64(1); i < base; i++ {
		counts[i] += counts[i-1]
	}
	for i := len(data) - 1; i >= 0; i-- {
		d := (int64(data[i]) / weight) % base
		counts[d]--
		out[counts[d]] = data[i]
	}
	copy(data, out)
}

// RadixSortFunc stably sorts items in place by the non-negative integer
// key that key extracts from each element, using decimal digit passes.
// Elements with equal keys keep their relative order.
//
// key is called exactly once per element. Returns ErrNegativeValue, with
// items untouched, if any key is negative.
func RadixSortFunc[E any](items []E, key func(E) int) error {
	n := len(items)
	if n == 0 {
		return nil
	}

	keys := make([]int, n)
	maxKey := 0
	for i, it := range items {
		k := key(it)
		if k < 0 {
			return errors.WithStack(ErrNegativeValue)
		}
		keys[i] = k
		if k > maxKey {
			maxKey = k
		}
	}

	const base = 10
	outItems := make([]E, n)
	outKeys := make([]int, n)
	for weight := 1; ; weight *= base {
		var counts [base]int
		for _, k := range keys {
			counts[(k/weight)%base]++
		}
		for i := 1; i < base; i++ {
			counts[i] += counts[i-1]
		}
		for i := n - 1; i >= 0; i-- {
			d := (keys[i] / weight) % base
			counts[d]--
			outItems[counts[d]] = items[i]
			outKeys[counts[d]] = keys[i]
		}
		copy(items, outItems)
		copy(keys, outKeys)
		if weight > maxKey/base {
			break
		}
	}
	return nil
}
