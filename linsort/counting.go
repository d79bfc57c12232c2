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
	"math"

	"github.com/pkg/errors"
)

// CountingSort sorts data in place in O(n + range) time using a stable
// counting sort, where range is max − min + 1. Negative values are
// handled by min-shifting. Equal elements keep their relative order.
//
// Returns ErrRangeOverflow when the range does not fit in a slice length.
// Addressable-but-huge ranges allocate accordingly; that memory cost is
// the defining property of the algorithm, not an error.
func CountingSort[T Ints](data []T) error {
	n := len(data)
	if n == 0 {
		return nil
	}

	lo, span, err := keyRange(data)
	if err != nil {
		return err
	}

	counts := make([]int, span)
	for _, v := range data {
		counts[rank(v, lo)]++
	}

	// Cumulative counts: counts[i] becomes the number of elements <= i.
	for i := 1; i < span; i++ {
		counts[i] += counts[i-1]
	}

	// Place from the last input index to the first. Later duplicates claim
	// the higher surviving slot first, which is what keeps the sort stable.
	out := make([]T, n)
	for i := n - 1; i >= 0; i-- {
		r := rank(data[i], lo)
		counts[r]--
		out[counts[r]] = data[i]
	}

	copy(data, out)
	return nil
}

// CountingSortUnstable sorts data in place in O(n + range) time using
// O(range) extra space. The array is rebuilt by emitting each value
// count-many times in increasing value order, so the relative order of
// equal elements is not preserved (for plain integers the results are
// indistinguishable, but the reconstruction discards input order).
//
// Returns ErrRangeOverflow as CountingSort does.
func CountingSortUnstable[T Ints](data []T) error {
	if len(data) == 0 {
		return nil
	}

	lo, span, err := keyRange(data)
	if err != nil {
		return err
	}

	counts := make([]int, span)
	for _, v := range data {
		counts[rank(v, lo)]++
	}

	pos := 0
	for i, c := range counts {
		v := T(int64(lo) + int64(i))
		for ; c > 0; c-- {
			data[pos] = v
			pos++
		}
	}
	return nil
}

// CountingSortFunc stably sorts items in place by the integer key that
// key extracts from each element. Elements with equal keys keep their
// relative order, which makes the stability guarantee of CountingSort
// observable for element types with identity.
//
// key is called exactly once per element. Returns ErrRangeOverflow when
// the key range does not fit in a slice length.
func CountingSortFunc[E any](items []E, key func(E) int) error {
	n := len(items)
	if n == 0 {
		return nil
	}

	keys := make([]int, n)
	lo, hi := key(items[0]), key(items[0])
	keys[0] = lo
	for i := 1; i < n; i++ {
		k := key(items[i])
		keys[i] = k
		if k < lo {
			lo = k
		}
		if k > hi {
			hi = k
		}
	}

	width := uint64(int64(hi)) - uint64(int64(lo))
	if width >= uint64(math.MaxInt) {
		return errors.WithStack(ErrRangeOverflow)
	}
	span := int(width) + 1

	counts := make([]int, span)
	for _, k := range keys {
		counts[k-lo]++
	}
	for i := 1; i < span; i++ {
		counts[i] += counts[i-1]
	}

	out := make([]E, n)
	for i := n - 1; i >= 0; i-- {
		r := keys[i] - lo
		counts[r]--
		out[counts[r]] = items[i]
	}

	copy(items, out)
	return nil
}
