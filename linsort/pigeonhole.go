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

// PigeonholeSort sorts data in place by appending each element to the
// hole indexed by value − min in a single forward pass, then
// concatenating the holes in index order. Holes receive elements in
// input order and are never reordered, so the sort is stable by
// construction. O(n + range) time and space; best when the value range
// is small relative to n.
//
// Returns ErrRangeOverflow when the range does not fit in a slice length.
func PigeonholeSort[T Ints](data []T) error {
	if len(data) == 0 {
		return nil
	}

	lo, span, err := keyRange(data)
	if err != nil {
		return err
	}

	holes := make([][]T, span)
	for _, v := range data {
		r := rank(v, lo)
		holes[r] = append(holes[r], v)
	}

	pos := 0
	for _, hole := range holes {
		pos += copy(data[pos:], hole)
	}
	return nil
}

// PigeonholeSortFunc stably sorts items in place by the integer key that
// key extracts from each element, using one hole per distinct key value.
// Elements with equal keys keep their relative order.
//
// key is called exactly once per element. Returns ErrRangeOverflow when
// the key range does not fit in a slice length.
func PigeonholeSortFunc[E any](items []E, key func(E) int) error {
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

	holes := make([][]E, int(width)+1)
	for i, it := range items {
		r := keys[i] - lo
		holes[r] = append(holes[r], it)
	}

	pos := 0
	for _, hole := range holes {
		pos += copy(items[pos:], hole)
	}
	return nil
}
