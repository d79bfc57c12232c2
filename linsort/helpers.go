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

// IsSorted reports whether data is in non-decreasing order.
func IsSorted[T Ints](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}

// insertionSort sorts data in place. Stable; used for small bucket
// contents where its O(m²) cost beats allocation-heavy alternatives.
func insertionSort[T Ints](data []T) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && data[j] > key {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}

// keyRange scans data once and returns its minimum value and the table
// length max − min + 1. The span is computed in uint64 so that int64
// extremes wrap correctly; spans that cannot be addressed as a slice
// length are rejected rather than handed to make.
func keyRange[T Ints](data []T) (lo T, span int, err error) {
	lo, hi := data[0], data[0]
	for _, v := range data[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	width := uint64(int64(hi)) - uint64(int64(lo))
	if width >= uint64(math.MaxInt) {
		return lo, 0, errors.WithStack(ErrRangeOverflow)
	}
	return lo, int(width) + 1, nil
}

// rank is the table index of v after min-shifting by lo. Computed in
// int64 because v − lo can exceed the element type's own range.
func rank[T Ints](v, lo T) int {
	return int(int64(v) - int64(lo))
}
