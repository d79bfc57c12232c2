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

var (
	// ErrNegativeValue is returned by the radix sorts when the input
	// contains a negative value. Digit extraction on negative integers is
	// undefined here; callers must reject or pre-shift such inputs.
	ErrNegativeValue = errors.New("linsort: radix sort requires non-negative values")

	// ErrRangeOverflow is returned by the counting and pigeonhole sorts
	// when max − min + 1 does not fit in a slice length. Ranges that fit
	// are always attempted, however large; the table allocation is the
	// documented cost of these algorithms.
	ErrRangeOverflow = errors.New("linsort: value range exceeds addressable table size")

	// ErrInvalidBase is returned by RadixSortBase for bases below 2.
	ErrInvalidBase = errors.New("linsort: radix base must be at least 2")
)
