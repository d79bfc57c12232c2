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
	"math/rand"

	"github.com/ajroetker/go-linsort/linsort/workerpool"
)

// Source describes a value distribution for synthetic datasets.
type Source interface {
	// Name identifies the distribution in reports.
	Name() string
	// Draw overwrites dst with values drawn from r.
	Draw(r *rand.Rand, dst []int)
}

// Uniform draws integers uniformly from [0, Max].
type Uniform struct {
	Max int
}

func (Uniform) Name() string { return "uniform" }

func (u Uniform) Draw(r *rand.Rand, dst []int) {
	for i := range dst {
		dst[i] = r.Intn(u.Max + 1)
	}
}

// Normal draws integers from a normal distribution with the given mean
// and standard deviation, clamped to [Min, Max].
type Normal struct {
	Mean   float64
	StdDev float64
	Min    int
	Max    int
}

func (Normal) Name() string { return "normal" }

func (n Normal) Draw(r *rand.Rand, dst []int) {
	for i := range dst {
		v := int(r.NormFloat64()*n.StdDev + n.Mean)
		dst[i] = min(max(v, n.Min), n.Max)
	}
}

// Exponential draws integers from an exponential distribution with the
// given rate (mean 1/Rate), truncated at Max. Right-skewed: most values
// are small. The suite reports it under Label when set, so the same
// source serves both its "skewed" and "exponential" cases.
type Exponential struct {
	Label string
	Rate  float64
	Max   int
}

func (e Exponential) Name() string {
	if e.Label != "" {
		return e.Label
	}
	return "exponential"
}

func (e Exponential) Draw(r *rand.Rand, dst []int) {
	for i := range dst {
		dst[i] = min(int(r.ExpFloat64()/e.Rate), e.Max)
	}
}

// generation chunk size; one stream (and one atomic grab) per chunk
const chunkSize = 4096

// Generate materializes n values from src. Chunks draw from independent
// seed-derived streams, so the output depends only on seed and n — never
// on worker count or scheduling. pool may be nil to generate on the
// calling goroutine.
func Generate(pool *workerpool.Pool, src Source, seed int64, n int) []int {
	data := make([]int, n)
	chunks := (n + chunkSize - 1) / chunkSize

	fill := func(c int) {
		start := c * chunkSize
		end := min(start+chunkSize, n)
		r := rand.New(rand.NewSource(chunkSeed(seed, c)))
		src.Draw(r, data[start:end])
	}

	if pool == nil {
		for c := 0; c < chunks; c++ {
			fill(c)
		}
		return data
	}
	pool.ParallelForAtomic(chunks, fill)
	return data
}

// chunkSeed derives the stream seed for one chunk. The splitmix constant
// decorrelates neighboring chunk indices.
func chunkSeed(seed int64, chunk int) int64 {
	return seed ^ int64(uint64(chunk+1)*0x9E3779B97F4A7C15)
}
