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
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

// Reporter receives suite output. Implementations own all formatting;
// the runner and suite never print on their own.
type Reporter interface {
	// Section opens a named experiment with a one-line purpose.
	Section(title, purpose string)
	// Case labels the dataset the following results were measured on.
	Case(label string)
	// Result records one timed sort call.
	Result(res Result)
}

// ConsoleReporter renders suite output as colored console text.
type ConsoleReporter struct {
	Out io.Writer

	heading *color.Color
	failure *color.Color
}

// NewConsoleReporter returns a reporter writing to out, or to stdout when
// out is nil.
func NewConsoleReporter(out io.Writer) *ConsoleReporter {
	if out == nil {
		out = os.Stdout
	}
	return &ConsoleReporter{
		Out:     out,
		heading: color.New(color.FgCyan, color.Bold),
		failure: color.New(color.FgRed),
	}
}

func (c *ConsoleReporter) Section(title, purpose string) {
	fmt.Fprintln(c.Out)
	c.heading.Fprintln(c.Out, title)
	if purpose != "" {
		fmt.Fprintln(c.Out, purpose)
	}
	fmt.Fprintln(c.Out, strings.Repeat("-", 60))
}

func (c *ConsoleReporter) Case(label string) {
	fmt.Fprintf(c.Out, "%s\n", label)
}

func (c *ConsoleReporter) Result(res Result) {
	name := res.Algorithm + ":"
	if res.Err != nil {
		c.failure.Fprintf(c.Out, "  %-26s ERROR: %v\n", name, res.Err)
		return
	}
	ms := float64(res.Elapsed.Microseconds()) / 1000.0
	fmt.Fprintf(c.Out, "  %-26s %10.3f ms\n", name, ms)
}

// FormatValues renders up to maxElements values space-separated, eliding
// the remainder with a count.
func FormatValues(values []int, maxElements int) string {
	var b strings.Builder
	show := min(len(values), maxElements)
	for i := 0; i < show; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(values[i]))
	}
	if len(values) > maxElements {
		fmt.Fprintf(&b, " ... (%s total elements)", humanize.Comma(int64(len(values))))
	}
	return b.String()
}
