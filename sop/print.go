// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package sop

import (
	"fmt"
	"io"
	"strings"
)

// String renders c as a dot/bar literal string, e.g. "10-1" for a 4-variable
// cube with variable 1 negated and variable 2 a don't-care.
func (c Cube) String() string {
	var b strings.Builder
	for i := 0; i < c.varCount; i++ {
		switch c.Get(i) {
		case PatOne:
			b.WriteByte('1')
		case PatZero:
			b.WriteByte('0')
		default:
			b.WriteByte('-')
		}
	}
	return b.String()
}

// Print writes one cube per line to w.
func (a Cover) Print(w io.Writer) {
	for _, c := range a.cubes {
		fmt.Fprintln(w, c.String())
	}
}
