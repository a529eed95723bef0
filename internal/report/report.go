// Package report renders a matrix product for the console.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/danmuck/matmul/internal/matrix"
)

const (
	Greeting = "Hello world!"
	Header   = "Resulting matrix is"
)

// Write emits the greeting, the header, then one line per row with the
// row's decimal values concatenated.
func Write(w io.Writer, m matrix.Matrix) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, Greeting); err != nil {
		return fmt.Errorf("report: write greeting: %w", err)
	}
	if _, err := fmt.Fprintln(bw, Header); err != nil {
		return fmt.Errorf("report: write header: %w", err)
	}
	for i := 0; i < matrix.Size; i++ {
		if _, err := fmt.Fprintln(bw, FormatRow(m.Row(i))); err != nil {
			return fmt.Errorf("report: write row %d: %w", i, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("report: flush: %w", err)
	}
	return nil
}

// FormatRow joins the row's values with no separator.
func FormatRow(row [matrix.Size]int32) string {
	var b strings.Builder
	for _, v := range row {
		b.WriteString(strconv.FormatInt(int64(v), 10))
	}
	return b.String()
}
