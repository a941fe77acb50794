// Package report prints frequency tables for diagnostics. It isn't used when
// compressing or decompressing.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/dargueta/huffpack/errors"
	"github.com/dargueta/huffpack/utilities/compression"
	"github.com/gocarina/gocsv"
)

// Format selects how a frequency table is printed.
type Format string

const (
	// FormatList prints all 256 counts on one line, like `[0, 0, 17, ...]`.
	FormatList = Format("list")
	// FormatCSV prints one row per byte value with a header line.
	FormatCSV = Format("csv")
)

// ParseFormat converts a format name given on the command line into a [Format].
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatList, FormatCSV:
		return Format(name), nil
	}
	msg := fmt.Sprintf("unknown report format %q, expected %q or %q", name, FormatList, FormatCSV)
	return "", errors.ErrInvalidArgument.WithMessage(msg)
}

// Row is one line of a CSV report.
type Row struct {
	Value int `csv:"byte"`
	// Character is the byte as printable ASCII, or empty if it isn't printable.
	Character string `csv:"char"`
	Count     uint64 `csv:"count"`
}

// Rows converts a frequency table into report rows in ascending byte order.
// Byte values that don't occur are skipped unless includeAbsent is true.
func Rows(table *compression.FrequencyTable, includeAbsent bool) []Row {
	present := table.Symbols()
	rows := make([]Row, 0, len(table))
	for value, count := range table {
		if !includeAbsent && !present.Get(value) {
			continue
		}

		row := Row{Value: value, Count: count}
		if value < 0x80 && strconv.IsPrint(rune(value)) {
			row.Character = string(rune(value))
		}
		rows = append(rows, row)
	}
	return rows
}

// Write prints the table to w in the given format.
func Write(w io.Writer, table *compression.FrequencyTable, format Format, includeAbsent bool) error {
	switch format {
	case FormatList:
		return WriteList(w, table)
	case FormatCSV:
		return WriteCSV(w, table, includeAbsent)
	}
	return errors.ErrInvalidArgument.WithMessage(fmt.Sprintf("unknown report format %q", format))
}

// WriteList prints all 256 counts as a bracketed, comma-separated list
// followed by a newline.
func WriteList(w io.Writer, table *compression.FrequencyTable) error {
	writer := bufio.NewWriter(w)
	writer.WriteByte('[')
	for i, count := range table {
		if i > 0 {
			writer.WriteString(", ")
		}
		writer.WriteString(strconv.FormatUint(count, 10))
	}
	writer.WriteString("]\n")
	return writer.Flush()
}

// WriteCSV prints the table as CSV with the columns `byte`, `char` and `count`.
func WriteCSV(w io.Writer, table *compression.FrequencyTable, includeAbsent bool) error {
	return gocsv.Marshal(Rows(table, includeAbsent), w)
}
