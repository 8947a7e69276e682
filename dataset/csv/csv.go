/*
Package csv provides reading and writing of boolean attribute tables as
CSV streams: the format the binarization pipeline emits, with a header row
of attribute names and true/false (or 1/0) cells.
*/
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/subgroups/dssd/dataset"
)

/*
ReadTable takes an io.Reader for a CSV stream and a slice of attribute
names and returns a dataset.Table with those attributes loaded from the
stream, or an error.

The header or first row of the CSV content must contain a column for every
requested attribute; extra columns are ignored. If attributes is empty,
every header column is loaded. The remaining rows must hold boolean
values ("true"/"false"/"1"/"0") for every loaded column; missing values
are not supported, binarization is expected to have resolved them.
*/
func ReadTable(reader io.Reader, attributes []string) (*dataset.Table, error) {
	r := csv.NewReader(reader)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %v", err)
	}
	if len(attributes) == 0 {
		attributes = header
	}
	positions, err := attributePositions(header, attributes)
	if err != nil {
		return nil, err
	}
	t, err := dataset.NewTable(attributes)
	if err != nil {
		return nil, err
	}
	for l := 2; ; l++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading body: %v", err)
		}
		values := make(map[string]bool, len(attributes))
		for i, name := range attributes {
			p := positions[i]
			if p >= len(row) {
				return nil, fmt.Errorf("parsing line %d: no value for column %q", l, name)
			}
			v, err := strconv.ParseBool(row[p])
			if err != nil {
				return nil, fmt.Errorf("parsing line %d: column %q: %v", l, name, err)
			}
			values[name] = v
		}
		if err := t.AddRow(values); err != nil {
			return nil, fmt.Errorf("parsing line %d: %v", l, err)
		}
	}
	return t, nil
}

/*
ReadTableFromFilePath takes a filepath string and a slice of attribute
names, opens the file the filepath points to and uses ReadTable to return
a dataset.Table read from it. It returns an error if the file cannot be
opened for reading.
*/
func ReadTableFromFilePath(filepath string, attributes []string) (*dataset.Table, error) {
	f, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("opening CSV file %s: %v", filepath, err)
	}
	defer f.Close()
	t, err := ReadTable(f, attributes)
	if err != nil {
		return nil, fmt.Errorf("reading CSV file %s: %v", filepath, err)
	}
	return t, nil
}

/*
WriteTable takes an io.Writer and a dataset.Table and writes the table to
the writer as CSV: a header row with the table's columns followed by one
row of true/false values per table row. It returns an error if writing
fails.
*/
func WriteTable(writer io.Writer, t *dataset.Table) error {
	w := csv.NewWriter(writer)
	if err := w.Write(t.Columns()); err != nil {
		return fmt.Errorf("writing header: %v", err)
	}
	columns := t.Columns()
	record := make([]string, len(columns))
	for i := 0; i < t.Count(); i++ {
		for j, name := range columns {
			v, err := t.Value(i, name)
			if err != nil {
				return fmt.Errorf("writing row %d: %v", i, err)
			}
			record[j] = strconv.FormatBool(v)
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing row %d: %v", i, err)
		}
	}
	w.Flush()
	return w.Error()
}

func attributePositions(header, attributes []string) ([]int, error) {
	byName := make(map[string]int, len(header))
	for i, name := range header {
		byName[name] = i
	}
	positions := make([]int, len(attributes))
	for i, name := range attributes {
		p, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("attribute %q not present in CSV header", name)
		}
		positions[i] = p
	}
	return positions, nil
}
