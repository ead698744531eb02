package record

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/openmed-ai/species-recognition/lib"
)

const DefaultTextColumn = "text"

// CSVReader reads records from a CSV file with a header row. TextColumn
// names the column holding the text to recognise in.
type CSVReader struct {
	TextColumn string
}

func (c CSVReader) textColumn() string {
	if c.TextColumn == "" {
		return DefaultTextColumn
	}
	return c.TextColumn
}

func (c CSVReader) ReadRecords(r io.Reader) <-chan Value {
	values := make(chan Value)
	go func() {
		defer close(values)

		cr := csv.NewReader(r)
		header, err := cr.Read()
		if err != nil {
			values <- Value{Err: err}
			return
		}

		column := -1
		for i, name := range header {
			if name == c.textColumn() {
				column = i
				break
			}
		}
		if column < 0 {
			values <- Value{Err: fmt.Errorf("column %q not found in csv header", c.textColumn())}
			return
		}

		index := 0
		for {
			row, err := cr.Read()
			if err == io.EOF {
				break
			} else if err != nil {
				values <- Value{Err: err}
				return
			}
			if column >= len(row) {
				values <- Value{Err: fmt.Errorf("row %d has no column %d", index, column)}
				return
			}
			values <- Value{Record: &lib.Record{Index: index, Text: row[column]}}
			index++
		}
		values <- Value{Err: io.EOF}
	}()
	return values
}

func (c CSVReader) ReadRecordsWithCallback(r io.Reader, onRecord func(*lib.Record) error) error {
	return ReadChannelWithCallback(c.ReadRecords(r), onRecord)
}
