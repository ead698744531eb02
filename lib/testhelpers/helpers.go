package testhelpers

import (
	"io"

	"github.com/openmed-ai/species-recognition/lib"
	"github.com/openmed-ai/species-recognition/lib/record"
)

func Records(texts ...string) []*lib.Record {
	records := make([]*lib.Record, len(texts))
	for i, text := range texts {
		records[i] = &lib.Record{Index: i, Text: text}
	}
	return records
}

// RecordChannel emits one Value per text followed by io.EOF, the same
// contract the record readers follow.
func RecordChannel(texts ...string) <-chan record.Value {
	values := make(chan record.Value, len(texts)+1)
	for _, r := range Records(texts...) {
		values <- record.Value{Record: r}
	}
	values <- record.Value{Err: io.EOF}
	close(values)
	return values
}
