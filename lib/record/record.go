package record

import (
	"io"

	"github.com/openmed-ai/species-recognition/lib"
)

// Reader streams records from an input file. Implementations send one
// Value per record and a final Value with Err == io.EOF.
type Reader interface {
	ReadRecords(r io.Reader) <-chan Value
	ReadRecordsWithCallback(r io.Reader, onRecord func(*lib.Record) error) error
}

type Value struct {
	Record *lib.Record
	Err    error
}

func ReadChannelWithCallback(values <-chan Value, callback func(record *lib.Record) error) error {
	for value := range values {
		if value.Err == io.EOF {
			break
		} else if value.Err != nil {
			return value.Err
		}
		if err := callback(value.Record); err != nil {
			return err
		}
	}
	return nil
}
