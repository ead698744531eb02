package record

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"

	"github.com/openmed-ai/species-recognition/lib"
)

// JSONLReader reads one record per line. A line may be a bare JSON
// string or an object with a "text" key, which matches the input
// format accepted by batch transform jobs.
type JSONLReader struct{}

func (j JSONLReader) ReadRecords(r io.Reader) <-chan Value {
	values := make(chan Value)
	go func() {
		defer close(values)

		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		index := 0
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			text, err := parseLine(line)
			if err != nil {
				values <- Value{Err: err}
				return
			}
			values <- Value{Record: &lib.Record{Index: index, Text: text}}
			index++
		}
		if err := scanner.Err(); err != nil {
			values <- Value{Err: err}
			return
		}
		values <- Value{Err: io.EOF}
	}()
	return values
}

func (j JSONLReader) ReadRecordsWithCallback(r io.Reader, onRecord func(*lib.Record) error) error {
	return ReadChannelWithCallback(j.ReadRecords(r), onRecord)
}

func parseLine(line string) (string, error) {
	if strings.HasPrefix(line, "\"") {
		var text string
		err := json.Unmarshal([]byte(line), &text)
		return text, err
	}

	var obj struct {
		Text   string `json:"text"`
		Inputs string `json:"inputs"`
	}
	if err := json.Unmarshal([]byte(line), &obj); err != nil {
		return "", err
	}
	if obj.Text != "" {
		return obj.Text, nil
	}
	return obj.Inputs, nil
}
