package reader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LineReader reads the line-oriented input format: a record count on the
// first line, followed by exactly that many record lines.
type LineReader struct {
	reader io.Reader
}

func NewLineReader(reader io.Reader) *LineReader {
	return &LineReader{
		reader: reader,
	}
}

func (lr *LineReader) Read() ([]string, error) {
	scanner := bufio.NewScanner(lr.reader)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read record count: %w", err)
		}
		return nil, fmt.Errorf("input is empty, expected a record count")
	}

	countLine := strings.TrimSpace(scanner.Text())
	count, err := strconv.Atoi(countLine)
	if err != nil {
		return nil, fmt.Errorf("invalid record count %q: %w", countLine, err)
	}
	if count < 0 {
		return nil, fmt.Errorf("record count must not be negative, got %d", count)
	}

	records := make([]string, 0, count)
	for i := 0; i < count; i++ {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("read record %d: %w", i+1, err)
			}
			return nil, fmt.Errorf("expected %d records, input ended after %d", count, i)
		}
		records = append(records, scanner.Text())
	}

	return records, nil
}
