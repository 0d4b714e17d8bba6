package writer

import (
	"bufio"
	"fmt"
	"io"
)

// LineWriter writes sorted records to the output sink, one per line.
type LineWriter struct {
	writer io.Writer
}

func NewLineWriter(writer io.Writer) *LineWriter {
	return &LineWriter{
		writer: writer,
	}
}

func (lw *LineWriter) Write(records []string) error {
	buffered := bufio.NewWriter(lw.writer)
	for _, record := range records {
		if _, err := fmt.Fprintln(buffered, record); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}
	return buffered.Flush()
}
