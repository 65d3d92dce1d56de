package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
)

const CSVContentType = "text/csv; charset=utf-8"

// WriteCSV writes the report as comma-separated records. Fields holding a
// comma, quote or line break are quoted with inner quotes doubled.
func WriteCSV(w io.Writer, d Document) error {
	cw := csv.NewWriter(w)
	for _, r := range d.rows() {
		record := make([]string, len(r.fields))
		for i, f := range r.fields {
			record[i] = text(f)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

func SerializeCSV(d Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
