package report

import "fmt"

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("unknown report format %q", s)
}

func (f Format) ContentType() string {
	if f == FormatXLSX {
		return XLSXContentType
	}
	return CSVContentType
}

// Render serializes d in format f.
func (f Format) Render(d Document) ([]byte, error) {
	switch f {
	case FormatCSV:
		return SerializeCSV(d)
	case FormatXLSX:
		return SerializeXLSX(d)
	}
	return nil, fmt.Errorf("unknown report format %q", string(f))
}
