package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"rent-quote/domain"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

var ErrUnknownFormat = errors.New("formato de exportação desconhecido")

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatXLSX, FormatPDF:
		return f, nil
	case "":
		return FormatCSV, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

func (f Format) Extension() string {
	return "." + string(f)
}

func (f Format) ContentType() string {
	switch f {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatPDF:
		return "application/pdf"
	}
	return "text/csv; charset=utf-8"
}

// EnsureExtension appends the format extension when the name lacks it.
func EnsureExtension(name string, f Format) string {
	if strings.HasSuffix(strings.ToLower(name), f.Extension()) {
		return name
	}
	return name + f.Extension()
}

// Write renders the quote in the given format.
func Write(w io.Writer, f Format, result domain.QuoteResult) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, result.Schedule)
	case FormatXLSX:
		return WriteXLSX(w, result.Schedule)
	case FormatPDF:
		return WritePDF(w, result)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// WriteFile creates path and writes the quote into it. The file is closed
// before returning on every path; a close error is reported when the write
// itself succeeded.
func WriteFile(path string, f Format, result domain.QuoteResult) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("falha ao criar %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("falha ao fechar %s: %w", path, cerr)
		}
	}()

	if err := Write(file, f, result); err != nil {
		return fmt.Errorf("falha ao escrever %s: %w", path, err)
	}
	return nil
}
