package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/solarpipe/commission/internal/domain"
)

// lookup resolves a format name or returns an error listing the options.
func lookup(format string) (Formatter, error) {
	if f := GetFormatterByName(format); f != nil {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// Render writes the report in the requested format to w.
func Render(w io.Writer, report *domain.EarningsReport, format string) error {
	f, err := lookup(format)
	if err != nil {
		return err
	}
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// GenerateReport writes the report to a timestamped file in dir and returns
// its path. The "all" format writes every registered formatter.
func GenerateReport(report *domain.EarningsReport, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var written []string
		for _, name := range AvailableFormatterNames() {
			path, err := WriteFormatted(GetFormatterByName(name), report, dir, extensionFor(name))
			if err != nil {
				return written, err
			}
			written = append(written, path)
		}
		return written, nil
	}

	f, err := lookup(format)
	if err != nil {
		return nil, err
	}
	path, err := WriteFormatted(f, report, dir, FileExtension(f.Name()))
	if err != nil {
		return nil, err
	}
	return []string{path}, nil
}

// extensionFor keeps the two CSV exports apart when both are written at once.
func extensionFor(name string) string {
	if name == "detailed-csv" {
		return "projects.csv"
	}
	return FileExtension(name)
}
