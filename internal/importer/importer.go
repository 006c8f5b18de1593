// Package importer turns CRM exports and spreadsheet downloads into
// domain.Project records for the calculation engine.
package importer

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/solarpipe/commission/internal/domain"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedSource is returned for file extensions with no decoder.
var ErrUnsupportedSource = errors.New("unsupported project source")

// LoadProjects reads projects from a .csv, .yaml/.yml or .json file.
func LoadProjects(path string) ([]domain.Project, error) {
	var parse func([]byte) ([]domain.Project, error)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		parse = func(data []byte) ([]domain.Project, error) { return ParseCSV(bytes.NewReader(data)) }
	case ".yaml", ".yml":
		parse = ParseYAML
	case ".json":
		parse = ParseJSON
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSource, ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	projects, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return projects, nil
}

// ParseYAML decodes a document of the form `projects: [...]`.
func ParseYAML(data []byte) ([]domain.Project, error) {
	var set domain.ProjectSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return finalize(set.Projects), nil
}

// ParseJSON decodes either a bare array of projects or `{"projects": [...]}`.
func ParseJSON(data []byte) ([]domain.Project, error) {
	trimmed := bytes.TrimSpace(data)
	var projects []domain.Project
	if bytes.HasPrefix(trimmed, []byte("[")) {
		if err := json.Unmarshal(trimmed, &projects); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
		return finalize(projects), nil
	}
	var set domain.ProjectSet
	if err := json.Unmarshal(trimmed, &set); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return finalize(set.Projects), nil
}

// finalize gives every project an ID and canonical status.
func finalize(projects []domain.Project) []domain.Project {
	for i := range projects {
		if strings.TrimSpace(projects[i].ID) == "" {
			projects[i].ID = uuid.NewString()
		}
		projects[i].Status = domain.ParseStatus(string(projects[i].Status))
	}
	return projects
}

// columnSetters maps normalized header names to the field they fill.
var columnSetters = map[string]func(p *domain.Project, v string){
	"id":            func(p *domain.Project, v string) { p.ID = v },
	"projectid":     func(p *domain.Project, v string) { p.ID = v },
	"customer":      func(p *domain.Project, v string) { p.CustomerName = v },
	"customername":  func(p *domain.Project, v string) { p.CustomerName = v },
	"address":       func(p *domain.Project, v string) { p.Address = v },
	"installdate":   func(p *domain.Project, v string) { p.InstallDate = v },
	"status":        func(p *domain.Project, v string) { p.Status = domain.Status(v) },
	"stage":         func(p *domain.Project, v string) { p.Status = domain.Status(v) },
	"systemsize":    func(p *domain.Project, v string) { p.SystemSize = domain.NumericString(v) },
	"systemsizekw":  func(p *domain.Project, v string) { p.SystemSize = domain.NumericString(v) },
	"grossppw":      func(p *domain.Project, v string) { p.GrossPPW = domain.NumericString(v) },
	"ppw":           func(p *domain.Project, v string) { p.GrossPPW = domain.NumericString(v) },
	"paymentamount": func(p *domain.Project, v string) { p.PaymentAmount = domain.NumericString(v) },
	"eabattery":     func(p *domain.Project, v string) { p.EABattery = parseFlag(v) },
	"backupbattery": func(p *domain.Project, v string) { p.BackupBattery = parseFlag(v) },
	"mpu":           func(p *domain.Project, v string) { p.MPU = parseFlag(v) },
	"hti":           func(p *domain.Project, v string) { p.HTI = parseFlag(v) },
	"reroof":        func(p *domain.Project, v string) { p.Reroof = parseFlag(v) },
	"office":        func(p *domain.Project, v string) { p.Office = v },
	"userid":        func(p *domain.Project, v string) { p.UserID = v },
	"rep":           func(p *domain.Project, v string) { p.UserID = v },
	"repid":         func(p *domain.Project, v string) { p.UserID = v },
}

// ParseCSV reads a spreadsheet export whose first row is a header. Headers
// are matched ignoring case, spaces and punctuation, so "System Size (kW)"
// and "system_size_kw" both work. Unknown columns are ignored and blank rows
// skipped.
func ParseCSV(r io.Reader) ([]domain.Project, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	setters := make([]func(p *domain.Project, v string), len(header))
	for i, name := range header {
		setters[i] = columnSetters[normalizeHeader(name)]
	}

	var projects []domain.Project
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV line %d: %w", line, err)
		}
		if isBlank(record) {
			continue
		}
		var p domain.Project
		for i, value := range record {
			if i < len(setters) && setters[i] != nil {
				setters[i](&p, strings.TrimSpace(value))
			}
		}
		projects = append(projects, p)
	}
	return finalize(projects), nil
}

func normalizeHeader(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// parseFlag reads spreadsheet checkbox values; anything unrecognized is false.
func parseFlag(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "yes", "y", "1", "x":
		return true
	}
	return false
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
