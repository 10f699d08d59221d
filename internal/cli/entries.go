package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rshade/fuelco2/internal/emissions"
)

// errBadEntryFlag is returned for a --coal/--gas value without DATE=AMOUNT.
var errBadEntryFlag = errors.New("entry must be DATE=AMOUNT")

// EntryFile is the YAML document read by calc --file.
//
//	coal:
//	  - date: 2024-03-01
//	    consumption: 10
//	gas:
//	  - date: 2024-03-01
//	    consumption: 4.5
//	entries:
//	  - source: gas
//	    date: 2024-03-02
//	    consumption: 7
//
// Mixed entries are recorded after the coal and gas lists.
type EntryFile struct {
	Coal    []FileEntry    `yaml:"coal"`
	Gas     []FileEntry    `yaml:"gas"`
	Entries []SourcedEntry `yaml:"entries"`
}

// FileEntry is one dated consumption value. Either field may be omitted,
// which the engine treats like an empty form field.
type FileEntry struct {
	Date        string   `yaml:"date"`
	Consumption *float64 `yaml:"consumption"`
}

// SourcedEntry is a FileEntry that names its fuel.
type SourcedEntry struct {
	Source    string `yaml:"source"`
	FileEntry `yaml:",inline"`
}

// pendingReading is a parsed reading waiting to be recorded, with the
// text it came from for notices.
type pendingReading struct {
	source  emissions.Source
	reading emissions.Reading
	origin  string
}

// LoadEntryFile reads and decodes an entry file.
func LoadEntryFile(path string) (*EntryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading entry file %s: %w", path, err)
	}

	var ef EntryFile
	if err := yaml.Unmarshal(data, &ef); err != nil {
		return nil, fmt.Errorf("parsing entry file %s: %w", path, err)
	}
	return &ef, nil
}

// readings converts the file into pending readings: coal, then gas, then
// the mixed entries, each list in file order.
func (ef *EntryFile) readings(loc *time.Location) ([]pendingReading, error) {
	var out []pendingReading
	for _, source := range emissions.Sources() {
		list := ef.Coal
		if source == emissions.Gas {
			list = ef.Gas
		}
		for i, fe := range list {
			p, err := fe.pending(source, loc)
			if err != nil {
				return nil, fmt.Errorf("%s entry %d: %w", source, i+1, err)
			}
			out = append(out, p)
		}
	}

	for i, se := range ef.Entries {
		source, err := emissions.ParseSource(se.Source)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		p, err := se.pending(source, loc)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		out = append(out, p)
	}
	return out, nil
}

func (fe FileEntry) pending(source emissions.Source, loc *time.Location) (pendingReading, error) {
	consumption := ""
	if fe.Consumption != nil {
		consumption = strconv.FormatFloat(*fe.Consumption, 'f', -1, 64)
	}
	r, err := emissions.ParseReading(consumption, fe.Date, loc)
	if err != nil {
		return pendingReading{}, err
	}
	return pendingReading{
		source:  source,
		reading: r,
		origin:  fmt.Sprintf("%s=%s", fe.Date, consumption),
	}, nil
}

// parseEntryFlag parses a DATE=AMOUNT flag value.
func parseEntryFlag(source emissions.Source, value string, loc *time.Location) (pendingReading, error) {
	date, amount, ok := strings.Cut(value, "=")
	if !ok {
		return pendingReading{}, fmt.Errorf("--%s %q: %w", source, value, errBadEntryFlag)
	}

	r, err := emissions.ParseReading(amount, date, loc)
	if err != nil {
		return pendingReading{}, fmt.Errorf("--%s %q: %w", source, value, err)
	}
	return pendingReading{source: source, reading: r, origin: value}, nil
}
