package render

import (
	"fmt"
	"time"

	"golang.org/x/text/language"

	"github.com/rshade/fuelco2/internal/emissions"
)

// Labels are the user-facing strings of one locale.
type Labels struct {
	Coal      string
	Gas       string
	Total     string
	DateAxis  string
	ValueAxis string
	Duplicate string
	Empty     string
	Months    [12]string

	// Table column headers.
	Columns [4]string
}

//nolint:gochecknoglobals // Static translation tables.
var (
	englishLabels = Labels{
		Coal:      "CO2 emissions from solid fuel combustion",
		Gas:       "CO2 emissions from gas combustion",
		Total:     "Total CO2 emissions",
		DateAxis:  "Date",
		ValueAxis: "Emissions (t)",
		Duplicate: "A value for the selected date already exists",
		Empty:     "No emissions recorded yet.",
		Months: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun",
			"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		Columns: [4]string{"DATE", "COAL (t)", "GAS (t)", "TOTAL (t)"},
	}

	russianLabels = Labels{
		Coal:      "Выбросы СО2 от сжигания твердого топлива",
		Gas:       "Выбросы СО2 от сжигания газа",
		Total:     "Выбросы СО2 общие",
		DateAxis:  "Дата",
		ValueAxis: "Выбросы (тонн)",
		Duplicate: "Значение для выбранной даты уже существует",
		Empty:     "Выбросы пока не внесены.",
		Months: [12]string{"Янв", "Фев", "Март", "Апр", "Май", "Июнь",
			"Июль", "Авг", "Сен", "Окт", "Ноя", "Дек"},
		Columns: [4]string{"ДАТА", "УГОЛЬ (т)", "ГАЗ (т)", "ВСЕГО (т)"},
	}

	supportedLocales = []language.Tag{language.English, language.Russian}
	localeMatcher    = language.NewMatcher(supportedLocales)
)

// ParseLocale resolves a locale string to a supported tag. Unknown or
// malformed locales fall back to English.
func ParseLocale(s string) language.Tag {
	tag, err := language.Parse(s)
	if err != nil {
		return language.English
	}
	_, idx, conf := localeMatcher.Match(tag)
	if conf == language.No {
		return language.English
	}
	return supportedLocales[idx]
}

// LabelsFor returns the labels for tag.
func LabelsFor(tag language.Tag) Labels {
	if base, _ := tag.Base(); base.String() == "ru" {
		return russianLabels
	}
	return englishLabels
}

// SeriesName returns the display name of a source.
func (l Labels) SeriesName(source emissions.Source) string {
	if source == emissions.Gas {
		return l.Gas
	}
	return l.Coal
}

// AxisLabel formats a timestamp as "<month> <day>", e.g. "Mar 5".
func (l Labels) AxisLabel(ts int64, loc *time.Location) string {
	t := time.UnixMilli(ts).In(loc)
	return fmt.Sprintf("%s %d", l.Months[t.Month()-1], t.Day())
}

// FormatDate formats a timestamp as YYYY-MM-DD in loc.
func FormatDate(ts int64, loc *time.Location) string {
	return time.UnixMilli(ts).In(loc).Format("2006-01-02")
}
