package emissions

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// dateLayout is the calendar date accepted from user input.
const dateLayout = "2006-01-02"

// ValidateReading applies the form rules: consumption and date are both
// required and consumption lies in [MinConsumption, MaxConsumption].
// An empty reading is reported as invalid too; callers that treat it as a
// no-op must check Reading.IsEmpty first.
func ValidateReading(r Reading) error {
	if r.Consumption == nil {
		return fmt.Errorf("%w: consumption is required", ErrInvalidInput)
	}
	if r.Date == nil {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	c := *r.Consumption
	if math.IsNaN(c) || math.IsInf(c, 0) {
		return fmt.Errorf("%w: consumption must be a finite number", ErrInvalidInput)
	}
	if c < MinConsumption || c > MaxConsumption {
		return fmt.Errorf("%w: consumption %g outside [%g, %g]",
			ErrInvalidInput, c, MinConsumption, MaxConsumption)
	}
	return nil
}

// ParseReading converts form text into a Reading. Blank fields become
// absent values. Dates are either YYYY-MM-DD, taken as midnight in loc, or
// RFC 3339. A nil loc means time.Local.
func ParseReading(consumption, date string, loc *time.Location) (Reading, error) {
	var r Reading

	if s := strings.TrimSpace(consumption); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Reading{}, fmt.Errorf("%w: consumption %q is not a number", ErrInvalidInput, s)
		}
		r.Consumption = &v
	}

	if s := strings.TrimSpace(date); s != "" {
		ts, err := ParseDate(s, loc)
		if err != nil {
			return Reading{}, err
		}
		r.Date = &ts
	}

	return r, nil
}

// ParseDate parses a YYYY-MM-DD or RFC 3339 date into epoch milliseconds.
func ParseDate(s string, loc *time.Location) (int64, error) {
	if loc == nil {
		loc = time.Local
	}
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(dateLayout, s, loc); err == nil {
		return t.UnixMilli(), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UnixMilli(), nil
	}
	return 0, fmt.Errorf("%w: date %q is not YYYY-MM-DD or RFC 3339", ErrInvalidInput, s)
}
