package greenops

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter formats numbers with the grouping rules of one locale.
type Formatter struct {
	printer *message.Printer
	words   phrases
}

// NewFormatter returns a Formatter for tag.
func NewFormatter(tag language.Tag) Formatter {
	return Formatter{printer: message.NewPrinter(tag), words: phrasesFor(tag)}
}

// Number formats an integer with thousand separators.
// Example: Number(18248) returns "18,248" for English.
func (f Formatter) Number(n int64) string {
	return f.printer.Sprintf("%d", n)
}

// Float formats f with a fixed number of decimals and thousand separators.
// Example: Float(1234.567, 2) returns "1,234.57" for English.
func (f Formatter) Float(v float64, precision int) string {
	if precision < 0 {
		precision = 0
	}
	return f.printer.Sprint(number.Decimal(v, number.Scale(precision)))
}

// Equivalency formats an equivalency count: whole numbers below one
// million, abbreviated notation above.
func (f Formatter) Equivalency(v float64) string {
	if v >= LargeNumberThreshold {
		return f.Large(v)
	}
	return f.Number(int64(math.Round(v)))
}

// Large abbreviates values of a million or more in the formatter's locale.
// Smaller values are formatted as whole numbers.
func (f Formatter) Large(n float64) string {
	if n >= BillionThreshold {
		return fmt.Sprintf("~%s %s", f.Float(n/BillionThreshold, 1), f.words.billion)
	}
	if n >= LargeNumberThreshold {
		return fmt.Sprintf("~%s %s", f.Float(n/LargeNumberThreshold, 1), f.words.million)
	}
	return f.Number(int64(math.Round(n)))
}

// FormatLarge abbreviates values of a million or more in English.
//
// Example: FormatLarge(1500000000) returns "~1.5 billion".
func FormatLarge(n float64) string {
	return NewFormatter(language.English).Large(n)
}
