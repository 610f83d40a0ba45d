package report

import (
	"fmt"
	"math"

	"github.com/josephgoksu/golfstats/internal/golf"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NotAvailable is shown in text output for unknown figures.
const NotAvailable = "N/A"

var printer = message.NewPrinter(language.English)

// count formats an integer with thousands separators.
func count(n int) string {
	return printer.Sprintf("%d", n)
}

func signed(v float64) string {
	return fmt.Sprintf("%+.1f", v)
}

func decimal(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

func percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// distance prints whole yardages without a fraction.
func distance(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}

func statDecimal(s golf.Stat) string {
	if !s.OK {
		return NotAvailable
	}
	return decimal(s.Value)
}

func statSigned(s golf.Stat) string {
	if !s.OK {
		return NotAvailable
	}
	return signed(s.Value)
}

func statPercent(s golf.Stat) string {
	if !s.OK {
		return NotAvailable
	}
	return percent(s.Value)
}

func statDistance(s golf.Stat) string {
	if !s.OK {
		return NotAvailable
	}
	return distance(s.Value)
}

func overPar(n int) string {
	return fmt.Sprintf("%+d", n)
}
