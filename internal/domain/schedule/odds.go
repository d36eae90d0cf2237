package schedule

import (
	"fmt"
	"strconv"
)

// OddsFormat selects how a moneyline is rendered for clients.
type OddsFormat string

const (
	OddsAmerican   OddsFormat = "american"
	OddsDecimal    OddsFormat = "decimal"
	OddsFractional OddsFormat = "fractional"
)

// WinProbability converts an American moneyline to an implied win probability
// in [0, 1], ignoring the bookmaker's vigorish.
func WinProbability(moneyline int) float64 {
	if moneyline < 0 {
		ml := float64(-moneyline)
		return ml / (ml + 100)
	}
	return 100 / (float64(moneyline) + 100)
}

// AmericanToDecimal converts American odds to decimal odds.
func AmericanToDecimal(moneyline int) float64 {
	if moneyline < 0 {
		return 1 + 100/float64(-moneyline)
	}
	return 1 + float64(moneyline)/100
}

// AmericanToFractional converts American odds to a reduced fraction string.
func AmericanToFractional(moneyline int) string {
	numerator, denominator := moneyline, 100
	if moneyline < 0 {
		numerator, denominator = 100, -moneyline
	}
	d := gcd(numerator, denominator)
	return fmt.Sprintf("%d/%d", numerator/d, denominator/d)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// FormatSpread renders a point spread with its sign, "EVEN" for a pick'em.
func FormatSpread(spread float64) string {
	if spread == 0 {
		return "EVEN"
	}
	s := strconv.FormatFloat(spread, 'f', -1, 64)
	if spread > 0 {
		return "+" + s
	}
	return s
}

// FormatMoneyline renders an American moneyline with its sign.
func FormatMoneyline(moneyline int) string {
	if moneyline > 0 {
		return fmt.Sprintf("+%d", moneyline)
	}
	return strconv.Itoa(moneyline)
}

// FormatOdds renders a moneyline in the requested format, defaulting to American.
func FormatOdds(moneyline int, format OddsFormat) string {
	switch format {
	case OddsDecimal:
		return strconv.FormatFloat(AmericanToDecimal(moneyline), 'f', 2, 64)
	case OddsFractional:
		return AmericanToFractional(moneyline)
	default:
		return FormatMoneyline(moneyline)
	}
}
