package catalog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	reMinMax  = regexp.MustCompile(`min:\s*(\d+).*?max:\s*(\d+)`)
	reNumber  = regexp.MustCompile(`[\d.]+`)
	reLeadInt = regexp.MustCompile(`^\s*(\d+)`)
)

// ParseLimits reads a category counter label.
//
//	"(min: 2, max: 3)" -> 2, 3
//	"0 / 3"            -> 3, 3 (exact count)
//
// Anything else yields the storefront default of 0, 1.
func ParseLimits(text string) (min, max int) {
	min, max = 0, 1

	switch {
	case strings.Contains(text, "(min:"):
		m := reMinMax.FindStringSubmatch(text)
		if m == nil {
			return min, max
		}
		lo, err1 := strconv.Atoi(m[1])
		hi, err2 := strconv.Atoi(m[2])
		if err1 == nil && err2 == nil {
			min, max = lo, hi
		}
	case strings.Contains(text, "/"):
		parts := strings.SplitN(text, "/", 2)
		m := reLeadInt.FindStringSubmatch(parts[1])
		if m == nil {
			return min, max
		}
		if n, err := strconv.Atoi(m[1]); err == nil {
			min, max = n, n
		}
	}
	return min, max
}

// ParsePrice reads the first number out of a price label such as "$5.99" or "5.99 USD".
// An empty label is zero.
func ParsePrice(text string) (decimal.Decimal, error) {
	t := strings.TrimSpace(text)
	if t == "" {
		return decimal.Zero, nil
	}
	m := reNumber.FindString(t)
	if m == "" {
		return decimal.Zero, fmt.Errorf("no number in %q", text)
	}
	d, err := decimal.NewFromString(strings.TrimSuffix(m, "."))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid price %q: %w", text, err)
	}
	return d, nil
}
