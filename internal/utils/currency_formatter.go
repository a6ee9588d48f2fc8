package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hance08/tally/internal/constants"
)

func FormatFromCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/constants.CentsPerUnit, cents%constants.CentsPerUnit)
}

// ParseToCents converts a decimal amount to cents.
// e.g., "150.50" -> 15050, "150" -> 15000, "-3.5" -> -350
func ParseToCents(amountStr string) (int64, error) {
	s := strings.TrimSpace(amountStr)

	negative := false
	switch {
	case strings.HasPrefix(s, "-"):
		negative = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	parts := strings.Split(s, ".")
	if s == "" || len(parts) > 2 || (parts[0] == "" && (len(parts) == 1 || parts[1] == "")) {
		return 0, fmt.Errorf("invalid amount format: %s", amountStr)
	}

	var units, cents int64

	if parts[0] != "" {
		if !isDigits(parts[0]) {
			return 0, fmt.Errorf("invalid amount: %s", amountStr)
		}
		v, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil || v > constants.MaxAmountCents/constants.CentsPerUnit {
			return 0, fmt.Errorf("amount out of range: %s", amountStr)
		}
		units = v
	}

	if len(parts) == 2 {
		centStr := parts[1]
		if !isDigits(centStr) {
			return 0, fmt.Errorf("invalid cents: %s", amountStr)
		}
		if len(centStr) > 2 {
			return 0, fmt.Errorf("too many decimal places: %s", amountStr)
		}
		if len(centStr) == 1 {
			centStr += "0"
		}
		v, err := strconv.ParseInt(centStr, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid cents: %s", amountStr)
		}
		cents = v
	}

	total := units*constants.CentsPerUnit + cents
	if negative {
		total = -total
	}
	return total, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
