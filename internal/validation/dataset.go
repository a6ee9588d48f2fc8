package validation

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/utils"
)

// ValidateEmployeeID checks an employee id taken from a dataset.
func ValidateEmployeeID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("employee id can't be empty")
	}
	return nil
}

func ValidateEmployeeName(first, last string) error {
	if len(strings.TrimSpace(first)) > constants.MaxNameLen || len(strings.TrimSpace(last)) > constants.MaxNameLen {
		return fmt.Errorf("employee name too long (max %d characters)", constants.MaxNameLen)
	}
	return nil
}

func ValidateMerchant(merchant string) error {
	if len(strings.TrimSpace(merchant)) > constants.MaxMerchantLen {
		return fmt.Errorf("merchant too long (max %d characters)", constants.MaxMerchantLen)
	}
	return nil
}

// ParseAmount converts a decimal amount to cents and checks its range.
func ParseAmount(input string) (int64, error) {
	cents, err := utils.ParseToCents(input)
	if err != nil {
		return 0, err
	}

	if cents > constants.MaxAmountCents || cents < -constants.MaxAmountCents {
		return 0, fmt.Errorf("amount too large")
	}

	return cents, nil
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(input string) (time.Time, error) {
	date, err := time.Parse(constants.DateFormat, strings.TrimSpace(input))
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q must be YYYY-MM-DD", input)
	}
	return date, nil
}

// ValidateDatasetPath checks that path names an existing regular file.
func ValidateDatasetPath(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return fmt.Errorf("dataset path is required")
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("file not found")
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}

	return nil
}
