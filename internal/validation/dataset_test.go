package validation

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmployeeID(t *testing.T) {
	assert.NoError(t, ValidateEmployeeID("e1"))
	assert.Error(t, ValidateEmployeeID(""))
	assert.Error(t, ValidateEmployeeID("   "))
}

func TestValidateEmployeeName(t *testing.T) {
	assert.NoError(t, ValidateEmployeeName("James", "Smith"))
	assert.NoError(t, ValidateEmployeeName("", ""))
	assert.Error(t, ValidateEmployeeName(strings.Repeat("a", 101), "Smith"))
	assert.Error(t, ValidateEmployeeName("James", strings.Repeat("b", 101)))
}

func TestValidateMerchant(t *testing.T) {
	assert.NoError(t, ValidateMerchant("Coffee Shop"))
	assert.Error(t, ValidateMerchant(strings.Repeat("m", 201)))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{input: "12.50", want: 1250},
		{input: "-3.5", want: -350},
		{input: "7", want: 700},
		{input: "abc", wantErr: true},
		{input: "10.999", wantErr: true},
		{input: "92233720368547.76", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate(" 2024-02-29 ")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDate("29/02/2024")
	assert.Error(t, err)
}

func TestValidateDatasetPath(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(file, []byte("{}"), 0o644))

	assert.NoError(t, ValidateDatasetPath(file))
	assert.Error(t, ValidateDatasetPath(""))
	assert.Error(t, ValidateDatasetPath(dir))
	assert.Error(t, ValidateDatasetPath(filepath.Join(dir, "missing.json")))
}
