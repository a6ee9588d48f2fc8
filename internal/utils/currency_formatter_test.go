package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromCents(t *testing.T) {
	cases := map[int64]string{
		0:      "0.00",
		5:      "0.05",
		15050:  "150.50",
		-350:   "-3.50",
		100000: "1000.00",
	}
	for cents, want := range cases {
		assert.Equal(t, want, FormatFromCents(cents), "cents=%d", cents)
	}
}

func TestParseToCents(t *testing.T) {
	cases := map[string]int64{
		"150":     15000,
		"150.5":   15050,
		"150.50":  15050,
		".75":     75,
		"-3.5":    -350,
		"+2":      200,
		" 12.30 ": 1230,
		"0":       0,
	}
	for in, want := range cases {
		got, err := ParseToCents(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseToCents_Invalid(t *testing.T) {
	for _, in := range []string{"", "-", ".", "1.2.3", "12abc", "1.x", "abc", "1e3", "99999999999999999999", "150.509", "10.999"} {
		_, err := ParseToCents(in)
		assert.Error(t, err, in)
	}
}
