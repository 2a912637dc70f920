package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCents(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  int64
		expectErr bool
	}{
		{name: "Whole rand", input: "100", expected: 10000},
		{name: "Rand and cents", input: "123.45", expected: 12345},
		{name: "Single decimal place", input: "99.5", expected: 9950},
		{name: "One cent", input: "0.01", expected: 1},
		{name: "Zero is rejected", input: "0", expectErr: true},
		{name: "Negative is rejected", input: "-10", expectErr: true},
		{name: "Sub-cent precision is rejected", input: "10.001", expectErr: true},
		{name: "Garbage is rejected", input: "ten rand", expectErr: true},
		{name: "Empty is rejected", input: "", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cents, err := ParseCents(tt.input)
			if tt.expectErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, cents)
		})
	}
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "123.45", FormatCents(12345))
	assert.Equal(t, "100.00", FormatCents(10000))
	assert.Equal(t, "0.01", FormatCents(1))
}

func TestRoundTrip(t *testing.T) {
	cents, err := ParseCents(FormatCents(98765))
	assert.NoError(t, err)
	assert.Equal(t, int64(98765), cents)
}
