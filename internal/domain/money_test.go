package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Credito-api/internal/domain"
)

func TestFitsMoney(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"0", true},
		{"100.01", true},
		{"100.500", true},
		{"9999999999999.99", true},
		{"0.001", false},
		{"100.005", false},
		{"10000000000000", false},
		{"-10000000000000", false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, domain.FitsMoney(decimal.RequireFromString(tc.in)))
		})
	}
}
