package payments

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinorUnits(t *testing.T) {
	cases := []struct {
		price float64
		want  int64
	}{
		{19.99, 1999},
		// 10.01*100 is 1000.99999... in float64; truncation would lose a cent.
		{10.01, 1001},
		{0, 0},
		{0.001, 0},
		{0.009, 1},
		{1, 100},
		{120000, 12000000},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, MinorUnits(tc.price), "price %v", tc.price)
	}
}
