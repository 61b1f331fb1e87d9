package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareVersion(t *testing.T) {
	tests := []struct {
		a, b string
		want int
		ok   bool
	}{
		{"2.44.1", "2.42", 1, true},
		{"2.42", "2.42.0", 0, true},
		{"4.9.8", "4.10", -1, true},
		{"4.14.2-rc1", "4.14.2", 0, true},
		{"", "1", 0, false},
		{"1..2", "1", 0, false},
		{"v2", "1", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			got, ok := compareVersion(tt.a, tt.b)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
