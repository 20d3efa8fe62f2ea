package calculation

import (
	"testing"

	"github.com/rpgo/runway-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassifyRunway(t *testing.T) {
	tests := []struct {
		years    int
		expected domain.RunwayStatus
	}{
		{0, domain.RunwayCritical},
		{9, domain.RunwayCritical},
		{10, domain.RunwayFinite},
		{99, domain.RunwayFinite},
		{100, domain.RunwayInfinite},
		{150, domain.RunwayInfinite},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, ClassifyRunway(tt.years), "runway %d", tt.years)
	}
}
