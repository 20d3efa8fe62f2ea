package calculation

import "github.com/rpgo/runway-calculator/internal/domain"

const (
	// ProjectionHorizon is the last simulated year; reaching it while solvent is an infinite runway.
	ProjectionHorizon = 100
	// CriticalRunwayYears is the runway below which the status is critical.
	CriticalRunwayYears = 10
)

// ClassifyRunway maps a runway length to its terminal status.
func ClassifyRunway(runwayYears int) domain.RunwayStatus {
	switch {
	case runwayYears >= ProjectionHorizon:
		return domain.RunwayInfinite
	case runwayYears < CriticalRunwayYears:
		return domain.RunwayCritical
	default:
		return domain.RunwayFinite
	}
}
