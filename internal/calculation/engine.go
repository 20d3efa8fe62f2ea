package calculation

import (
	"context"
	"fmt"

	"github.com/rpgo/runway-calculator/internal/domain"
)

// RunwayEngine runs runway projections. It holds no per-run state, so one
// engine may serve concurrent callers.
type RunwayEngine struct {
	Debug  bool // Enable per-year debug output
	Logger Logger
}

// NewRunwayEngine creates a new runway engine with a no-op logger
func NewRunwayEngine() *RunwayEngine {
	return &RunwayEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (ce *RunwayEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// Run simulates the snapshot forward year by year until net worth is exhausted
// or the horizon is reached. Unset assumptions are resolved to defaults first.
// Structural problems (unknown or duplicate names) abort with no partial result.
func (ce *RunwayEngine) Run(ctx context.Context, snapshot *domain.Snapshot, assumptions *domain.Assumptions) (*domain.ProjectionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, fmt.Errorf("%w: snapshot is required", ErrInvalidInput)
	}
	if assumptions == nil {
		assumptions = &domain.Assumptions{}
	}
	if err := ValidateInputs(snapshot, assumptions); err != nil {
		return nil, err
	}
	resolved := ResolveAssumptions(snapshot, *assumptions)
	if err := ValidateInputs(snapshot, &resolved); err != nil {
		return nil, err
	}

	plan := newRunPlan(snapshot, resolved)
	state, milestones := newSimulationState(snapshot, resolved, plan)
	baseline := baselineRecord(state, milestones)
	projection := []domain.YearRecord{baseline}
	ce.logYear(baseline)

	runway := ProjectionHorizon
	if baseline.IsDepleted() {
		runway = 0
	} else {
		for state.year < ProjectionHorizon {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			var record domain.YearRecord
			var events []domain.Milestone
			state, record, events = advanceYear(state, plan)
			projection = append(projection, record)
			milestones = append(milestones, events...)
			ce.logYear(record)
			if record.IsDepleted() {
				runway = state.year
				break
			}
		}
	}
	if milestones == nil {
		milestones = []domain.Milestone{}
	}

	status := ClassifyRunway(runway)
	ce.Logger.Infof("runway %d years (%s) across %d projection rows, starting net worth %s",
		runway, status, len(projection), snapshot.NetWorth().StringFixed(2))

	return &domain.ProjectionResult{
		Currency:     snapshot.Currency,
		Assumptions:  resolved,
		Projection:   projection,
		Milestones:   milestones,
		RunwayYears:  runway,
		RunwayStatus: status,
	}, nil
}

// RunScenarios runs every scenario of a configuration against its shared snapshot.
func (ce *RunwayEngine) RunScenarios(ctx context.Context, config *domain.Configuration) (*domain.ProjectionComparison, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: configuration is required", ErrInvalidInput)
	}
	scenarios := config.EffectiveScenarios()
	comparison := &domain.ProjectionComparison{
		Currency: config.Snapshot.Currency,
		Results:  make([]domain.ProjectionResult, 0, len(scenarios)),
	}
	for i := range scenarios {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result, err := ce.Run(ctx, &config.Snapshot, &scenarios[i].Assumptions)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", scenarios[i].Name, err)
		}
		result.Name = scenarios[i].Name
		comparison.Results = append(comparison.Results, *result)
	}
	return comparison, nil
}

func (ce *RunwayEngine) logYear(r domain.YearRecord) {
	if !ce.Debug {
		return
	}
	ce.Logger.Debugf("year %3d: net worth %s, assets %s, debts %s, expenses %s, passive %s, gap %s",
		r.Year, r.NetWorth.StringFixed(2), r.TotalAssets.StringFixed(2), r.TotalDebts.StringFixed(2),
		r.Expenses.StringFixed(2), r.PassiveIncome.StringFixed(2), r.Gap.StringFixed(2))
	if r.Notes != nil {
		ce.Logger.Debugf("          %s", *r.Notes)
	}
}
