package calculation

import (
	"errors"
	"strings"

	"github.com/rpgo/runway-calculator/internal/domain"
	money "github.com/rpgo/runway-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

type assetState struct {
	name      string
	balance   decimal.Decimal
	growth    decimal.Decimal
	income    bool
	protected bool
	depleted  bool
}

type debtState struct {
	name          string
	balance       decimal.Decimal
	rate          decimal.Decimal
	payment       decimal.Decimal
	annual        decimal.Decimal
	paidOff       bool
	nonAmortizing bool
}

// simulationState is the snapshot carried from one simulated year to the next.
// advanceYear never mutates its input; it returns a fresh state.
type simulationState struct {
	year           int
	assets         []assetState
	debts          []debtState
	passiveIncome  decimal.Decimal
	baseExpenses   decimal.Decimal
	unfunded       decimal.Decimal
	shortfallNoted bool
}

func (s simulationState) clone() simulationState {
	next := s
	next.assets = append([]assetState(nil), s.assets...)
	next.debts = append([]debtState(nil), s.debts...)
	return next
}

func (s *simulationState) debtPayments() decimal.Decimal {
	total := decimal.Zero
	for _, d := range s.debts {
		if !d.paidOff {
			total = total.Add(d.annual)
		}
	}
	return total
}

func (s *simulationState) totals() (assets, debts decimal.Decimal) {
	assets, debts = decimal.Zero, decimal.Zero
	for _, a := range s.assets {
		assets = assets.Add(a.balance)
	}
	for _, d := range s.debts {
		if !d.paidOff {
			debts = debts.Add(d.balance)
		}
	}
	return assets, debts
}

// runPlan holds the per-run constants derived from the resolved assumptions.
type runPlan struct {
	currency  string
	inflation decimal.Decimal
	order     []string
	protected map[string]bool
	position  map[string]int // asset name -> index in simulationState.assets
}

func newRunPlan(snapshot *domain.Snapshot, a domain.Assumptions) runPlan {
	plan := runPlan{
		currency:  snapshot.Currency,
		inflation: a.Inflation(),
		order:     a.WithdrawalOrder,
		protected: make(map[string]bool, len(a.KeepAssets)),
		position:  make(map[string]int, len(snapshot.Assets)),
	}
	for _, name := range a.KeepAssets {
		plan.protected[name] = true
	}
	for i, asset := range snapshot.Assets {
		plan.position[asset.Name] = i
	}
	return plan
}

// nextFunded returns the first unprotected asset after name in the withdrawal order that still holds a balance.
func (p runPlan) nextFunded(s *simulationState, name string) (string, bool) {
	start := 0
	for i, n := range p.order {
		if n == name {
			start = i + 1
			break
		}
	}
	for _, n := range p.order[start:] {
		if p.protected[n] {
			continue
		}
		if s.assets[p.position[n]].balance.IsPositive() {
			return n, true
		}
	}
	return "", false
}

func (p runPlan) formatMoney(d decimal.Decimal) string {
	return money.NewMoneyFromDecimal(d).Format(p.currency)
}

// newSimulationState builds the year-0 state. Debts whose payment never covers
// their interest are flagged here and reported as year-0 milestones.
func newSimulationState(snapshot *domain.Snapshot, a domain.Assumptions, plan runPlan) (simulationState, []domain.Milestone) {
	state := simulationState{
		passiveIncome: money.Cents(snapshot.AnnualPassiveIncome),
		baseExpenses:  snapshot.AnnualExpenses,
		unfunded:      decimal.Zero,
	}
	for _, asset := range snapshot.Assets {
		balance := money.Cents(money.NonNegative(asset.Balance))
		state.assets = append(state.assets, assetState{
			name:      asset.Name,
			balance:   balance,
			growth:    a.GrowthRates[asset.Name],
			income:    asset.IncomeGenerating(),
			protected: plan.protected[asset.Name],
			depleted:  !balance.IsPositive(),
		})
	}

	var milestones []domain.Milestone
	for _, debt := range snapshot.Debts {
		ds := debtState{
			name:    debt.Name,
			balance: money.Cents(money.NonNegative(debt.Balance)),
			rate:    debt.AnnualRate,
			payment: debt.MonthlyPayment,
			annual:  debt.AnnualPayment(),
			paidOff: !debt.Balance.IsPositive(),
		}
		if !ds.paidOff {
			var nae *NonAmortizingError
			if _, err := CalculateDebtPayoff(ds.balance, ds.rate, ds.payment); errors.As(err, &nae) {
				ds.nonAmortizing = true
				milestones = append(milestones, domain.Milestone{
					Year:   0,
					Event:  debt.Name + " never pays off",
					Impact: "Payment short of monthly interest by " + plan.formatMoney(nae.Shortfall),
				})
			}
		}
		state.debts = append(state.debts, ds)
	}
	return state, milestones
}

// baselineRecord reports the snapshot as year 0 without withdrawing, growing or amortizing anything.
func baselineRecord(state simulationState, milestones []domain.Milestone) domain.YearRecord {
	expenses := money.Cents(state.baseExpenses)
	debtPayments := money.Cents(state.debtPayments())
	assets, debts := state.totals()
	return domain.YearRecord{
		Year:          0,
		NetWorth:      money.Cents(assets.Sub(debts)),
		TotalAssets:   money.Cents(assets),
		TotalDebts:    money.Cents(debts),
		Expenses:      expenses,
		DebtPayments:  debtPayments,
		PassiveIncome: state.passiveIncome,
		Gap:           expenses.Add(debtPayments).Sub(state.passiveIncome),
		Unfunded:      decimal.Zero,
		Notes:         notesFor(0, milestones),
	}
}

// advanceYear simulates one year from prev and returns the next state, the year's record and its milestones.
func advanceYear(prev simulationState, plan runPlan) (simulationState, domain.YearRecord, []domain.Milestone) {
	next := prev.clone()
	next.year = prev.year + 1
	year := next.year
	var milestones []domain.Milestone

	// inflation, debt service and the gap
	inflationFactor := decimal.NewFromInt(1).Add(plan.inflation).Pow(decimal.NewFromInt(int64(year)))
	expenses := money.Cents(next.baseExpenses.Mul(inflationFactor))
	debtPayments := money.Cents(next.debtPayments())
	passiveIncome := next.passiveIncome
	gap := expenses.Add(debtPayments).Sub(passiveIncome)

	preWithdrawal := make([]decimal.Decimal, len(next.assets))
	incomeCapital := decimal.Zero
	for i, a := range next.assets {
		preWithdrawal[i] = a.balance
		if a.income && a.balance.IsPositive() {
			incomeCapital = incomeCapital.Add(a.balance)
		}
	}

	// withdrawal waterfall
	ordered := make([]*AssetBalance, 0, len(plan.order))
	for _, name := range plan.order {
		ordered = append(ordered, &AssetBalance{Name: name, Balance: next.assets[plan.position[name]].balance})
	}
	withdrawals, err := Withdraw(gap, ordered, plan.protected)
	for _, ab := range ordered {
		next.assets[plan.position[ab.Name]].balance = ab.Balance
	}
	if errors.Is(err, ErrInsufficientAssets) {
		next.unfunded = next.unfunded.Add(withdrawals.Unfunded)
		if !next.shortfallNoted {
			next.shortfallNoted = true
			milestones = append(milestones, domain.Milestone{
				Year:   year,
				Event:  "Liquid assets exhausted",
				Impact: "Unfunded gap of " + plan.formatMoney(withdrawals.Unfunded),
			})
		}
	}

	// liquidated income-generating assets take their share of passive income with them
	if incomeCapital.IsPositive() {
		lostShare := decimal.Zero
		for i, a := range next.assets {
			if a.income && preWithdrawal[i].IsPositive() && a.balance.IsZero() {
				lostShare = lostShare.Add(preWithdrawal[i].Div(incomeCapital))
			}
		}
		if lostShare.IsPositive() {
			next.passiveIncome = money.Cents(money.NonNegative(next.passiveIncome.Sub(next.passiveIncome.Mul(lostShare))))
		}
	}

	// growth compounds on what remains
	for i := range next.assets {
		a := &next.assets[i]
		if a.balance.IsPositive() {
			a.balance = money.Cents(money.NonNegative(a.balance.Mul(decimal.NewFromInt(1).Add(a.growth))))
		}
	}

	// debts retired by this year's payments drop out from next year
	for i := range next.debts {
		d := &next.debts[i]
		if d.paidOff {
			continue
		}
		// payment <= interest: the balance can only hold or grow
		if d.nonAmortizing {
			d.balance = money.Cents(AmortizeYear(d.balance, d.rate, d.payment))
			continue
		}
		payoff, err := CalculateDebtPayoff(d.balance, d.rate, d.payment)
		if err == nil && payoff.PaysOffWithin(12) {
			d.paidOff = true
			d.balance = decimal.Zero
			milestones = append(milestones, domain.Milestone{
				Year:   year,
				Event:  d.name + " paid off",
				Impact: "Annual expenses reduced by " + plan.formatMoney(d.annual),
			})
			continue
		}
		d.balance = money.Cents(AmortizeYear(d.balance, d.rate, d.payment))
	}

	for i := range next.assets {
		a := &next.assets[i]
		if a.protected || a.depleted || a.balance.IsPositive() {
			continue
		}
		a.depleted = true
		m := domain.Milestone{Year: year, Event: a.name + " depleted"}
		if following, ok := plan.nextFunded(&next, a.name); ok {
			m.Impact = "Withdrawals now drawing from " + following
		}
		milestones = append(milestones, m)
	}

	assets, debts := next.totals()
	record := domain.YearRecord{
		Year:          year,
		NetWorth:      money.Cents(assets.Sub(debts).Sub(next.unfunded)),
		TotalAssets:   money.Cents(assets),
		TotalDebts:    money.Cents(debts),
		Expenses:      expenses,
		DebtPayments:  debtPayments,
		PassiveIncome: passiveIncome,
		Gap:           gap,
		Unfunded:      money.Cents(next.unfunded),
		Notes:         notesFor(year, milestones),
	}
	return next, record, milestones
}

func notesFor(year int, milestones []domain.Milestone) *string {
	var events []string
	for _, m := range milestones {
		if m.Year == year {
			events = append(events, m.Event)
		}
	}
	if len(events) == 0 {
		return nil
	}
	notes := strings.Join(events, "; ")
	return &notes
}
