package main

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rpgo/runway-calculator/internal/calculation"
)

func newPayoffCmd() *cobra.Command {
	var balance, rate, payment string
	cmd := &cobra.Command{
		Use:     "payoff",
		Short:   "Months and total interest to retire a single debt",
		Example: "  runway payoff --balance 280000 --rate 0.06 --payment 1800",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPayoff(cmd, balance, rate, payment)
		},
	}
	cmd.Flags().StringVar(&balance, "balance", "", "Outstanding balance")
	cmd.Flags().StringVar(&rate, "rate", "0", "Annual interest rate as a fraction (0.06 = 6%)")
	cmd.Flags().StringVar(&payment, "payment", "", "Monthly payment")
	_ = cmd.MarkFlagRequired("balance")
	_ = cmd.MarkFlagRequired("payment")
	return cmd
}

func runPayoff(cmd *cobra.Command, balanceArg, rateArg, paymentArg string) error {
	balance, err := parseAmount("balance", balanceArg)
	if err != nil {
		return err
	}
	rate, err := parseAmount("rate", rateArg)
	if err != nil {
		return err
	}
	payment, err := parseAmount("payment", paymentArg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	payoff, err := calculation.CalculateDebtPayoff(balance, rate, payment)
	var nae *calculation.NonAmortizingError
	if errors.As(err, &nae) {
		fmt.Fprintf(out, "Status:           %s\n", payoff.Status)
		fmt.Fprintf(out, "Monthly interest: %s\n", nae.MonthlyInterest.StringFixed(2))
		fmt.Fprintf(out, "Shortfall:        %s per month\n", nae.Shortfall.StringFixed(2))
		return err
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Status:           %s\n", payoff.Status)
	fmt.Fprintf(out, "Months remaining: %d\n", payoff.MonthsRemaining)
	fmt.Fprintf(out, "Years remaining:  %s\n", payoff.YearsRemaining.StringFixed(1))
	fmt.Fprintf(out, "Total interest:   %s\n", payoff.TotalInterest.StringFixed(2))
	fmt.Fprintf(out, "Total paid:       %s\n", payoff.TotalPaid.StringFixed(2))
	return nil
}

func parseAmount(name, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid --%s %q: %w", name, value, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: --%s cannot be negative", calculation.ErrInvalidInput, name)
	}
	return d, nil
}
