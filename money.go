package annuity

import (
	"errors"
	"fmt"
	"math"

	"github.com/govalues/decimal"
	"github.com/govalues/money"
)

var (
	errCurrencyMismatch = errors.New("currency mismatch")
	errNotFinite        = errors.New("result is not a finite number")
	errRateOverflow     = errors.New("rate cannot be represented as float64")
)

// rateFloat64 converts a decimal rate to float64.
func rateFloat64(rate decimal.Decimal) (float64, error) {
	f, ok := rate.Float64()
	if !ok {
		return 0, fmt.Errorf("converting %v: %w", rate, errRateOverflow)
	}
	return f, nil
}

// amountFloat64 converts an amount to float64.
func amountFloat64(a money.Amount) (float64, error) {
	f, ok := a.Float64()
	if !ok {
		return 0, fmt.Errorf("converting %v: amount cannot be represented as float64", a)
	}
	return f, nil
}

// newAmount converts a float result to an amount rounded to the scale of the currency.
func newAmount(curr money.Currency, f float64) (money.Amount, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return money.Amount{}, fmt.Errorf("converting %v: %w", f, errNotFinite)
	}
	a, err := money.NewAmountFromFloat64(curr.Code(), f)
	if err != nil {
		return money.Amount{}, err
	}
	return a.RoundToCurr(), nil
}

// floats converts the rate and a pair of amounts denominated in the same currency to float64.
func floats(rate decimal.Decimal, a, b money.Amount) (r, x, y float64, err error) {
	if !a.SameCurr(b) {
		return 0, 0, 0, fmt.Errorf("%v and %v: %w", a, b, errCurrencyMismatch)
	}
	r, err = rateFloat64(rate)
	if err != nil {
		return 0, 0, 0, err
	}
	x, err = amountFloat64(a)
	if err != nil {
		return 0, 0, 0, err
	}
	y, err = amountFloat64(b)
	if err != nil {
		return 0, 0, 0, err
	}
	return r, x, y, nil
}

// Payment is like [PMT] but operates on amounts.
// The result is denominated in the currency of pv and rounded to the scale
// of the currency using [rounding half to even] (banker's rounding).
//
// Payment returns an error if:
//   - pv and fv are denominated in different currencies;
//   - the result is not a finite number, for example, when the rate is zero;
//   - the integer part of the result does not fit into an amount.
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func Payment(rate decimal.Decimal, nper int, pv, fv money.Amount, when Timing) (money.Amount, error) {
	r, p, f, err := floats(rate, pv, fv)
	if err != nil {
		return money.Amount{}, fmt.Errorf("computing payment: %w", err)
	}
	a, err := newAmount(pv.Curr(), PMT(r, nper, p, f, when))
	if err != nil {
		return money.Amount{}, fmt.Errorf("computing payment: %w", err)
	}
	return a, nil
}

// FutureValue is like [FV] but operates on amounts.
// The result is denominated in the currency of pv and rounded to the scale
// of the currency.
//
// FutureValue returns an error if:
//   - pmt and pv are denominated in different currencies;
//   - the result is not a finite number, for example, when the rate is zero;
//   - the integer part of the result does not fit into an amount.
func FutureValue(rate decimal.Decimal, nper int, pmt, pv money.Amount, when Timing) (money.Amount, error) {
	r, m, p, err := floats(rate, pmt, pv)
	if err != nil {
		return money.Amount{}, fmt.Errorf("computing future value: %w", err)
	}
	a, err := newAmount(pv.Curr(), FV(r, nper, m, p, when))
	if err != nil {
		return money.Amount{}, fmt.Errorf("computing future value: %w", err)
	}
	return a, nil
}

// InterestPayment is like [IPMT] but operates on amounts.
// The result is denominated in the currency of pv and rounded to the scale
// of the currency.
// See [Payment] for the list of errors.
func InterestPayment(rate decimal.Decimal, per, nper int, pv, fv money.Amount, when Timing) (money.Amount, error) {
	r, p, f, err := floats(rate, pv, fv)
	if err != nil {
		return money.Amount{}, fmt.Errorf("computing interest payment: %w", err)
	}
	a, err := newAmount(pv.Curr(), IPMT(r, per, nper, p, f, when))
	if err != nil {
		return money.Amount{}, fmt.Errorf("computing interest payment: %w", err)
	}
	return a, nil
}

// PrincipalPayment is like [PPMT] but operates on amounts.
// It is the difference between the rounded [Payment] and the rounded
// [InterestPayment], so the three amounts always add up exactly.
// See [Payment] for the list of errors.
func PrincipalPayment(rate decimal.Decimal, per, nper int, pv, fv money.Amount, when Timing) (money.Amount, error) {
	pmt, err := Payment(rate, nper, pv, fv, when)
	if err != nil {
		return money.Amount{}, fmt.Errorf("computing principal payment: %w", err)
	}
	ipmt, err := InterestPayment(rate, per, nper, pv, fv, when)
	if err != nil {
		return money.Amount{}, fmt.Errorf("computing principal payment: %w", err)
	}
	ppmt, err := pmt.Sub(ipmt)
	if err != nil {
		return money.Amount{}, fmt.Errorf("computing principal payment: %w", err)
	}
	return ppmt, nil
}
