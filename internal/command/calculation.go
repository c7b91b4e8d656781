package command

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/govalues/annuity"
	"github.com/govalues/decimal"
	"github.com/govalues/money"
)

// Formula names
const (
	FuncPMT  = "pmt"
	FuncFV   = "fv"
	FuncIPMT = "ipmt"
	FuncPPMT = "ppmt"
)

// minRate is the smallest positive rate a decimal can hold.
const minRate = 1e-19

var (
	errUnknownFunc   = errors.New("unknown formula")
	errRateUnderflow = errors.New("rate is too small for a decimal")
)

// Calculation is a single formula evaluation.
// Fields that a formula does not use are ignored.
type Calculation struct {
	Name string         `yaml:"name" toml:"name"`
	Func string         `yaml:"func" toml:"func"`
	Rate float64        `yaml:"rate" toml:"rate"`
	Per  int            `yaml:"per" toml:"per"`
	Nper int            `yaml:"nper" toml:"nper"`
	PV   float64        `yaml:"pv" toml:"pv"`
	FV   float64        `yaml:"fv" toml:"fv"`
	PMT  float64        `yaml:"pmt" toml:"pmt"`
	When annuity.Timing `yaml:"when" toml:"when"`
	// Curr is an optional ISO 4217 currency code.
	// When set, the result is an amount rounded to the scale of the currency.
	Curr string `yaml:"curr" toml:"curr"`
}

// Float64 evaluates the formula with float64 arithmetic.
func (c Calculation) Float64() (float64, error) {
	switch strings.ToLower(c.Func) {
	case FuncPMT:
		return annuity.PMT(c.Rate, c.Nper, c.PV, c.FV, c.When), nil
	case FuncFV:
		return annuity.FV(c.Rate, c.Nper, c.PMT, c.PV, c.When), nil
	case FuncIPMT:
		return annuity.IPMT(c.Rate, c.Per, c.Nper, c.PV, c.FV, c.When), nil
	case FuncPPMT:
		return annuity.PPMT(c.Rate, c.Per, c.Nper, c.PV, c.FV, c.When), nil
	}
	return 0, fmt.Errorf("%q: %w", c.Func, errUnknownFunc)
}

// Amount evaluates the formula with amounts denominated in c.Curr.
func (c Calculation) Amount() (money.Amount, error) {
	if c.Rate != 0 && math.Abs(c.Rate) < minRate {
		return money.Amount{}, fmt.Errorf("converting rate %v: %w", c.Rate, errRateUnderflow)
	}
	rate, err := decimal.NewFromFloat64(c.Rate)
	if err != nil {
		return money.Amount{}, fmt.Errorf("converting rate: %w", err)
	}
	pv, err := money.NewAmountFromFloat64(c.Curr, c.PV)
	if err != nil {
		return money.Amount{}, fmt.Errorf("converting present value: %w", err)
	}
	fv, err := money.NewAmountFromFloat64(c.Curr, c.FV)
	if err != nil {
		return money.Amount{}, fmt.Errorf("converting future value: %w", err)
	}
	pmt, err := money.NewAmountFromFloat64(c.Curr, c.PMT)
	if err != nil {
		return money.Amount{}, fmt.Errorf("converting payment: %w", err)
	}
	switch strings.ToLower(c.Func) {
	case FuncPMT:
		return annuity.Payment(rate, c.Nper, pv, fv, c.When)
	case FuncFV:
		return annuity.FutureValue(rate, c.Nper, pmt, pv, c.When)
	case FuncIPMT:
		return annuity.InterestPayment(rate, c.Per, c.Nper, pv, fv, c.When)
	case FuncPPMT:
		return annuity.PrincipalPayment(rate, c.Per, c.Nper, pv, fv, c.When)
	}
	return money.Amount{}, fmt.Errorf("%q: %w", c.Func, errUnknownFunc)
}

// Eval evaluates the formula and formats the result.
// Floats are formatted in the shortest form that round-trips,
// amounts are formatted as "USD -1028.61".
// Finite is false for NaN and infinite floats.
func (c Calculation) Eval() (res string, finite bool, err error) {
	if c.Curr != "" {
		a, err := c.Amount()
		if err != nil {
			return "", false, err
		}
		return a.String(), true, nil
	}
	f, err := c.Float64()
	if err != nil {
		return "", false, err
	}
	finite = !math.IsNaN(f) && !math.IsInf(f, 0)
	return strconv.FormatFloat(f, 'g', -1, 64), finite, nil
}
