package annuity

import (
	"math"
	"math/big"
)

// powPrec is the number of mantissa bits used while computing the growth factor.
const powPrec = 256

// growth returns (1 + rate)^n rounded to the nearest float64.
//
// The power is computed by repeated squaring with powPrec bits of precision,
// then rounded once.
// Special bases (zero, NaN, Inf) are delegated to [math.Pow].
func growth(rate float64, n int) float64 {
	base := 1 + rate
	if n == 0 {
		return 1
	}
	if base == 0 || math.IsNaN(base) || math.IsInf(base, 0) {
		return math.Pow(base, float64(n))
	}

	// Absolute value of n, without overflowing on math.MinInt
	e := uint64(n)
	if n < 0 {
		e = uint64(-(n + 1)) + 1
	}

	x := new(big.Float).SetPrec(powPrec).SetFloat64(base)
	z := new(big.Float).SetPrec(powPrec).SetInt64(1)
	for {
		if e&1 == 1 {
			z.Mul(z, x)
		}
		e >>= 1
		if e == 0 {
			break
		}
		x.Mul(x, x)
	}
	if n < 0 {
		one := new(big.Float).SetPrec(powPrec).SetInt64(1)
		z.Quo(one, z)
	}

	f, _ := z.Float64()
	return f
}

// PMT returns the payment per period that amortizes the present value pv
// to the future value fv over nper periods at the given rate per period.
// If when is [Begin], payments are due at the beginning of each period.
//
// PMT computes:
//
//	rate / ((1 + rate)^nper - 1) * -(pv * (1 + rate)^nper + fv)
//
// and divides the result by (1 + rate) for payments due at the beginning.
// If rate is zero, the result is NaN.
func PMT(rate float64, nper int, pv, fv float64, when Timing) float64 {
	g := growth(rate, nper)
	// Explicit conversions keep the products from being fused.
	pmt := rate / (g - 1) * -(float64(pv*g) + fv)
	if when == Begin {
		pmt /= 1 + rate
	}
	return pmt
}

// FV returns the value accumulated after nper periods, given the payment pmt
// per period, the present value pv and the rate per period.
// If when is [Begin], payments are due at the beginning of each period.
//
// FV computes:
//
//	-(((1 + rate)^nper - 1) / rate * pmt + pv * (1 + rate)^nper)
//
// where pmt is first multiplied by (1 + rate) for payments due at the beginning.
// If rate is zero, the result is NaN.
func FV(rate float64, nper int, pmt, pv float64, when Timing) float64 {
	if when == Begin {
		pmt *= 1 + rate
	}
	g := growth(rate, nper)
	return -(float64((g-1)/rate*pmt) + float64(pv*g))
}

// IPMT returns the interest portion of the payment due in period per,
// where periods are numbered from 1 to nper.
// The remaining parameters have the same meaning as in [PMT].
//
// The interest is charged on the balance projected at the start of the period,
// which is the future value after per - 1 payments of [PMT].
// Values of per outside of [1, nper] are not checked.
func IPMT(rate float64, per, nper int, pv, fv float64, when Timing) float64 {
	pmt := PMT(rate, nper, pv, fv, when)
	ipmt := float64(FV(rate, per-1, pmt, pv, when) * rate)
	if when == Begin {
		ipmt /= 1 + rate
	}
	return ipmt
}

// PPMT returns the principal portion of the payment due in period per.
// The parameters have the same meaning as in [IPMT].
//
// PPMT is the difference between [PMT] and [IPMT], so their sum
// always equals the payment.
func PPMT(rate float64, per, nper int, pv, fv float64, when Timing) float64 {
	return PMT(rate, nper, pv, fv, when) - IPMT(rate, per, nper, pv, fv, when)
}
