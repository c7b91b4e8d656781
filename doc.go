/*
Package annuity implements closed-form annuity formulas: periodic payment,
future value, and the interest and principal portions of a payment.
The formulas follow the conventions of spreadsheet functions with the same
names (PMT, FV, IPMT, PPMT).

# Features

  - Pure functions without state, safe for concurrent use by multiple goroutines
  - Payments due at the end or at the beginning of each period
  - Interest and principal portions of any period without iterating a schedule
  - Currency-aware variants operating on [money.Amount] and [decimal.Decimal]

# Sign Convention

Cash paid out is negative and cash received is positive.
For example, a loan of 100,000 (received, positive) is repaid by negative payments:

	PMT(0.01, 360, 100000, 0, End) = -1028.6125969255042

# Optional Parameters

The future value and the payment timing are optional in spreadsheet formulas.
Here they are regular parameters whose zero values are the defaults:
a future value of 0 and [End].

# Precision

All float64 functions use IEEE 754 double precision arithmetic.
The growth factor (1 + rate)^nper is rounded to the nearest float64 once,
so results do not depend on the accuracy of [math.Pow] for large exponents.

# Errors

The float64 functions never return errors and never panic.
Degenerate inputs follow floating-point semantics instead.
For example, a zero rate produces 0 / 0 and the result is NaN.
Periods outside of [1, nper] are not checked either.

The currency-aware functions, such as [Payment], return an error if
the amounts are denominated in different currencies or if the result
is not a finite number and therefore cannot be represented as an amount.
*/
package annuity
