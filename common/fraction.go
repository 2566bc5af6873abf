package common

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"
)

const Precision = 8

var (
	Zero Fraction
	One  Fraction
)

func init() {
	Zero = MustFraction(0, 1)
	One = MustFraction(1, 1)
}

// Fraction is an exact rational value. It is never reduced to lowest
// terms, and the denominator of a constructed value is always positive.
// The zero value is not a valid fraction.
type Fraction struct {
	num int64
	den int64
}

func NewFraction(num, den int64) (Fraction, error) {
	if den == 0 {
		return Fraction{}, fmt.Errorf("fraction %d/%d denominator is zero: %w", num, den, ErrInvalidArgument)
	}
	if den < 0 {
		n, err := checkedNeg(num)
		if err != nil {
			return Fraction{}, err
		}
		d, err := checkedNeg(den)
		if err != nil {
			return Fraction{}, err
		}
		num, den = n, d
	}
	return Fraction{num: num, den: den}, nil
}

func MustFraction(num, den int64) Fraction {
	f, err := NewFraction(num, den)
	if err != nil {
		panic(err)
	}
	return f
}

func (x Fraction) Numerator() int64 {
	return x.num
}

func (x Fraction) Denominator() int64 {
	return x.den
}

func (x Fraction) IsValid() bool {
	return x.den > 0
}

func (x Fraction) String() string {
	if x.den == 1 {
		return strconv.FormatInt(x.num, 10)
	}
	return fmt.Sprintf("%d/%d", x.num, x.den)
}

// MixedNumber divides the denominator by the numerator, with floor
// division, and renders "quotient remainder/numerator".
func (x Fraction) MixedNumber() (string, error) {
	if x.num == 0 {
		return "", fmt.Errorf("mixed number of %s: %w", x, ErrDivisionByZero)
	}
	q, r := floorDivMod(x.den, x.num)
	if r == 0 {
		return strconv.FormatInt(q, 10), nil
	}
	return fmt.Sprintf("%d %d/%d", q, r, x.num), nil
}

func (x Fraction) Float64() float64 {
	return float64(x.num) / float64(x.den)
}

func (x Fraction) Decimal(places int32) decimal.Decimal {
	if !x.IsValid() {
		return decimal.Zero
	}
	return decimal.New(x.num, 0).DivRound(decimal.New(x.den, 0), places)
}

func (x Fraction) StringFixed(places int32) string {
	return x.Decimal(places).StringFixed(places)
}

func (x Fraction) Add(y Fraction) (Fraction, error) {
	ad, cb, err := x.cross(y)
	if err != nil {
		return Fraction{}, err
	}
	bd, err := checkedMul(x.den, y.den)
	if err != nil {
		return Fraction{}, err
	}
	num, err := checkedAdd(ad, cb)
	if err != nil {
		return Fraction{}, err
	}
	return NewFraction(num, bd)
}

func (x Fraction) Sub(y Fraction) (Fraction, error) {
	ad, cb, err := x.cross(y)
	if err != nil {
		return Fraction{}, err
	}
	bd, err := checkedMul(x.den, y.den)
	if err != nil {
		return Fraction{}, err
	}
	num, err := checkedSub(ad, cb)
	if err != nil {
		return Fraction{}, err
	}
	return NewFraction(num, bd)
}

func (x Fraction) Mul(y Fraction) (Fraction, error) {
	if err := checkOperands(x, y); err != nil {
		return Fraction{}, err
	}
	num, err := checkedMul(x.num, y.num)
	if err != nil {
		return Fraction{}, err
	}
	den, err := checkedMul(x.den, y.den)
	if err != nil {
		return Fraction{}, err
	}
	return NewFraction(num, den)
}

func (x Fraction) Div(y Fraction) (Fraction, error) {
	if err := checkOperands(x, y); err != nil {
		return Fraction{}, err
	}
	if y.num == 0 {
		return Fraction{}, fmt.Errorf("divide %s by %s: %w", x, y, ErrInvalidArgument)
	}
	num, err := checkedMul(x.num, y.den)
	if err != nil {
		return Fraction{}, err
	}
	den, err := checkedMul(x.den, y.num)
	if err != nil {
		return Fraction{}, err
	}
	return NewFraction(num, den)
}

// Pow raises both terms to n. A negative n swaps the terms before raising
// them, and the constructor moves the sign back to the numerator.
func (x Fraction) Pow(n int) (Fraction, error) {
	if !x.IsValid() {
		return Fraction{}, fmt.Errorf("pow base %d/%d: %w", x.num, x.den, ErrTypeMismatch)
	}
	num, den := x.num, x.den
	if n < 0 {
		num, den = den, num
		n = -n
	}
	pn, err := checkedPow(num, n)
	if err != nil {
		return Fraction{}, err
	}
	pd, err := checkedPow(den, n)
	if err != nil {
		return Fraction{}, err
	}
	return NewFraction(pn, pd)
}

func (x Fraction) Neg() (Fraction, error) {
	num, err := checkedNeg(x.num)
	if err != nil {
		return Fraction{}, err
	}
	return NewFraction(num, x.den)
}

func (x Fraction) Abs() (Fraction, error) {
	num, den := x.num, x.den
	var err error
	if num < 0 {
		if num, err = checkedNeg(num); err != nil {
			return Fraction{}, err
		}
	}
	if den < 0 {
		if den, err = checkedNeg(den); err != nil {
			return Fraction{}, err
		}
	}
	return NewFraction(num, den)
}

// Cmp compares x*y.den against y*x.den, which orders fractions by value
// regardless of how they are reduced. The products are never narrowed, so
// any two valid fractions compare.
func (x Fraction) Cmp(y Fraction) (int, error) {
	if err := checkOperands(x, y); err != nil {
		return 0, err
	}
	var ad, cb big.Int
	ad.Mul(big.NewInt(x.num), big.NewInt(y.den))
	cb.Mul(big.NewInt(y.num), big.NewInt(x.den))
	return ad.Cmp(&cb), nil
}

func (x Fraction) Equal(y Fraction) (bool, error) {
	c, err := x.Cmp(y)
	return err == nil && c == 0, err
}

func (x Fraction) NotEqual(y Fraction) (bool, error) {
	c, err := x.Cmp(y)
	return err == nil && c != 0, err
}

func (x Fraction) Less(y Fraction) (bool, error) {
	c, err := x.Cmp(y)
	return err == nil && c < 0, err
}

func (x Fraction) LessOrEqual(y Fraction) (bool, error) {
	c, err := x.Cmp(y)
	return err == nil && c <= 0, err
}

func (x Fraction) Greater(y Fraction) (bool, error) {
	c, err := x.Cmp(y)
	return err == nil && c > 0, err
}

func (x Fraction) GreaterOrEqual(y Fraction) (bool, error) {
	c, err := x.Cmp(y)
	return err == nil && c >= 0, err
}

func (x Fraction) IsZero() bool {
	return x.num == 0
}

func (x Fraction) IsInteger() bool {
	if !x.IsValid() {
		return false
	}
	if x.den == 1 {
		return true
	}
	_, m := floorDivMod(x.num, x.den)
	return m == 0
}

func (x Fraction) IsProper() bool {
	return absUint64(x.num) < absUint64(x.den)
}

// IsUnit looks at the stored numerator only, so an unreduced 2/6 is not a
// unit fraction.
func (x Fraction) IsUnit() bool {
	return x.num == 1
}

// IsAdjacentTo reports whether |x - y| is stored exactly as 4/16.
func (x Fraction) IsAdjacentTo(y Fraction) (bool, error) {
	d, err := x.Sub(y)
	if err != nil {
		return false, err
	}
	d, err = d.Abs()
	if err != nil {
		return false, err
	}
	return d.num == 4 && d.den == 16, nil
}

func (x Fraction) cross(y Fraction) (ad, cb int64, err error) {
	if err = checkOperands(x, y); err != nil {
		return
	}
	if ad, err = checkedMul(x.num, y.den); err != nil {
		return
	}
	cb, err = checkedMul(y.num, x.den)
	return
}

func checkOperands(x, y Fraction) error {
	if !x.IsValid() {
		return fmt.Errorf("receiver %d/%d is not a fraction: %w", x.num, x.den, ErrTypeMismatch)
	}
	if !y.IsValid() {
		return fmt.Errorf("operand %d/%d is not a fraction: %w", y.num, y.den, ErrTypeMismatch)
	}
	return nil
}
