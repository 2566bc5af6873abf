package common

import (
	"fmt"
	"math"
	"math/big"
)

func checkedAdd(x, y int64) (int64, error) {
	var v big.Int
	v.Add(big.NewInt(x), big.NewInt(y))
	return bigInt64(&v, "add", x, y)
}

func checkedSub(x, y int64) (int64, error) {
	var v big.Int
	v.Sub(big.NewInt(x), big.NewInt(y))
	return bigInt64(&v, "sub", x, y)
}

func checkedMul(x, y int64) (int64, error) {
	var v big.Int
	v.Mul(big.NewInt(x), big.NewInt(y))
	return bigInt64(&v, "mul", x, y)
}

func checkedNeg(x int64) (int64, error) {
	if x == math.MinInt64 {
		return 0, fmt.Errorf("neg %d: %w", x, ErrOverflow)
	}
	return -x, nil
}

func checkedPow(x int64, n int) (int64, error) {
	switch {
	case n == 0:
		return 1, nil
	case x == 0 || x == 1:
		return x, nil
	case x == -1:
		if n%2 == 0 {
			return 1, nil
		}
		return -1, nil
	case n < 0 || n >= 64:
		return 0, fmt.Errorf("pow %d %d: %w", x, n, ErrOverflow)
	}
	var v big.Int
	v.Exp(big.NewInt(x), big.NewInt(int64(n)), nil)
	return bigInt64(&v, "pow", x, int64(n))
}

func bigInt64(v *big.Int, op string, x, y int64) (int64, error) {
	if !v.IsInt64() {
		return 0, fmt.Errorf("%s %d %d: %w", op, x, y, ErrOverflow)
	}
	return v.Int64(), nil
}

// floorDivMod rounds the quotient toward negative infinity, so the
// remainder always carries the sign of y. y must not be 0.
func floorDivMod(x, y int64) (q, m int64) {
	q, m = x/y, x%y
	if m != 0 && (m < 0) != (y < 0) {
		q--
		m += y
	}
	return
}

func absUint64(x int64) uint64 {
	if x < 0 {
		return uint64(-(x + 1)) + 1
	}
	return uint64(x)
}
