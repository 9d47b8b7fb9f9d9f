package consts

import (
	"math"
	"math/big"
	"testing"

	"github.com/zeebo/assert"
)

func primes(n int) (out []int64) {
	for c := int64(2); len(out) < n; c++ {
		if big.NewInt(c).ProbablyPrime(0) {
			out = append(out, c)
		}
	}
	return out
}

// frac32 returns the first 32 bits of the fractional part of the root of p.
func frac32(p int64, root func(*big.Float) *big.Float) uint32 {
	r := root(new(big.Float).SetPrec(256).SetInt64(p))
	i, _ := r.Int(nil)
	f := r.Sub(r, new(big.Float).SetInt(i))
	f.Mul(f, new(big.Float).SetFloat64(math.Exp2(32)))
	v, _ := f.Uint64()
	return uint32(v)
}

func sqrt(x *big.Float) *big.Float { return new(big.Float).SetPrec(256).Sqrt(x) }

// cbrt uses newton iteration since big.Float has no cube root.
func cbrt(x *big.Float) *big.Float {
	three := big.NewFloat(3).SetPrec(256)
	f, _ := x.Float64()
	z := new(big.Float).SetPrec(256).SetFloat64(math.Cbrt(f))
	for i := 0; i < 10; i++ {
		zz := new(big.Float).SetPrec(256).Mul(z, z)
		q := new(big.Float).SetPrec(256).Quo(x, zz)
		z.Mul(z, big.NewFloat(2).SetPrec(256))
		z.Add(z, q)
		z.Quo(z, three)
	}
	return z
}

func TestIV(t *testing.T) {
	for i, p := range primes(8) {
		assert.Equal(t, IV[i], frac32(p, sqrt))
	}
}

func TestK(t *testing.T) {
	for i, p := range primes(64) {
		assert.Equal(t, K[i], frac32(p, cbrt))
	}
}
