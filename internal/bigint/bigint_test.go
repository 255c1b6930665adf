package bigint_test

import (
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pappan12/DiceForge/internal/bigint"
)

// toBig converts the four-limb value to a math/big integer.
func toBig(b bigint.BigInt128) *big.Int {
	x := new(big.Int)
	for i := 3; i >= 0; i-- {
		x.Lsh(x, 32)
		x.Or(x, new(big.Int).SetUint64(b.Limbs[i]))
	}
	return x
}

func TestSquareKnownVector(t *testing.T) {
	b := bigint.New(5, 0, 0, 0)
	b.Square()
	require.Equal(t, [4]uint64{25, 0, 0, 0}, b.Limbs)

	b.Mod(7)
	require.Equal(t, [4]uint64{4, 0, 0, 0}, b.Limbs, "25 mod 7 = 4")
}

func TestSquareCarryPropagation(t *testing.T) {
	// (2^32 - 1)^2 = 0xFFFFFFFE00000001
	b := bigint.New(0xFFFFFFFF, 0, 0, 0)
	b.Square()
	require.Equal(t, [4]uint64{1, 0xFFFFFFFE, 0, 0}, b.Limbs)

	// (2^64 - 1)^2 = 2^128 - 2^65 + 1
	b = bigint.New(0xFFFFFFFF, 0xFFFFFFFF, 0, 0)
	b.Square()
	require.Equal(t, [4]uint64{1, 0, 0xFFFFFFFE, 0xFFFFFFFF}, b.Limbs)
}

func TestSquareTruncatesAt128(t *testing.T) {
	// (2^64)^2 = 2^128, which wraps to zero.
	b := bigint.New(0, 0, 1, 0)
	b.Square()
	require.Equal(t, [4]uint64{0, 0, 0, 0}, b.Limbs)
}

func TestModValueBelowModulusUntouched(t *testing.T) {
	b := bigint.New(5, 0, 0, 0)
	b.Mod(7)
	require.Equal(t, [4]uint64{5, 0, 0, 0}, b.Limbs)

	b = bigint.New(0xFFFFFFFF, 0x7FFFFFFF, 0, 0)
	before := b.Limbs
	b.Mod(^uint64(0))
	require.Equal(t, before, b.Limbs)
}

func TestModValueEqualModulus(t *testing.T) {
	b := bigint.New(7, 0, 0, 0)
	b.Mod(7)
	require.Equal(t, [4]uint64{0, 0, 0, 0}, b.Limbs)
}

func TestModClearsHighLimbs(t *testing.T) {
	b := bigint.New(0x12345678, 0x9ABCDEF0, 0xDEADBEEF, 0xCAFEBABE)
	b.Mod(1000003)
	require.Zero(t, b.Limbs[2])
	require.Zero(t, b.Limbs[3])
	require.Less(t, b.Limbs[1]<<32|b.Limbs[0], uint64(1000003))
}

func TestSquareDifferential(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	mod128 := new(big.Int).Lsh(big.NewInt(1), 128)
	for trial := 0; trial < 10000; trial++ {
		b := bigint.New(
			uint64(rng.Uint32()), uint64(rng.Uint32()),
			uint64(rng.Uint32()), uint64(rng.Uint32()),
		)
		want := toBig(b)
		want.Mul(want, want).Mod(want, mod128)

		b.Square()
		require.Zero(t, toBig(b).Cmp(want), "trial %d", trial)
	}
}

func TestModDifferential(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for trial := 0; trial < 10000; trial++ {
		b := bigint.New(
			uint64(rng.Uint32()), uint64(rng.Uint32()),
			uint64(rng.Uint32()), uint64(rng.Uint32()),
		)
		n := rng.Uint64()
		if n == 0 {
			n = 1
		}
		want := toBig(b)
		want.Mod(want, new(big.Int).SetUint64(n))

		b.Mod(n)
		require.Zero(t, toBig(b).Cmp(want), "trial %d mod %d", trial, n)

		for i, limb := range b.Limbs {
			require.Less(t, limb, uint64(1)<<32, "limb %d out of range", i)
		}
	}
}

func TestStringMostSignificantFirst(t *testing.T) {
	b := bigint.New(1, 2, 3, 4)
	require.Equal(t, "4 3 2 1", b.String())
}
