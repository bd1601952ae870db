package params_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elgamal64/internal/crypto"
	"elgamal64/internal/domain"
	"elgamal64/internal/elgamal"
	"elgamal64/internal/logging"
	"elgamal64/internal/primality"
	"elgamal64/internal/services/params"
)

func newService(t *testing.T, st primality.Strategy) *params.Service {
	t.Helper()
	fn, err := st.Func()
	require.NoError(t, err)
	scheme := elgamal.New(crypto.NewSeededSource([32]byte{}), elgamal.WithPrimality(fn))
	return params.New(scheme, fn, logging.Discard())
}

func TestValidate(t *testing.T) {
	svc := newService(t, primality.StrategyMillerRabin)
	ctx := context.Background()

	got, err := svc.Validate(ctx, 11, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.Params{P: 11, G: 2}, got)

	for _, c := range [][2]uint64{{15, 2}, {11, 3}, {3, 2}} {
		_, err := svc.Validate(ctx, c[0], c[1])
		assert.True(t, errors.Is(err, elgamal.ErrInvalidParameters), "%v: %v", c, err)
	}
}

func TestIsPrimeAndRoot(t *testing.T) {
	svc := newService(t, primality.StrategyTrialDivision)
	assert.True(t, svc.IsPrime(17))
	assert.False(t, svc.IsPrime(15))
	assert.True(t, svc.IsPrimitiveRoot(11, 2))
	assert.False(t, svc.IsPrimitiveRoot(11, 3))
	assert.False(t, svc.IsPrimitiveRoot(15, 2))
}

func TestPrimitiveRoots(t *testing.T) {
	svc := newService(t, primality.StrategyBailliePSW)
	ctx := context.Background()

	roots, err := svc.PrimitiveRoots(ctx, 11, 0)
	require.NoError(t, err)
	assert.Equal(t, []uint64{2, 6, 7, 8}, roots)

	roots, err = svc.PrimitiveRoots(ctx, math.MaxUint64-58, 3)
	require.NoError(t, err)
	assert.Len(t, roots, 3)
	assert.Equal(t, uint64(2), roots[0])

	_, err = svc.PrimitiveRoots(ctx, 12, 0)
	assert.True(t, errors.Is(err, elgamal.ErrInvalidParameters))

	_, err = svc.PrimitiveRoots(ctx, math.MaxUint64-58, 0)
	assert.True(t, errors.Is(err, params.ErrLimitRequired))
}

func TestPrimes(t *testing.T) {
	svc := newService(t, primality.StrategyMillerRabin)
	ctx := context.Background()

	got, err := svc.Primes(ctx, 90, 110)
	require.NoError(t, err)
	assert.Equal(t, []uint64{97, 101, 103, 107, 109}, got)

	got, err = svc.Primes(ctx, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []uint64{2, 3, 5, 7}, got)

	got, err = svc.Primes(ctx, 4294967290, 4294967320)
	require.NoError(t, err)
	assert.Equal(t, []uint64{4294967291, 4294967311}, got)

	got, err = svc.Primes(ctx, 10, 9)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = svc.Primes(ctx, 0, params.MaxRangeWidth)
	assert.True(t, errors.Is(err, params.ErrRangeTooWide))
}

func TestGenerateGroup(t *testing.T) {
	svc := newService(t, primality.StrategyMillerRabin)
	ctx := context.Background()

	grp, err := svc.GenerateGroup(ctx, 40)
	require.NoError(t, err)
	_, err = svc.Validate(ctx, grp.P, grp.G)
	require.NoError(t, err)
	assert.True(t, grp.P >= 1<<39 && grp.P < 1<<40, "p=%d", grp.P)

	_, err = svc.GenerateGroup(ctx, 65)
	assert.True(t, errors.Is(err, elgamal.ErrInvalidParameters))
}
