package cipher_test

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
	"elgamal64/internal/services/cipher"
)

func setup(t *testing.T, p, g uint64, workers int) (*cipher.Service, domain.PublicKey, domain.KeyPair) {
	t.Helper()
	scheme := elgamal.New(crypto.NewSeededSource([32]byte{3}))
	kp, err := scheme.GenerateKeys(p, g)
	require.NoError(t, err)
	pub := domain.PublicKey{Params: domain.Params{P: p, G: g}, Y: kp.Y}
	return cipher.New(scheme, workers, logging.Discard()), pub, kp
}

func TestEncryptDecrypt(t *testing.T) {
	svc, pub, kp := setup(t, 11, 2, 1)
	ctx := context.Background()
	for m := uint64(0); m < 11; m++ {
		ct, err := svc.Encrypt(ctx, pub, m)
		require.NoError(t, err)
		assert.Equal(t, m, svc.Decrypt(ctx, pub.P, kp.X, ct))
	}

	_, err := svc.Encrypt(ctx, pub, 11)
	assert.True(t, errors.Is(err, elgamal.ErrMessageTooLarge))
}

func TestBatchRoundTrip(t *testing.T) {
	const p = math.MaxUint64 - 58
	svc, pub, kp := setup(t, p, 2, 4)
	ctx := context.Background()

	rng := crypto.NewSeededSource([32]byte{4})
	ms := make([]uint64, 1000)
	for i := range ms {
		ms[i] = rng.Uint64n(p)
	}
	cts, err := svc.EncryptBatch(ctx, pub, ms)
	require.NoError(t, err)
	require.Len(t, cts, len(ms))

	got, err := svc.DecryptBatch(ctx, p, kp.X, cts)
	require.NoError(t, err)
	assert.Equal(t, ms, got)
}

func TestBatchFailsOnLargeMessage(t *testing.T) {
	svc, pub, _ := setup(t, 11, 2, 0)
	cts, err := svc.EncryptBatch(context.Background(), pub, []uint64{1, 2, 30, 4})
	assert.True(t, errors.Is(err, elgamal.ErrMessageTooLarge))
	assert.Nil(t, cts)
}

func TestBatchHonoursCancellation(t *testing.T) {
	svc, pub, _ := setup(t, 11, 2, 2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.EncryptBatch(ctx, pub, make([]uint64, 100))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestEmptyBatch(t *testing.T) {
	svc, pub, kp := setup(t, 11, 2, 2)
	cts, err := svc.EncryptBatch(context.Background(), pub, nil)
	require.NoError(t, err)
	assert.Empty(t, cts)
	ms, err := svc.DecryptBatch(context.Background(), pub.P, kp.X, nil)
	require.NoError(t, err)
	assert.Empty(t, ms)
}
