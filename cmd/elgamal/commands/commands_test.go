package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elgamal64/internal/domain"
	"elgamal64/internal/elgamal"
)

// execute runs a fresh command tree with an isolated home directory and
// returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func executeJSON(t *testing.T, v any, args ...string) {
	t.Helper()
	out, err := execute(t, append([]string{"--json"}, args...)...)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), v), out)
}

func TestKeygenEncryptDecryptRoundTrip(t *testing.T) {
	var keys keygenResult
	executeJSON(t, &keys, "keygen", "--p", "2311", "--g", "3")
	require.EqualValues(t, 2311, keys.P)
	require.EqualValues(t, 3, keys.G)
	require.Len(t, string(keys.Fingerprint), 20)

	var ct domain.Ciphertext
	executeJSON(t, &ct, "encrypt", "--p", "2311", "--g", "3", "--y", u(keys.Y), "--m", "1234")

	var dec decryptResult
	executeJSON(t, &dec, "decrypt", "--p", "2311", "--x", u(keys.X), "--a", u(ct.A), "--b", u(ct.B))
	assert.EqualValues(t, 1234, dec.M)
}

func TestGroupThenKeygen(t *testing.T) {
	var grp domain.Params
	executeJSON(t, &grp, "group", "--bits", "24")
	require.True(t, grp.P >= 1<<23 && grp.P < 1<<24, "p=%d", grp.P)

	var keys keygenResult
	executeJSON(t, &keys, "keygen", "--p", u(grp.P), "--g", u(grp.G))
	assert.Equal(t, grp, keys.Params)

	_, err := execute(t, "group", "--bits", "2")
	assert.True(t, errors.Is(err, elgamal.ErrInvalidParameters), "got %v", err)
}

func TestDecryptKnownCiphertext(t *testing.T) {
	out, err := execute(t, "decrypt", "--p", "11", "--x", "3", "--a", "8", "--b", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "decrypted message m:")
	assert.Contains(t, out, " 7\n")
}

func TestCheckPrime(t *testing.T) {
	var res checkResult
	executeJSON(t, &res, "check", "prime", "17")
	assert.True(t, res.Result)

	executeJSON(t, &res, "check", "prime", "561")
	assert.False(t, res.Result)

	_, err := execute(t, "check", "prime", "seventeen")
	assert.Error(t, err)
}

func TestCheckRoot(t *testing.T) {
	var res checkResult
	executeJSON(t, &res, "check", "root", "11", "2")
	assert.True(t, res.Result)

	res = checkResult{}
	executeJSON(t, &res, "check", "root", "11", "3")
	assert.False(t, res.Result)

	_, err := execute(t, "check", "root", "12", "5")
	assert.True(t, errors.Is(err, elgamal.ErrInvalidParameters), "got %v", err)
}

func TestInvalidParametersRejected(t *testing.T) {
	cases := [][]string{
		{"keygen", "--p", "12", "--g", "5"},
		{"keygen", "--p", "11", "--g", "3"},
		{"encrypt", "--p", "11", "--g", "3", "--y", "5", "--m", "4"},
		{"decrypt", "--p", "15", "--x", "3", "--a", "8", "--b", "9"},
	}
	for _, args := range cases {
		_, err := execute(t, args...)
		assert.True(t, errors.Is(err, elgamal.ErrInvalidParameters), "%v: got %v", args, err)
	}
}

func TestEncryptMessageTooLarge(t *testing.T) {
	_, err := execute(t, "encrypt", "--p", "11", "--g", "2", "--y", "8", "--m", "11")
	assert.True(t, errors.Is(err, elgamal.ErrMessageTooLarge), "got %v", err)
}

func TestRequiredFlags(t *testing.T) {
	_, err := execute(t, "keygen", "--p", "11")
	assert.Error(t, err)
}

func TestRootsAndPrimes(t *testing.T) {
	var roots rootsResult
	executeJSON(t, &roots, "roots", "11", "--limit", "0")
	assert.Equal(t, []uint64{2, 6, 7, 8}, roots.Roots)

	executeJSON(t, &roots, "roots", "997", "--limit", "3")
	assert.Len(t, roots.Roots, 3)

	var primes primesResult
	executeJSON(t, &primes, "primes", "10", "30")
	assert.Equal(t, []uint64{11, 13, 17, 19, 23, 29}, primes.Primes)
}

func TestPrimalityStrategyFlag(t *testing.T) {
	for _, name := range []string{"trial-division", "miller-rabin", "baillie-psw"} {
		var res checkResult
		executeJSON(t, &res, "--primality", name, "check", "prime", "1000003")
		assert.True(t, res.Result, name)
	}
	_, err := execute(t, "--primality", "coin-flip", "check", "prime", "7")
	assert.Error(t, err)
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("ELGAMAL_JSON", "true")
	out, err := execute(t, "check", "prime", "7")
	require.NoError(t, err)
	var res checkResult
	require.NoError(t, json.Unmarshal([]byte(out), &res), out)
	assert.True(t, res.Result)
}

func TestSelftest(t *testing.T) {
	var res selftestResult
	executeJSON(t, &res, "selftest", "--count", "300", "--chunk", "64")
	assert.Equal(t, 300, res.Count)
	assert.Zero(t, res.Failures)

	out, err := execute(t, "selftest", "--p", "2311", "--g", "3", "--count", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "failures:")

	_, err = execute(t, "selftest", "--profile", "disk")
	assert.Error(t, err)
}

func u(n uint64) string {
	b, _ := json.Marshal(n)
	return string(b)
}
