package commands

import (
	"github.com/spf13/cobra"

	"elgamal64/internal/domain"
)

type decryptResult struct {
	M uint64 `json:"m"`
}

// decryptCmd recovers m from (a, b) with private key x.
func decryptCmd() *cobra.Command {
	var p, x uint64
	var ct domain.Ciphertext
	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a cipher text (a, b) with private key x",
		Long: `Decrypt a cipher text (a, b) with private key x.

Cipher texts are not authenticated: a pair that was not produced for this
key still decrypts, to an unrelated value in [0, p).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !appCtx.Params.IsPrime(p) {
				return invalidModulus(p)
			}
			m := appCtx.Cipher.Decrypt(cmd.Context(), p, x, ct)
			return render(cmd, decryptResult{M: m}, field{"decrypted message m", m})
		},
	}
	cmd.Flags().Uint64Var(&p, "p", 0, "prime modulus")
	cmd.Flags().Uint64Var(&x, "x", 0, "private key")
	cmd.Flags().Uint64Var(&ct.A, "a", 0, "first cipher text component")
	cmd.Flags().Uint64Var(&ct.B, "b", 0, "second cipher text component")
	markRequired(cmd, "p", "x", "a", "b")
	return cmd
}
