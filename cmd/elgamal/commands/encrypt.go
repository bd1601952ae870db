package commands

import (
	"github.com/spf13/cobra"

	"elgamal64/internal/domain"
)

// encryptCmd encrypts m < p to the public key (p, g, y).
func encryptCmd() *cobra.Command {
	var pub domain.PublicKey
	var m uint64
	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt an integer m < p with public key y",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := appCtx.Params.Validate(cmd.Context(), pub.P, pub.G); err != nil {
				return err
			}
			ct, err := appCtx.Cipher.Encrypt(cmd.Context(), pub, m)
			if err != nil {
				return err
			}
			return render(cmd, ct, field{"cipher text (a, b)", ct})
		},
	}
	cmd.Flags().Uint64Var(&pub.P, "p", 0, "prime modulus")
	cmd.Flags().Uint64Var(&pub.G, "g", 0, "primitive root modulo p")
	cmd.Flags().Uint64Var(&pub.Y, "y", 0, "recipient public key")
	cmd.Flags().Uint64Var(&m, "m", 0, "message, 0 <= m < p")
	markRequired(cmd, "p", "g", "y", "m")
	return cmd
}
