package commands

import (
	"github.com/spf13/cobra"

	"elgamal64/internal/domain"
)

type keygenResult struct {
	domain.PublicKey
	X           uint64             `json:"x"`
	Fingerprint domain.Fingerprint `json:"fingerprint"`
}

// keygenCmd validates (p, g) and prints a fresh key pair. This is the only
// command that ever prints a private key.
func keygenCmd() *cobra.Command {
	var p, g uint64
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a private/public key pair for prime p and primitive root g",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := appCtx.Params.Validate(cmd.Context(), p, g)
			if err != nil {
				return err
			}
			kp, fp, err := appCtx.Keys.GenerateKeys(cmd.Context(), params.P, params.G)
			if err != nil {
				return err
			}
			res := keygenResult{
				PublicKey:   domain.PublicKey{Params: params, Y: kp.Y},
				X:           kp.X,
				Fingerprint: fp,
			}
			return render(cmd, res,
				field{"private key x", kp.X},
				field{"public key y", kp.Y},
				field{"fingerprint", fp},
			)
		},
	}
	cmd.Flags().Uint64Var(&p, "p", 0, "prime modulus")
	cmd.Flags().Uint64Var(&g, "g", 0, "primitive root modulo p")
	markRequired(cmd, "p", "g")
	return cmd
}
