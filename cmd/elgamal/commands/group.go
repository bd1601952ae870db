package commands

import (
	"github.com/spf13/cobra"

	"elgamal64/internal/elgamal"
)

// groupCmd draws a safe-prime modulus and generator for keygen.
func groupCmd() *cobra.Command {
	var bits int
	cmd := &cobra.Command{
		Use:   "group",
		Short: "Generate a random safe prime p and primitive root g",
		RunE: func(cmd *cobra.Command, args []string) error {
			grp, err := appCtx.Params.GenerateGroup(cmd.Context(), bits)
			if err != nil {
				return err
			}
			return render(cmd, grp,
				field{"prime p", grp.P},
				field{"primitive root g", grp.G},
			)
		},
	}
	cmd.Flags().IntVar(&bits, "bits", elgamal.MaxGroupBits, "bit length of p")
	return cmd
}
