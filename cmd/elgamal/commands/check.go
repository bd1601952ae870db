package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"elgamal64/internal/elgamal"
)

type checkResult struct {
	N      uint64 `json:"n,omitempty"`
	P      uint64 `json:"p,omitempty"`
	G      uint64 `json:"g,omitempty"`
	Result bool   `json:"result"`
}

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate parameters before key generation",
	}
	cmd.AddCommand(checkPrimeCmd(), checkRootCmd())
	return cmd
}

func checkPrimeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prime <n>",
		Short: "Report whether n is prime",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseUint("n", args[0])
			if err != nil {
				return err
			}
			ok := appCtx.Params.IsPrime(n)
			return render(cmd, checkResult{N: n, Result: ok}, field{fmt.Sprintf("%d is prime", n), ok})
		},
	}
}

func checkRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "root <p> <g>",
		Short: "Report whether g is a primitive root modulo prime p",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parseUint("p", args[0])
			if err != nil {
				return err
			}
			g, err := parseUint("g", args[1])
			if err != nil {
				return err
			}
			if !appCtx.Params.IsPrime(p) {
				return invalidModulus(p)
			}
			ok := appCtx.Params.IsPrimitiveRoot(p, g)
			return render(cmd, checkResult{P: p, G: g, Result: ok},
				field{fmt.Sprintf("%d is a primitive root modulo %d", g, p), ok})
		},
	}
}

func invalidModulus(p uint64) error {
	return fmt.Errorf("%w: p=%d is not prime", elgamal.ErrInvalidParameters, p)
}
