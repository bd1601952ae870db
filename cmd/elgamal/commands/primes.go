package commands

import (
	"github.com/spf13/cobra"
)

type primesResult struct {
	Lo     uint64   `json:"lo"`
	Hi     uint64   `json:"hi"`
	Primes []uint64 `json:"primes"`
}

func primesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "primes <lo> <hi>",
		Short: "List the primes in [lo, hi]",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lo, err := parseUint("lo", args[0])
			if err != nil {
				return err
			}
			hi, err := parseUint("hi", args[1])
			if err != nil {
				return err
			}
			primes, err := appCtx.Params.Primes(cmd.Context(), lo, hi)
			if err != nil {
				return err
			}
			return render(cmd, primesResult{Lo: lo, Hi: hi, Primes: primes},
				field{"count", len(primes)},
				field{"primes", primes},
			)
		},
	}
}
