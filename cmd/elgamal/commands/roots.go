package commands

import (
	"github.com/spf13/cobra"
)

type rootsResult struct {
	P     uint64   `json:"p"`
	Roots []uint64 `json:"roots"`
}

// rootsCmd lists generators for a prime so users need not guess g.
func rootsCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "roots <p>",
		Short: "List primitive roots modulo prime p",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parseUint("p", args[0])
			if err != nil {
				return err
			}
			roots, err := appCtx.Params.PrimitiveRoots(cmd.Context(), p, limit)
			if err != nil {
				return err
			}
			return render(cmd, rootsResult{P: p, Roots: roots}, field{"primitive roots", roots})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of roots, 0 for all (small p only)")
	return cmd
}
