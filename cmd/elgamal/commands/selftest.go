package commands

import (
	"fmt"
	"time"

	"github.com/pkg/profile"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"elgamal64/internal/crypto"
	"elgamal64/internal/domain"
)

const (
	// 2^64 - 59, the largest 64-bit prime; 2 generates its group.
	selftestP = 18446744073709551557
	selftestG = 2
)

type selftestResult struct {
	P        uint64  `json:"p"`
	G        uint64  `json:"g"`
	Count    int     `json:"count"`
	Failures int     `json:"failures"`
	Seconds  float64 `json:"seconds"`
}

// selftestCmd generates a key pair and round-trips count random messages
// through the batch cipher service.
func selftestCmd() *cobra.Command {
	var (
		p, g       uint64
		count      int
		chunk      int
		profMode   string
		profileDir string
	)
	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Round-trip random messages to check the build on this machine",
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 || chunk < 1 {
				return fmt.Errorf("count and chunk must be positive")
			}
			switch profMode {
			case "":
			case "cpu":
				defer profile.Start(profile.CPUProfile, profile.ProfilePath(profileDir), profile.Quiet).Stop()
			case "mem":
				defer profile.Start(profile.MemProfile, profile.ProfilePath(profileDir), profile.Quiet).Stop()
			default:
				return fmt.Errorf("unknown profile mode %q (want cpu or mem)", profMode)
			}

			ctx := cmd.Context()
			params, err := appCtx.Params.Validate(ctx, p, g)
			if err != nil {
				return err
			}
			kp, _, err := appCtx.Keys.GenerateKeys(ctx, params.P, params.G)
			if err != nil {
				return err
			}
			pub := domain.PublicKey{Params: params, Y: kp.Y}

			var bar *progressbar.ProgressBar
			if !appCtx.Config.JSON {
				bar = newProgressBar(cmd, count, "cyan", "Round trips")
			}

			src := crypto.NewSource()
			start := time.Now()
			failures := 0
			for done := 0; done < count; done += chunk {
				n := min(chunk, count-done)
				ms := make([]uint64, n)
				for i := range ms {
					ms[i] = src.Uint64n(params.P)
				}
				cts, err := appCtx.Cipher.EncryptBatch(ctx, pub, ms)
				if err != nil {
					return err
				}
				got, err := appCtx.Cipher.DecryptBatch(ctx, params.P, kp.X, cts)
				if err != nil {
					return err
				}
				for i := range ms {
					if got[i] != ms[i] {
						failures++
						appCtx.Log.Error(ctx, "round trip mismatch", "m", ms[i], "got", got[i], "ct", cts[i].String())
					}
				}
				if bar != nil {
					_ = bar.Add(n)
				}
			}
			if bar != nil {
				_ = bar.Finish()
				fmt.Fprintln(cmd.ErrOrStderr())
			}

			elapsed := time.Since(start)
			res := selftestResult{
				P:        params.P,
				G:        params.G,
				Count:    count,
				Failures: failures,
				Seconds:  elapsed.Seconds(),
			}
			if err := render(cmd, res,
				field{"round trips", count},
				field{"failures", failures},
				field{"elapsed", elapsed.Round(time.Millisecond)},
			); err != nil {
				return err
			}
			if failures > 0 {
				return fmt.Errorf("selftest: %d of %d round trips failed", failures, count)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.Uint64Var(&p, "p", selftestP, "prime modulus")
	f.Uint64Var(&g, "g", selftestG, "primitive root modulo p")
	f.IntVar(&count, "count", 1000, "number of messages")
	f.IntVar(&chunk, "chunk", 256, "messages per batch")
	f.StringVar(&profMode, "profile", "", "write a cpu or mem profile")
	f.StringVar(&profileDir, "profile-dir", ".", "directory for profile output")
	return cmd
}

func newProgressBar(cmd *cobra.Command, size int, color, name string) *progressbar.ProgressBar {
	return progressbar.NewOptions(size,
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(20),
		progressbar.OptionSetDescription(fmt.Sprintf("[%s]%s...[reset]", color, name)),
		progressbar.OptionShowIts(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}
