package commands

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"elgamal64/internal/app"
	"elgamal64/internal/logging"
	"elgamal64/internal/primality"
)

var (
	cfgFile string
	v       *viper.Viper
	appCtx  *app.Wire
)

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	cfgFile = ""
	v = app.NewViper()
	appCtx = nil

	root := &cobra.Command{
		Use:           "elgamal",
		Short:         "ElGamal key generation, encryption and decryption over 64-bit primes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var dirs []string
			if dir, err := os.UserHomeDir(); err == nil {
				dirs = append(dirs, filepath.Join(dir, ".elgamal64"))
			}
			dirs = append(dirs, ".")
			if err := app.ReadConfigFile(v, cfgFile, dirs...); err != nil {
				return err
			}
			cfg, err := app.LoadConfig(v)
			if err != nil {
				return err
			}
			log, err := logging.NewText(cmd.ErrOrStderr(), cfg.LogLevel)
			if err != nil {
				return err
			}
			log = log.With("run_id", uuid.NewString(), "cmd", cmd.Name())

			appCtx, err = app.NewWire(cfg, log, nil)
			if err != nil {
				return err
			}
			log.Debug(cmd.Context(), "configuration loaded",
				"primality", cfg.Primality.String(), "workers", cfg.Workers)
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default $HOME/.elgamal64/config.yaml)")
	pf.String(app.KeyPrimality, string(primality.DefaultStrategy),
		"primality test: trial-division, miller-rabin or baillie-psw")
	pf.String(app.KeyLogLevel, "warn", "log level: debug, info, warn or error")
	pf.Bool(app.KeyJSON, false, "print results as JSON")
	pf.Int(app.KeyWorkers, 0, "batch workers (default number of CPUs)")
	for _, key := range []string{app.KeyPrimality, app.KeyLogLevel, app.KeyJSON, app.KeyWorkers} {
		_ = v.BindPFlag(key, pf.Lookup(key))
	}

	root.AddCommand(
		groupCmd(),
		keygenCmd(),
		encryptCmd(),
		decryptCmd(),
		checkCmd(),
		rootsCmd(),
		primesCmd(),
		selftestCmd(),
	)
	return root
}
