package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/jonathan/resume-tailor/internal/clipboard"
	"github.com/jonathan/resume-tailor/internal/config"
	"github.com/jonathan/resume-tailor/internal/logger"
	"github.com/spf13/cobra"
)

// app carries state shared by every subcommand.
type app struct {
	flags     configFlags
	getenv    func(string) string
	clipboard clipboard.Writer

	cfg config.Config
}

// configFlags are the command line overrides of the configuration.
type configFlags struct {
	backendURL string
	configPath string
	timeout    time.Duration
	strict     *bool // nil unless --strict was given
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(&app{getenv: os.Getenv, clipboard: clipboard.System()})
}

func newRootCmdWith(a *app) *cobra.Command {
	var strict bool

	rootCmd := &cobra.Command{
		Use:   "tailor",
		Short: "Resume tailoring client",
		Long: "tailor sends a resume and a job description to a tailoring backend and shows the " +
			"ATS-friendly resume, matched and missing keywords, and ATS tips it returns.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("strict") {
				a.flags.strict = config.Bool(strict)
			}
			cfg, err := resolveConfig(a.flags, a.getenv)
			if err != nil {
				return err
			}
			a.cfg = cfg
			logger.InitWithWriter(cfg.Log, cmd.ErrOrStderr())
			cmd.SetContext(logger.WithContext(cmd.Context()))
			logger.Logger.Debug().
				Str("backend_url", cfg.BackendURL).
				Bool("strict_schema", cfg.Strict()).
				Msg("configuration resolved")
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.flags.backendURL, "backend-url", "", "Tailoring backend base URL (overrides "+config.BackendURLEnv+")")
	pf.StringVar(&a.flags.configPath, "config", "", "Path to a JSON or YAML config file")
	pf.DurationVar(&a.flags.timeout, "timeout", 0, "Backend request timeout, e.g. 90s (0 keeps the transport default)")
	pf.BoolVar(&strict, "strict", false, "Reject backend responses that do not match the result schema")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&a.flags.logFormat, "log-format", "", "Log format: json or pretty")

	rootCmd.AddCommand(newSubmitCmd(a))
	rootCmd.AddCommand(newServeCmd(a))
	rootCmd.AddCommand(newIngestJobCmd())

	return rootCmd
}

// resolveConfig layers flags over the environment over the config file over
// the built-in defaults.
func resolveConfig(f configFlags, getenv func(string) string) (config.Config, error) {
	fromFlags := config.Config{
		BackendURL:     f.backendURL,
		TimeoutSeconds: timeoutSeconds(f.timeout),
		StrictSchema:   f.strict,
		Log: logger.Config{
			Level:  f.logLevel,
			Format: f.logFormat,
		},
	}

	var fromFile config.Config
	if f.configPath != "" {
		loaded, err := config.LoadConfig(f.configPath)
		if err != nil {
			return config.Config{}, err
		}
		fromFile = *loaded
	}

	cfg := fromFlags.
		MergeWithDefaults(config.FromEnv(getenv)).
		MergeWithDefaults(fromFile).
		MergeWithDefaults(config.Defaults())

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// timeoutSeconds rounds a positive duration up to whole seconds.
func timeoutSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Seconds()))
}

// requireOne checks that exactly one of two mutually exclusive flags is set.
func requireOne(aName, a, bName, b string) error {
	if a == "" && b == "" {
		return fmt.Errorf("either --%s or --%s must be provided", aName, bName)
	}
	if a != "" && b != "" {
		return fmt.Errorf("--%s and --%s are mutually exclusive; provide only one", aName, bName)
	}
	return nil
}
