package main

import (
	"encoding/json"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jonklee99/PKHeX-Gengar/internal/config"
	"github.com/jonklee99/PKHeX-Gengar/internal/logging"
)

type cliState struct {
	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	st := &cliState{logger: logging.Discard()}

	root := &cobra.Command{
		Use:           "evocheck",
		Short:         "Check move-gated evolutions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("log-level") {
				cfg.LogLevel, _ = flags.GetString("log-level")
			}
			if flags.Changed("log-json") {
				cfg.LogJSON, _ = flags.GetBool("log-json")
			}
			lvl, err := logging.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			st.cfg = cfg
			st.logger = logging.New(logging.Config{
				Level:   lvl,
				JSON:    cfg.LogJSON,
				Service: "evocheck",
				Output:  cmd.ErrOrStderr(),
			})
			return nil
		},
	}
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error); overrides EVOCHECK_LOG_LEVEL")
	root.PersistentFlags().Bool("log-json", false, "emit JSON logs; overrides EVOCHECK_LOG_JSON")

	root.AddCommand(
		newRequirementCmd(st),
		newBranchCmd(),
		newValidateCmd(st),
		newRulesCmd(),
	)
	return root
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
