package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MetaMask/native-utils/libs/log"
)

var logger = log.NewLogger(os.Stderr, slog.LevelInfo)

func init() {
	registerFlagsRootCmd(RootCmd)
}

func registerFlagsRootCmd(cmd *cobra.Command) {
	cmd.PersistentFlags().String("log_level", "info", "log level (debug|info|warn|error)")
}

// RootCmd is the root command for native-utils.
var RootCmd = &cobra.Command{
	Use:   "native-utils",
	Short: "Key derivation and digest utilities for secp256k1 and Ed25519",
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := viper.BindPFlags(cmd.Flags()); err != nil {
			return err
		}
		if cmd.Name() == VersionCmd.Name() {
			return nil
		}

		level, err := parseLogLevel(viper.GetString("log_level"))
		if err != nil {
			return err
		}
		logger = log.NewLogger(os.Stderr, level)
		logger.Debug("logger configured", "level", level.String())
		return nil
	},
	SilenceUsage: true,
}

func parseLogLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}
