package cmd

import (
	"github.com/joho/godotenv"
	"github.com/josephgoksu/golfstats/internal/config"
	"github.com/josephgoksu/golfstats/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// GlobalAppConfig holds the resolved configuration of the running command.
var GlobalAppConfig config.AppConfig

// log is replaced by initConfig once the level is known.
var log = zap.NewNop()

// initConfig reads in config file and ENV variables if set.
func initConfig(cmd *cobra.Command) error {
	// Load .env file first if present; a missing one is fine.
	_ = godotenv.Load()

	v := viper.GetViper()
	config.Configure(v, cfgFile)
	used, err := config.ReadConfig(v, cfgFile != "")
	if err != nil {
		return err
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	GlobalAppConfig = cfg

	log = logger.New(cfg.Log.Level, cfg.Verbose, cmd.ErrOrStderr())
	logger.SetVersion(version)
	logger.SetCommand(cmd.CommandPath())
	logger.SetVerbose(cfg.Verbose)

	if used != "" {
		log.Debug("using config file", zap.String("path", used))
	}
	return nil
}
