package cli

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func logLevelFlag(v *viper.Viper) string {
	return v.GetString(cfgKeyLogLevel)
}

func addLogLevelFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("log-level", "", "log level: debug, info, warn, error (default warn)")
	_ = v.BindPFlag(cfgKeyLogLevel, flags.Lookup("log-level"))
	_ = v.BindEnv(cfgKeyLogLevel, "ABBR_LOG_LEVEL")
}

func logFormatFlag(v *viper.Viper) string {
	return v.GetString(cfgKeyLogFormat)
}

func addLogFormatFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("log-format", "", "log format: console or json (default console)")
	_ = v.BindPFlag(cfgKeyLogFormat, flags.Lookup("log-format"))
	_ = v.BindEnv(cfgKeyLogFormat, "ABBR_LOG_FORMAT")
}

// idFlag registers --id on a command that targets one meaning.
func idFlag(flags *pflag.FlagSet, target *int) {
	flags.IntVar(target, "id", 0, "1-based id of the meaning, as shown by get (required when there is more than one)")
}
