package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	o "github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/internal/options"
)

const (
	configName = ".entityresolution-cfn"
	envPrefix  = "ENTITYRESOLUTION_CFN"
)

var cfgFile string

// loadConfig layers the global options: flags set on the command line win over
// ENTITYRESOLUTION_CFN_* environment variables, which win over the config file, which wins
// over flag defaults. An explicit path must exist; the default $HOME/.entityresolution-cfn.yaml
// is optional.
func loadConfig(flags *pflag.FlagSet, path string) (*viper.Viper, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigType("yaml")
		v.SetConfigName(configName)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, option := range o.GlobalOptions {
		if flag := flags.Lookup(option.Name); flag != nil {
			if err := v.BindPFlag(option.Name, flag); err != nil {
				return nil, err
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	return v, nil
}

// optsFromConfig returns copies of options carrying the values resolved by v.
func optsFromConfig(v *viper.Viper, options []*o.Option) []*o.Option {
	opts := make([]*o.Option, 0, len(options))
	for _, option := range options {
		opt := *option
		switch opt.Type {
		case o.Bool:
			opt.Value = strconv.FormatBool(v.GetBool(opt.Name))
		case o.Int:
			opt.Value = strconv.Itoa(v.GetInt(opt.Name))
		default:
			opt.Value = v.GetString(opt.Name)
		}
		opts = append(opts, &opt)
	}
	return opts
}
