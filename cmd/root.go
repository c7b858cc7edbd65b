package cmd

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/internal/logs"
	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/internal/message"
	o "github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/internal/options"
)

var (
	logger     = slog.Default()
	awsProfile string
	awsRegion  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "entityresolution-cfn",
	Short:         "entityresolution-cfn runs the CloudFormation resource handlers of AWS Entity Resolution.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v, err := loadConfig(cmd.Flags(), cfgFile)
		if err != nil {
			return err
		}

		opts := optsFromConfig(v, o.GlobalOptions)
		if err := o.ValidateOptions(opts); err != nil {
			return err
		}

		noColor, _ := strconv.ParseBool(o.GetOptionByName(o.NoColorOpt.Name, opts).Value)
		quiet, _ := strconv.ParseBool(o.GetOptionByName(o.QuietOpt.Name, opts).Value)
		level := logs.ParseLevel(o.GetOptionByName(o.LogLevelOpt.Name, opts).Value)

		logger = logs.ConsoleLogger(level, noColor)
		message.SetNoColor(noColor)
		message.SetQuiet(quiet)

		awsProfile = o.GetOptionByName(o.ProfileOpt.Name, opts).Value
		awsRegion = o.GetOptionByName(o.RegionOpt.Name, opts).Value

		if used := v.ConfigFileUsed(); used != "" {
			logger.Debug("Using config file", "path", used)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		message.Error("%v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/"+configName+".yaml)")
	for _, option := range o.GlobalOptions {
		option2Flag(option, rootCmd.PersistentFlags())
	}
	generateCommands(rootCmd)
}

func options2Flag(options []*o.Option, flags *pflag.FlagSet) {
	for _, option := range options {
		option2Flag(option, flags)
	}
}

func option2Flag(option *o.Option, flags *pflag.FlagSet) {
	description := option.Description
	if option.Required {
		description += " (required)"
	}

	switch option.Type {
	case o.String:
		flags.StringP(option.Name, option.Short, option.Value, description)
	case o.Bool:
		value, _ := strconv.ParseBool(option.Value)
		flags.BoolP(option.Name, option.Short, value, description)
	case o.Int:
		value, _ := strconv.Atoi(option.Value)
		flags.IntP(option.Name, option.Short, value, description)
	}

	if option.Required {
		_ = cobra.MarkFlagRequired(flags, option.Name)
	}
}

// getOptsFromFlags returns copies of options carrying the parsed flag values. The
// descriptors themselves are shared package variables and stay untouched.
func getOptsFromFlags(flags *pflag.FlagSet, options []*o.Option) []*o.Option {
	opts := make([]*o.Option, 0, len(options))
	for _, option := range options {
		opt := *option
		switch opt.Type {
		case o.String:
			opt.Value, _ = flags.GetString(opt.Name)
		case o.Bool:
			value, _ := flags.GetBool(opt.Name)
			opt.Value = strconv.FormatBool(value)
		case o.Int:
			value, _ := flags.GetInt(opt.Name)
			opt.Value = strconv.Itoa(value)
		}
		opts = append(opts, &opt)
	}
	return opts
}
