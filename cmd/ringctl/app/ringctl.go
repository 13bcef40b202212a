package app

import (
	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"ringqueue/pkg/klog"
	"ringqueue/pkg/script"
	"ringqueue/util/queue"
)

const (
	OutputTable string = "table"
	OutputJson  string = "json"
)

var ErrUnknownOutput = errors.New("unknown output format")

type options struct {
	cfgFile string
	metrics bool
	v       *viper.Viper
}

// Execute executes the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

func NewRootCommand() *cobra.Command {
	o := &options{v: viper.New()}
	rootCmd := &cobra.Command{
		Use:          "ringctl",
		Short:        "Run operation scripts against a growable ring queue",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.initConfig()
		},
	}
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&o.cfgFile, "config", "", "config file (default is $HOME/.ringctl.yaml)")
	flags.Int("capacity", queue.DefaultCapacity, "starting capacity of the queue")
	flags.String("growth-mode", script.GrowthMultiply, `growth policy, "multiply" or "add"`)
	flags.Int("growth-amount", 2, "factor or increment applied by the growth policy")
	flags.StringP("output", "o", OutputTable, `result format, "table" or "json"`)
	flags.String("log-file", "", "append logs to this file instead of stderr")
	flags.Bool("debug", false, "log every step")
	flags.BoolVar(&o.metrics, "metrics", false, "print queue metrics after the run")

	bindFlags(o.v, flags, map[string]string{
		"capacity":      "capacity",
		"growth.mode":   "growth-mode",
		"growth.amount": "growth-amount",
		"output":        "output",
		"log.file":      "log-file",
		"log.debug":     "debug",
	})

	rootCmd.AddCommand(newRunCommand(o), newExecCommand(o))
	return rootCmd
}

// bindFlags maps config keys to the flags that override them.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		_ = v.BindPFlag(key, flags.Lookup(name))
	}
}

func (o *options) initConfig() error {
	if o.cfgFile != "" {
		o.v.SetConfigFile(o.cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return err
		}
		o.v.AddConfigPath(home)
		o.v.SetConfigName(".ringctl")
		o.v.SetConfigType("yaml")
	}
	o.v.SetDefault("capacity", queue.DefaultCapacity)
	o.v.SetDefault("growth.mode", script.GrowthMultiply)
	o.v.SetDefault("growth.amount", 2)
	o.v.SetDefault("output", OutputTable)

	if err := o.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if o.cfgFile != "" || !errors.As(err, &notFound) {
			return errors.Wrap(err, "read config")
		}
	}

	if err := klog.SetOutputFile(o.v.GetString("log.file")); err != nil {
		return errors.Wrap(err, "open log file")
	}
	klog.SetDebug(o.v.GetBool("log.debug"))
	if used := o.v.ConfigFileUsed(); used != "" && o.cfgFile == "" {
		klog.Debugf("using config file %s", used)
	}
	return nil
}

// defaults fills what a script left unset from flags and config.
func (o *options) defaults(s *script.Script) {
	if s.Capacity == 0 {
		s.Capacity = o.v.GetInt("capacity")
	}
	if s.Growth == (script.Growth{}) {
		s.Growth = script.Growth{
			Mode:   o.v.GetString("growth.mode"),
			Amount: o.v.GetInt("growth.amount"),
		}
	}
}
