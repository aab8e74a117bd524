package main

import (
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"polyiter/engine"
	"polyiter/options"
)

type cli struct {
	v       *viper.Viper
	cfgFile string
	cfg     options.Config
	engine  *engine.Engine
	bindErr error
}

// flagKeys maps config keys to the persistent flags overriding them.
var flagKeys = [][2]string{
	{"inherit", "inherit"},
	{"diagnostics.level", "log-level"},
	{"diagnostics.format", "log-format"},
}

func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}

	root := &cobra.Command{
		Use:               "polyiter",
		Short:             "Traverse values of any shape with one callback contract.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.cfgFile, "config", "", "YAML config file")
	flags.Bool("inherit", false, "visit inherited keys of mapping inputs")
	flags.String("log-level", "", "diagnostics level (a logrus level or off)")
	flags.String("log-format", "", "diagnostics format, text or json")

	c.bindErr = bindFlags(c.v, flags, flagKeys)

	c.v.SetEnvPrefix("polyiter")
	c.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	c.v.AutomaticEnv()

	root.AddCommand(c.newDemoCmd(), c.newSeqCmd(), c.newKeysCmd(), c.newClassifyCmd(), c.newConfigCmd())

	return root
}

// bindFlags binds every key to its flag and returns all failures at once.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys [][2]string) error {
	var merr *multierror.Error
	for _, kv := range keys {
		if err := v.BindPFlag(kv[0], flags.Lookup(kv[1])); err != nil {
			merr = multierror.Append(merr, errors.Wrapf(err, "flag --%s", kv[1]))
		}
	}

	return merr.ErrorOrNil()
}

// setup resolves the config from defaults, the config file, the environment and
// flags, in increasing priority, and builds the engine.
func (c *cli) setup(*cobra.Command, []string) error {
	if c.bindErr != nil {
		return c.bindErr
	}

	cfg, err := c.config()
	if err != nil {
		return err
	}

	c.cfg = cfg
	c.engine, err = engine.FromConfig(cfg)
	return err
}

func (c *cli) config() (options.Config, error) {
	cfg := options.DefaultConfig()

	if c.cfgFile != "" {
		data, err := os.ReadFile(c.cfgFile)
		if err != nil {
			return cfg, errors.Wrapf(err, "failed to read config %s", c.cfgFile)
		}

		parsed, err := options.ParseConfig(data)
		if err != nil {
			return cfg, errors.Wrapf(err, "config %s", c.cfgFile)
		}
		cfg = *parsed
	}

	// the file only provides defaults, the environment and flags win over it
	c.v.SetDefault("inherit", cfg.Inherit)
	c.v.SetDefault("diagnostics.level", cfg.Diagnostics.Level)
	c.v.SetDefault("diagnostics.format", cfg.Diagnostics.Format)

	cfg.Inherit = c.v.GetBool("inherit")
	cfg.Diagnostics.Level = strings.ToLower(c.v.GetString("diagnostics.level"))
	cfg.Diagnostics.Format = strings.ToLower(c.v.GetString("diagnostics.format"))

	return cfg, nil
}
