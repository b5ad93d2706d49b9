package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/inodb/clinvar2vcf/internal/logging"
)

func newConfigCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage clinvar2vcf configuration",
		Long:  "Show, get, or set configuration values. Config is stored in ~/" + configName + ".yaml.",
		Example: `  clinvar2vcf config                           # show all config
  clinvar2vcf config set loglevel DEBUG         # log every variant
  clinvar2vcf config set load.batch_size 50000  # larger DuckDB batches
  clinvar2vcf config get loglevel               # get a value`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(cmd, v)
		},
	}

	cmd.AddCommand(newConfigSetCmd(v))
	cmd.AddCommand(newConfigGetCmd(v))

	return cmd
}

func newConfigSetCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigSet(cmd, v, args[0], args[1])
		},
	}
}

func newConfigGetCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigGet(cmd, v, args[0])
		},
	}
}

func runConfigShow(cmd *cobra.Command, v *viper.Viper) error {
	out, err := yaml.Marshal(v.AllSettings())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), string(out))
	return nil
}

func runConfigSet(cmd *cobra.Command, v *viper.Viper, key, value string) error {
	switch key {
	case "loglevel":
		if _, err := logging.ParseLevel(value); err != nil {
			return err
		}
	case "load.batch_size":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid batch size: %q", value)
		}
		v.Set(key, n)
		return writeConfig(cmd, v, key, value)
	}
	v.Set(key, value)
	return writeConfig(cmd, v, key, value)
}

func writeConfig(cmd *cobra.Command, v *viper.Viper, key, value string) error {
	cfgFile := v.ConfigFileUsed()
	if cfgFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("cannot determine home directory: %w", err)
		}
		cfgFile = filepath.Join(home, configName+".yaml")
	}

	if err := v.WriteConfigAs(cfgFile); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s in %s\n", key, value, cfgFile)
	return nil
}

func runConfigGet(cmd *cobra.Command, v *viper.Viper, key string) error {
	if !v.IsSet(key) {
		return fmt.Errorf("key %q is not set", key)
	}
	fmt.Fprintln(cmd.OutOrStdout(), v.Get(key))
	return nil
}
