// Package main provides the clinvar2vcf command-line tool.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/inodb/clinvar2vcf/internal/convert"
	"github.com/inodb/clinvar2vcf/internal/logging"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitError   = 1
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const configName = ".clinvar2vcf"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cmd := newRootCmd(viper.New())
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return ExitError
	}
	return ExitSuccess
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	var (
		cfgFile     string
		clinvarPath string
		vcfPath     string
	)

	cmd := &cobra.Command{
		Use:   "clinvar2vcf --clinvar <file> -V <file>",
		Short: "Convert a ClinVar flat file to VCF",
		Long: `Convert the tab-separated ClinVar flat file (https://github.com/macarthur-lab/clinvar)
into a VCFv4.2 file carrying the ClinVar annotations as INFO fields.`,
		Example: `  clinvar2vcf --clinvar clinvar_alleles.tsv -V clinvar.vcf
  clinvar2vcf --clinvar clinvar_alleles.tsv.gz -V clinvar.vcf.gz --loglevel DEBUG
  clinvar2vcf load --clinvar clinvar_alleles.tsv --db clinvar.duckdb`,
		Version:       fmt.Sprintf("%s (%s) built %s", version, commit, date),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(v, cfgFile); err != nil {
				return err
			}
			if isConfigCmd(cmd) {
				return nil
			}
			// Reject a bad level before any file is touched.
			_, err := logging.ParseLevel(v.GetString("loglevel"))
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd, v)
			if err != nil {
				return err
			}
			defer logger.Sync()

			_, err = convert.Run(convert.Options{
				InputPath:  clinvarPath,
				OutputPath: vcfPath,
				Logger:     logger,
			})
			return err
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "Config file (default: ~/"+configName+".yaml)")
	pf.String("loglevel", "INFO", "Level of logging: "+strings.Join(logging.Levels, ", "))
	_ = v.BindPFlag("loglevel", pf.Lookup("loglevel"))

	cmd.Flags().StringVar(&clinvarPath, "clinvar", "", "ClinVar flat file from https://github.com/macarthur-lab/clinvar ('-' for stdin)")
	cmd.Flags().StringVarP(&vcfPath, "vcf", "V", "", "Output VCF file (.gz for BGZF compression)")
	_ = cmd.MarkFlagRequired("clinvar")
	_ = cmd.MarkFlagRequired("vcf")

	cmd.AddCommand(newLoadCmd(v))
	cmd.AddCommand(newConfigCmd(v))

	return cmd
}

// initConfig reads the config file if one exists. A missing file is not an error.
func initConfig(v *viper.Viper, cfgFile string) error {
	v.SetDefault("loglevel", "INFO")
	v.SetDefault("load.batch_size", convert.DefaultBatchSize)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		v.AddConfigPath(home)
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// isConfigCmd reports whether cmd is the config command or one of its children.
func isConfigCmd(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "config" {
			return true
		}
	}
	return false
}

// newLogger builds the stderr logger for the configured level.
func newLogger(cmd *cobra.Command, v *viper.Viper) (*zap.Logger, error) {
	name := v.GetString("loglevel")
	level, err := logging.ParseLevel(name)
	if err != nil {
		return nil, err
	}
	logger := logging.NewWithWriter(cmd.ErrOrStderr(), level)
	logger.Info("Started log with loglevel " + strings.ToUpper(name))
	return logger, nil
}
