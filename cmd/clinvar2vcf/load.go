package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/inodb/clinvar2vcf/internal/convert"
)

func newLoadCmd(v *viper.Viper) *cobra.Command {
	var (
		inputPath string
		dbPath    string
		replace   bool
	)

	cmd := &cobra.Command{
		Use:   "load --clinvar <file> --db <file>",
		Short: "Load a ClinVar flat file into a DuckDB database",
		Long: `Load the ClinVar flat file into the clinvar_variants table of a DuckDB
database for querying. Multi-valued fields are stored comma-joined, as in the
VCF INFO field.`,
		Example: `  clinvar2vcf load --clinvar clinvar_alleles.tsv --db clinvar.duckdb
  clinvar2vcf load --clinvar clinvar_alleles.tsv --db clinvar.duckdb --replace --batch-size 50000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd, v)
			if err != nil {
				return err
			}
			defer logger.Sync()

			// Ensure output has a database extension
			if ext := filepath.Ext(dbPath); ext != ".duckdb" && ext != ".db" {
				dbPath = dbPath + ".duckdb"
			}

			if replace {
				if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
					return fmt.Errorf("removing existing database: %w", err)
				}
			}

			_, err = convert.Load(convert.LoadOptions{
				InputPath: inputPath,
				DBPath:    dbPath,
				BatchSize: v.GetInt("load.batch_size"),
				Logger:    logger,
			})
			return err
		},
	}

	cmd.Flags().StringVar(&inputPath, "clinvar", "", "ClinVar flat file ('-' for stdin)")
	cmd.Flags().StringVar(&dbPath, "db", "", "Output DuckDB file path")
	cmd.Flags().BoolVar(&replace, "replace", false, "Remove an existing database before loading")
	cmd.Flags().Int("batch-size", convert.DefaultBatchSize, "Rows appended per batch")
	_ = v.BindPFlag("load.batch_size", cmd.Flags().Lookup("batch-size"))
	_ = cmd.MarkFlagRequired("clinvar")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}
