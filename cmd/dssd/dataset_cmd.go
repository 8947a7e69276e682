package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	dsyaml "github.com/subgroups/dssd/dataset/yaml"
)

type datasetCmdConfig struct {
	*rootCmdConfig
	dataInput     string
	metadataInput string
	dataOutput    string
}

func datasetCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &datasetCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Manage binarized datasets",
		Long:  `Load a binarized dataset from one backend and dump it onto another`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			ctx := context.Background()
			config.Logf("Reading attributes from metadata at %s...", config.metadataInput)
			metadata, err := dsyaml.ReadMetadataFromFile(config.metadataInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			config.Logf("Attributes from metadata read")
			t, err := readTable(ctx, config.dataInput, metadata.Attributes, logger(config.verbose))
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			config.Logf("Dataset with %d samples read", t.Count())
			err = writeTable(ctx, config.dataOutput, t, logger(config.verbose))
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			config.Logf("Done")
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with the dataset to load (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file listing the boolean attributes of the dataset (required)")
	cmd.PersistentFlags().StringVarP(&(config.dataOutput), "output", "o", "", "path to a CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL to dump the dataset onto (defaults to STDOUT in CSV)")
	return cmd
}

func (dcc *datasetCmdConfig) Validate() error {
	if dcc.metadataInput == "" {
		return fmt.Errorf("required metadata flag was not set")
	}
	return nil
}
