package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/subgroups/dssd"
	dsyaml "github.com/subgroups/dssd/dataset/yaml"
	resultjson "github.com/subgroups/dssd/result/json"
	"github.com/subgroups/dssd/result/redisstore"
	"github.com/subgroups/dssd/subgroup"
	redis "gopkg.in/redis.v5"
)

type mineCmdConfig struct {
	*rootCmdConfig
	dataInput     string
	metadataInput string
	output        string
	runName       string
	measureName   string
	target        string
	mincov        int
	maxdepth      int
	j             int
	k             int
	beamWidth     int
	workers       int
}

func mineCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &mineCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "mine",
		Short: "Mine a diverse subgroup set from a dataset",
		Long:  `Mine a dataset of boolean attributes for a small, diverse set of high-quality subgroups.`,
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
			measure, err := config.measure(metadata)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			config.Logf("Mining a dataset with %d samples and %d attributes (mincov=%d maxdepth=%d j=%d k=%d beam-width=%d)...",
				t.Count(), len(metadata.Attributes), config.mincov, config.maxdepth, config.j, config.k, config.beamWidth)
			params := &dssd.Params{BeamWidth: config.beamWidth, Workers: config.workers}
			subgroups, err := dssd.Mine(ctx, t, measure, config.j, config.k, config.mincov, config.maxdepth, params)
			if err != nil {
				fmt.Fprintf(os.Stderr, "mining the dataset: %v\n", err)
				os.Exit(5)
			}
			config.Logf("Done: %d subgroups mined", len(subgroups))
			err = config.outputSubgroups(ctx, subgroups)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(6)
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with the binarized dataset to mine (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file listing the boolean attributes of the dataset (required)")
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a file to which the mined subgroups will be written in JSON format, or a redis URL to save them on (defaults to STDOUT)")
	cmd.PersistentFlags().StringVar(&(config.runName), "run", "", "name to save the mined subgroup set under when the output is a redis URL")
	cmd.PersistentFlags().StringVar(&(config.measureName), "measure", "coverage", "quality measure to rank subgroups with, the following are valid: coverage, weighted, lift")
	cmd.PersistentFlags().StringVar(&(config.target), "target", "", "boolean attribute whose lift the lift measure scores (required with the lift measure)")
	cmd.PersistentFlags().IntVar(&(config.mincov), "mincov", 1, "minimum number of rows a subgroup must cover to be considered")
	cmd.PersistentFlags().IntVarP(&(config.maxdepth), "max-depth", "d", 3, "maximum number of conditions per subgroup")
	cmd.PersistentFlags().IntVarP(&(config.j), "retain", "j", 10, "number of subgroups retained during the search")
	cmd.PersistentFlags().IntVarP(&(config.k), "select", "k", 5, "number of subgroups selected in the final result")
	cmd.PersistentFlags().IntVarP(&(config.beamWidth), "beam-width", "b", 4, "number of candidates retained per depth")
	cmd.PersistentFlags().IntVarP(&(config.workers), "workers", "w", 0, "number of goroutines scoring candidates within a depth (defaults to 0: sequential scoring)")
	return cmd
}

func (mcc *mineCmdConfig) Validate() error {
	if mcc.metadataInput == "" {
		return fmt.Errorf("required metadata flag was not set")
	}
	if mcc.measureName == "lift" && mcc.target == "" {
		return fmt.Errorf("the lift measure requires the target flag to be set")
	}
	if strings.HasPrefix(mcc.output, "redis://") && mcc.runName == "" {
		return fmt.Errorf("saving to redis requires the run flag to be set")
	}
	return nil
}

func (mcc *mineCmdConfig) measure(metadata *dsyaml.Metadata) (dssd.Measure, error) {
	switch mcc.measureName {
	case "coverage":
		return dssd.Coverage(), nil
	case "weighted":
		return dssd.SizeWeightedCoverage(metadata.Interests), nil
	case "lift":
		return dssd.Lift(mcc.target), nil
	}
	return nil, fmt.Errorf("unknown measure %q", mcc.measureName)
}

func (mcc *mineCmdConfig) outputSubgroups(ctx context.Context, subgroups []subgroup.Description) error {
	encdec := resultjson.New()
	if strings.HasPrefix(mcc.output, "redis://") {
		opts, err := redis.ParseURL(mcc.output)
		if err != nil {
			return fmt.Errorf("parsing redis URL %s: %v", mcc.output, err)
		}
		store := redisstore.New(redis.NewClient(opts), "dssd:results", encdec)
		mcc.Logf("Saving mined subgroups on redis as run %q...", mcc.runName)
		return store.Save(ctx, mcc.runName, subgroups)
	}
	data, err := encdec.Encode(subgroups)
	if err != nil {
		return err
	}
	if mcc.output == "" {
		mcc.Logf("Using STDOUT to dump mined subgroups...")
		fmt.Println(string(data))
		return nil
	}
	mcc.Logf("Creating %s to dump mined subgroups...", mcc.output)
	f, err := os.Create(mcc.output)
	if err != nil {
		return fmt.Errorf("creating output file %s: %v", mcc.output, err)
	}
	defer f.Close()
	_, err = f.Write(data)
	if err != nil {
		return fmt.Errorf("writing output file %s: %v", mcc.output, err)
	}
	return nil
}
