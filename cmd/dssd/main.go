package main

import (
	"os"

	"github.com/spf13/cobra"
)

type rootCmdConfig struct {
	verbose bool
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dssd",
		Short: "dssd is a tool to mine diverse subgroup sets",
		Long:  `A tool to discover small, diverse sets of interesting subgroups in binarized boolean datasets`,
	}
	config := &rootCmdConfig{}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "")
	rootCmd.AddCommand(versionCmd(), mineCmd(config), datasetCmd(config))
	return rootCmd
}
