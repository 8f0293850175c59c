// Package main is the papers CLI: list and search the catalog and manage
// saved papers kept in a local bolt file.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "papers",
		Short: "Search research papers and manage saved papers",
		Long: `papers lists and searches the built-in research paper catalog and keeps a
list of saved papers in a local bolt file.

Search matches the query case-insensitively against titles and authors, and
literally against citation counts.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, v)
		},
	}

	root.PersistentFlags().String("config", "", "config file (default: papers.yaml in . or ~/.config/papers)")
	root.PersistentFlags().String("db", "papers.db", "bolt file holding saved papers")
	root.PersistentFlags().String("catalog", "", "YAML catalog to use instead of the built-in one")
	root.PersistentFlags().Bool("json", false, "output results as JSON")
	for _, name := range []string{"db", "catalog", "json"} {
		_ = v.BindPFlag(name, root.PersistentFlags().Lookup(name))
	}

	root.AddCommand(
		newListCmd(v),
		newSearchCmd(v),
		newSavedCmd(v),
		newSaveCmd(v),
		newRemoveCmd(v),
		newVersionCmd(),
	)
	return root
}

func initConfig(cmd *cobra.Command, v *viper.Viper) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("papers")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "papers"))
		}
	}

	v.SetEnvPrefix("PAPERS")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "Using config file:", v.ConfigFileUsed())
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
