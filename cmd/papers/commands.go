package main

import (
	"errors"
	"fmt"

	"paperapi/internal/paper"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newListCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every paper in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := openCatalog(v)
			if err != nil {
				return err
			}
			return printPapers(cmd.OutOrStdout(), v, svc.List(cmd.Context()))
		},
	}
}

func newSearchCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search the catalog by title, authors or citation count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := openCatalog(v)
			if err != nil {
				return err
			}
			papers, err := svc.Search(cmd.Context(), args[0])
			if errors.Is(err, paper.ErrNotFound) {
				return errors.New("no such article found")
			}
			if err != nil {
				return err
			}
			return printPapers(cmd.OutOrStdout(), v, papers)
		},
	}
}

func newSavedCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "saved",
		Short: "List saved papers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeFn, err := openSaved(v)
			if err != nil {
				return err
			}
			defer closeFn()

			papers, err := svc.List(cmd.Context())
			if err != nil {
				return err
			}
			return printPapers(cmd.OutOrStdout(), v, papers)
		},
	}
}

func newSaveCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "save <id>",
		Short: "Save a catalog paper by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalogSvc, _, err := openCatalog(v)
			if err != nil {
				return err
			}
			p, err := catalogSvc.Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("no catalog paper with id %q", args[0])
			}

			svc, closeFn, err := openSaved(v)
			if err != nil {
				return err
			}
			defer closeFn()

			papers, err := svc.Save(cmd.Context(), p)
			if err != nil {
				return err
			}
			return printPapers(cmd.OutOrStdout(), v, papers)
		},
	}
}

func newRemoveCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a saved paper",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeFn, err := openSaved(v)
			if err != nil {
				return err
			}
			defer closeFn()

			papers, err := svc.Remove(cmd.Context(), args[0])
			if errors.Is(err, paper.ErrNotFound) {
				return fmt.Errorf("paper %q is not saved", args[0])
			}
			if err != nil {
				return err
			}
			return printPapers(cmd.OutOrStdout(), v, papers)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of papers",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "papers %s\n", version)
		},
	}
}
