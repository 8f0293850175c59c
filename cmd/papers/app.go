package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"paperapi/internal/catalog"
	"paperapi/internal/paper"
	"paperapi/internal/saved"

	"github.com/spf13/viper"
)

func openCatalog(v *viper.Viper) (*catalog.Service, *catalog.Catalog, error) {
	c := catalog.Default()
	if path := v.GetString("catalog"); path != "" {
		var err error
		if c, err = catalog.LoadFile(path); err != nil {
			return nil, nil, err
		}
	}
	return catalog.NewService(c), c, nil
}

// openSaved opens the bolt store named by the db setting. The caller must
// call the returned close function.
func openSaved(v *viper.Viper) (*saved.Service, func() error, error) {
	repo, err := saved.OpenBoltRepo(v.GetString("db"))
	if err != nil {
		return nil, nil, err
	}
	return saved.NewService(repo), repo.Close, nil
}

func printPapers(w io.Writer, v *viper.Viper, papers []paper.Paper) error {
	if v.GetBool("json") {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(papers)
	}
	if len(papers) == 0 {
		_, err := fmt.Fprintln(w, "No papers.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tAUTHORS\tYEAR\tCITATIONS")
	for _, p := range papers {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\n", p.ID, p.Title, p.Authors, p.Year, p.Citations)
	}
	return tw.Flush()
}
