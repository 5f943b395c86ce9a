// Command runstats computes descriptive efficiency statistics for one
// simulated survey run and prints them as tab-separated label/value
// lines.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dfrostig/ztf-sim/internal/astro"
	"github.com/dfrostig/ztf-sim/internal/config"
	"github.com/dfrostig/ztf-sim/internal/obsdb"
	"github.com/dfrostig/ztf-sim/internal/survey"
	"github.com/dfrostig/ztf-sim/internal/version"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("runstats: %v", err)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("runstats", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML site/filter configuration (default: built-in Palomar config)")
	save := fs.Bool("save", false, "persist the report into the pointing log")
	list := fs.Bool("list", false, "list reports already saved in the pointing log")
	showVersion := fs.Bool("version", false, "print version and exit")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: runstats [flags] <pointing-log.db>\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if *showVersion {
		fmt.Fprintln(stdout, version.String())
		return nil
	}

	// A wrong argument count prints usage and computes nothing.
	if fs.NArg() != 1 {
		fs.Usage()
		return nil
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}

	db, err := obsdb.Open(fs.Arg(0))
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()

	if *list {
		runs, err := db.ReportRuns(ctx)
		if err != nil {
			return err
		}
		for _, r := range runs {
			fmt.Fprintf(stdout, "%s\t%d lines\t%s\n", r.RunID, r.Lines, r.CreatedAt)
		}
		return nil
	}

	visits, err := db.LoadVisits(ctx)
	if err != nil {
		return err
	}

	site := astro.Site{
		Name:      cfg.Site.Name,
		Latitude:  cfg.Site.Latitude,
		Longitude: cfg.Site.Longitude,
	}

	report, err := survey.Compute(visits, cfg.Filters, site)
	if err != nil {
		return err
	}

	if err := report.Print(stdout); err != nil {
		return err
	}

	if *save {
		runID, err := db.SaveReport(ctx, report)
		if err != nil {
			return err
		}
		log.Printf("saved report as run %s", runID)
	}

	return nil
}
