// Report tool generates a single report from the fixture dataset on the
// command line, without running the dashboard API. Useful for cron-driven
// exports and for inspecting report output during development.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/aquawatch/aquawatch_backend/pkg/config"
	"github.com/aquawatch/aquawatch_backend/pkg/fixtures"
	"github.com/aquawatch/aquawatch_backend/pkg/jobs"
	"github.com/aquawatch/aquawatch_backend/pkg/report"
	"github.com/aquawatch/aquawatch_backend/pkg/types"
)

func main() {
	reportType := flag.String("type", "", "Report type id or display label (see -list)")
	format := flag.String("format", "csv", "Output format: csv, json, xlsx or pdf")
	regionId := flag.String("region", "", "Region id (defaults to the configured region)")
	outDir := flag.String("out", "", "Output directory (defaults to the configured one)")
	dateFrom := flag.String("from", "", "Report period start, yyyy-mm-dd")
	dateTo := flag.String("to", "", "Report period end, yyyy-mm-dd")
	list := flag.Bool("list", false, "List available report types and exit")
	flag.Parse()

	if *list {
		printCatalog(os.Stdout)
		return
	}
	if *reportType == "" {
		flag.Usage()
		os.Exit(2)
	}

	// Load config
	if err := config.LoadReportToolConfig(); err != nil {
		log.Fatalf("Failed to load report tool config: %v", err)
	}
	cfg := config.ActiveReportToolConfig

	if *regionId == "" {
		*regionId = cfg.RegionId
	}
	if *outDir == "" {
		*outDir = cfg.OutputDir
	}

	bundle, err := fixtures.NewLoader(0).Load()
	if err != nil {
		log.Fatalf("Failed to load fixture dataset: %v", err)
	}
	scoped := bundle.FilterRegion(*regionId)

	regionName := *regionId
	if reg, found := bundle.Region(*regionId); found {
		regionName = reg.RegionName
	}

	typeId := report.ResolveType(*reportType)
	sources := report.DataSources{
		Zones:      scoped.Zones,
		Buildings:  scoped.Buildings,
		Meters:     scoped.Meters,
		Events:     scoped.Events,
		RegionName: regionName,
		ReportType: report.LabelFor(typeId),
		DateFrom:   *dateFrom,
		DateTo:     *dateTo,
	}

	artifact, err := report.Render(sources, types.ReportFormat(strings.ToUpper(*format)))
	if err != nil {
		log.Fatalf("Failed to render report: %v", err)
	}

	basename := report.BuildFilename(sources.ReportType, time.Now(), jobs.DefaultIDSource())
	path, err := report.Save(artifact, *outDir, basename)
	if err != nil {
		log.Fatalf("Failed to write report: %v", err)
	}

	log.Printf("Report written to %s (%d bytes)", path, len(artifact.Content))
}

func printCatalog(out io.Writer) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tLABEL\tDESCRIPTION")
	for _, def := range report.Catalog() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", def.Id, def.Label, def.Description)
	}
	w.Flush()
}
