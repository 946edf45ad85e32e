// htsviz renders a multi-sheet HTS dose-response workbook as an interactive 3D
// scatter, coloring each Z value by the strain's low/high response regime.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"sort"

	"cloud.google.com/go/storage"
	"github.com/carbocation/htsviz"
	"github.com/carbocation/htsviz/assay"
	"github.com/carbocation/htsviz/compileinfo"
	"github.com/carbocation/htsviz/measure"
	"github.com/carbocation/htsviz/render"
	"github.com/carbocation/htsviz/sheet"
)

func main() {
	var filePath, strain, antibiotic, configPath string
	var writePNG, writeSummary, list, version bool

	flag.StringVar(&filePath, "file", "", "Path to the HTS workbook (.xlsx, .xls, or a delimited .csv/.tsv). May be a gs:// path.")
	flag.StringVar(&strain, "strain", "", fmt.Sprintf("Strain identifier. One of %v", assay.Strains()))
	flag.StringVar(&antibiotic, "antibiotic", "", "Antibiotic code (case-insensitive), e.g., amk. Unlisted codes are treated as non-beta-lactam.")
	flag.StringVar(&configPath, "config", "", "(Optional) JSON file overriding figure settings such as width, height and marker sizes.")
	flag.BoolVar(&writePNG, "png", false, "Also write a transparent X/Y projection PNG for each dose stage.")
	flag.BoolVar(&writeSummary, "summary", false, "Also write a tab-delimited file with each averaged point, its regime and its color.")
	flag.BoolVar(&list, "list", false, "Print the strain and antibiotic tables and exit.")
	flag.BoolVar(&version, "version", false, "Print build information and exit.")
	flag.Parse()

	if version {
		fmt.Println(compileinfo.Get())
		return
	}

	if list {
		printTables()
		return
	}

	if filePath == "" || strain == "" || antibiotic == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	log.Println(compileinfo.Get())

	settings := render.DefaultSettings()
	if configPath != "" {
		var err error
		settings, err = render.ParseSettingsFromPath(configPath)
		if err != nil {
			log.Fatalln(err)
		}
	}

	if err := run(context.Background(), filePath, strain, antibiotic, settings, writePNG, writeSummary); err != nil {
		log.Fatalln(err)
	}
}

func run(ctx context.Context, filePath, strain, antibiotic string, settings render.Settings, writePNG, writeSummary bool) error {
	rec, group, err := assay.Resolve(strain, antibiotic)
	if err != nil {
		return err
	}
	log.Printf("Strain %s, antibiotic %s (%s): threshold %v, bin mode %s, bin size %v\n", strain, antibiotic, group, rec.Threshold, rec.BinMode, rec.BinSize)

	var client *storage.Client
	if htsviz.IsGoogleStoragePath(filePath) {
		client, err = storage.NewClient(ctx)
		if err != nil {
			return err
		}
		defer client.Close()
	}

	wb, err := sheet.Open(ctx, filePath, client)
	if err != nil {
		return err
	}
	defer wb.Close()

	raw, report, err := sheet.Load(wb)
	if err != nil {
		return fmt.Errorf("%s: %w", filePath, err)
	}
	for _, s := range report.Skipped() {
		if !s.Matched {
			log.Printf("Sheet %q has no dose stage in its name; skipped\n", s.Name)
		}
	}
	log.Printf("Loaded %d points from %d sheets (%d rows dropped for missing values)\n", len(raw), len(report.Sheets)-len(report.Skipped()), report.DroppedRows())
	logZHistogram(raw, rec)

	avg, err := measure.Aggregate(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", filePath, err)
	}
	log.Printf("Averaged into %d conditions\n", len(avg))

	fig := render.BuildFigure(path.Base(filePath), rec, raw, avg, settings)

	outHTML := htsviz.OutputPath(filePath, "", ".html")
	if err := writeOutput(ctx, outHTML, client, func(w io.Writer) error {
		return render.WriteHTML(w, fig, settings)
	}); err != nil {
		return err
	}
	log.Println("Saved:", outHTML)

	if writePNG {
		for _, stage := range measure.Stages(raw) {
			outPNG := htsviz.OutputPath(filePath, "_"+stage.String(), ".png")
			if err := writeOutput(ctx, outPNG, client, func(w io.Writer) error {
				return render.WriteStagePNG(w, stage, rec, raw, settings)
			}); err != nil {
				return err
			}
			log.Println("Saved:", outPNG)
		}
	}

	if writeSummary {
		outTSV := htsviz.OutputPath(filePath, "_summary", ".tsv")
		if err := writeOutput(ctx, outTSV, client, func(w io.Writer) error {
			return writeSummaryTSV(w, rec, avg)
		}); err != nil {
			return err
		}
		log.Println("Saved:", outTSV)
	}

	return nil
}

func printTables() {
	table := assay.DefaultTable()
	for _, strain := range table.Strains() {
		groups := make([]string, 0, len(table[strain]))
		for g := range table[strain] {
			groups = append(groups, string(g))
		}
		sort.Strings(groups)

		for _, g := range groups {
			rec := table[strain][assay.AntibioticGroup(g)]
			fmt.Printf("%s\t%s\tthreshold=%v\tmode=%s\tbin=%v\txy=%v\tz=%v\txytick=%v\tztick=%v\n", strain, g, rec.Threshold, rec.BinMode, rec.BinSize, rec.XYRange, rec.ZRange, rec.XYTick, rec.ZTick)
		}
	}

	antibiotics := assay.Antibiotics()
	codes := make([]string, 0, len(antibiotics))
	for code := range antibiotics {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	fmt.Println()
	for _, code := range codes {
		fmt.Printf("%s\t%s\n", code, antibiotics[code])
	}
	fmt.Printf("(any other)\t%s\n", assay.NonBeta)
}
