// Command locodegen builds the locode.json port registry from the raw
// UN/LOCODE code-list CSV.
//
// Usage:
//
//	go run ./cmd/locodegen -in code-list.csv -out data/locode.json
//
// Rows without a country or location code are written to the skipped file
// for inspection. Pass -all to keep every location class instead of only
// seaports.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/ryantusi/GMS-Vessel-Tracker/internal/locodegen"
)

func main() {
	var (
		inPath      = flag.String("in", "code-list.csv", "UN/LOCODE code-list CSV to read")
		outPath     = flag.String("out", "data/locode.json", "dataset file to write")
		skippedPath = flag.String("skipped", "", "write skipped rows to this file (optional)")
		all         = flag.Bool("all", false, "keep all locations, not just seaports")
		checkDups   = flag.Bool("check-duplicates", false, "warn about near-duplicate port names")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	in, err := os.Open(*inPath)
	if err != nil {
		logger.Error("opening input", "error", err)
		os.Exit(1)
	}
	defer in.Close()

	res, err := locodegen.Generate(in, locodegen.Options{
		SeaportsOnly: !*all,
		Logger:       logger,
	})
	if err != nil {
		logger.Error("generation failed", "error", err)
		os.Exit(1)
	}

	logger.Info("dataset generated",
		"records", len(res.Records),
		"skipped", len(res.Skipped),
		"filtered", res.Filtered,
		"duplicates", res.Duplicates)

	if *checkDups {
		for _, d := range locodegen.FindNearDuplicates(res.Records) {
			logger.Warn("near-duplicate port names",
				"a", fmt.Sprintf("%s %s", d.A.Locode, d.A.Port),
				"b", fmt.Sprintf("%s %s", d.B.Locode, d.B.Port))
		}
	}

	if err := writeJSON(*outPath, res.Records); err != nil {
		logger.Error("writing dataset", "path", *outPath, "error", err)
		os.Exit(1)
	}
	logger.Info("dataset written", "path", *outPath)

	if *skippedPath != "" && len(res.Skipped) > 0 {
		if err := writeJSON(*skippedPath, res.Skipped); err != nil {
			logger.Error("writing skipped rows", "path", *skippedPath, "error", err)
			os.Exit(1)
		}
		logger.Info("skipped rows written", "path", *skippedPath, "count", len(res.Skipped))
	}
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
