// Command convert extracts the drivable road network from an OSM PBF extract
// and writes it as a plain-text adjacency graph file.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"osmff/pkg/logging"
	"osmff/pkg/osm"
)

func main() {
	flags := pflag.NewFlagSet("convert", pflag.ExitOnError)
	input := flags.StringP("input", "i", "", "Input .osm.pbf file (required)")
	output := flags.StringP("output", "o", "", "Output .fmi graph file (required)")
	bbox := flags.Float64Slice("bbox", nil,
		"Bounding box filter: minLat,maxLat,minLon,maxLon")
	verbose := flags.Bool("verbose", false, "Enable debug logging")
	if err := flags.Parse(os.Args[1:]); err != nil {
		logging.Fatal("parsing flags", "error", err)
	}
	if *verbose {
		logging.SetLevel(slog.LevelDebug)
	}
	if *input == "" || *output == "" {
		logging.Fatal("both --input and --output are required")
	}

	var opts osm.ParseOptions
	if len(*bbox) > 0 {
		if len(*bbox) != 4 {
			logging.Fatal("--bbox needs exactly four values: minLat,maxLat,minLon,maxLon")
		}
		b := *bbox
		opts.BBox = osm.BBox{MinLat: b[0], MaxLat: b[1], MinLon: b[2], MaxLon: b[3]}
	}

	in, err := os.Open(*input)
	if err != nil {
		logging.Fatal("opening input", "path", *input, "error", err)
	}
	defer in.Close()

	result, err := osm.Parse(context.Background(), in, opts)
	if err != nil {
		logging.Fatal("parsing OSM data", "path", *input, "error", err)
	}

	out, err := os.Create(*output)
	if err != nil {
		logging.Fatal("creating output", "path", *output, "error", err)
	}
	defer out.Close()

	if err := osm.WriteFMI(out, result); err != nil {
		logging.Fatal("writing graph file", "path", *output, "error", err)
	}
	logging.Info("graph written", "path", *output)
}
