package main

import (
	"fmt"
	"log"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/mroshb/notefmt/internal/config"
	"github.com/mroshb/notefmt/internal/sheet"
	"github.com/mroshb/notefmt/pkg/logger"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.FromEnv()

	in := pflag.String("in", "", "workbook to localize")
	out := pflag.String("out", "", "path of the localized copy (default: overwrite --in)")
	pflag.BoolVar(&cfg.FarsiDigits, "farsi-digits", cfg.FarsiDigits, "rewrite digits in text cells with Farsi glyphs")
	pflag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	pflag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration: ", err)
	}

	logger.Init(cfg.LogLevel, cfg.AppEnv)
	defer logger.Sync()

	if *in == "" {
		log.Fatal("--in is required")
	}
	if *out == "" {
		*out = *in
	}

	report, err := sheet.LocalizeFile(*in, *out, sheet.Options{FarsiDigits: cfg.FarsiDigits})
	if err != nil {
		logger.Fatal("Failed to localize workbook", err)
	}

	fmt.Printf("Sheets: %d, cells: %d, rtl cells: %d, converted: %d, rtl sheets: %v\n",
		report.Sheets, report.Cells, report.RTLCells, report.Converted, report.RTLSheets)
}
