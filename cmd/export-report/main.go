package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"smartfarm_app_go/config"
	"smartfarm_app_go/db"
	"smartfarm_app_go/services"
)

// Offline variant of the report endpoint: reads the data file and writes the
// Excel workbook to disk, for running from cron or by hand.
func main() {
	output := flag.String("o", "", "output path (default informe_smartfarm_<date>.xlsx)")
	flag.Parse()

	cfg := config.Load()
	store := db.Open(cfg.DataFile)

	buf, err := services.GenerateScoreReport(store, cfg)
	if err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}

	path := *output
	if path == "" {
		path = fmt.Sprintf("informe_smartfarm_%s.xlsx", time.Now().Format("2006-01-02"))
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		log.Fatalf("Failed to write %s: %v", path, err)
	}

	fmt.Printf("✓ Report written to %s\n", path)
}
