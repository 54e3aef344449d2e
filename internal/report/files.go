package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kvesta/clawsec/internal/log"
	"github.com/kvesta/clawsec/internal/vulnscan"
)

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// WriteFile stores the report as JSON at outfile, creating parent folders.
func WriteFile(outfile string, r *vulnscan.Report) error {
	folder := filepath.Dir(outfile)
	if !exists(folder) {
		if err := os.MkdirAll(folder, os.FileMode(0755)); err != nil {
			return fmt.Errorf("failed to create output folder: %w", err)
		}
	}

	f, err := os.Create(outfile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := ResolveJSON(f, r); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	log.Infof("report written to %s", outfile)
	return nil
}
