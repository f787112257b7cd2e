package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	glyphsKeyPath string
	glyphsOutDir  string
	glyphsCount   int
)

func init() {
	glyphsCmd.Flags().StringVarP(&glyphsKeyPath, "key", "k", "", "key file whose glyphs to export (required)")
	glyphsCmd.Flags().StringVarP(&glyphsOutDir, "out", "o", "glyphs", "directory to write SVG files into")
	glyphsCmd.Flags().IntVarP(&glyphsCount, "count", "n", 0, "export only the first N symbols (0 for all)")
	_ = glyphsCmd.MarkFlagRequired("key")

	rootCmd.AddCommand(glyphsCmd)
}

var glyphsCmd = &cobra.Command{
	Use:   "glyphs",
	Short: "Export the SVG glyphs of a key's symbols",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newStore()
		if err != nil {
			return err
		}

		record, err := store.Load(glyphsKeyPath)
		if err != nil {
			return err
		}

		count := len(record.Glyphs)
		if glyphsCount > 0 && glyphsCount < count {
			count = glyphsCount
		}

		if err := os.MkdirAll(glyphsOutDir, 0o755); err != nil {
			return fmt.Errorf("create glyph directory: %w", err)
		}

		for i := 0; i < count; i++ {
			path := filepath.Join(glyphsOutDir, fmt.Sprintf("symbol_%04d.svg", i))
			if err := os.WriteFile(path, []byte(record.Glyphs[i]), 0o644); err != nil {
				return fmt.Errorf("write glyph %d: %w", i, err)
			}
			log.Debugf("Wrote %s", path)
		}

		fmt.Printf("%s exported %d glyphs to %s\n", color.GreenString("✓"), count, glyphsOutDir)

		return nil
	},
}
