package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var buildOutDir string

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the pre-rendered site",
	Long: `Render the home page and the latest episode pages and write them
as static HTML files.

Pages not exported here are still rendered on demand by the server.

Example:
  podcastr build
  podcastr build --out ./public`,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVarP(&buildOutDir, "out", "o", "", "output directory (overrides pages.output_dir)")
}

func runBuild(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}

	dir := buildOutDir
	if dir == "" {
		dir = appConfig.Pages.OutputDir
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	s, err := newSite(ctx, appConfig)
	if err != nil {
		return err
	}
	defer s.Close()

	start := time.Now()
	count, err := s.pages.Export(ctx, afero.NewOsFs(), dir)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported home page and %d episode page(s) to %s in %v\n", count, dir, time.Since(start).Round(time.Millisecond))
	return nil
}
