package pages

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

// Export renders the home page and every static path and writes them under
// dir as index.html and episodes/<slug>.html. It returns the number of
// episode pages written.
func (g *Generator) Export(ctx context.Context, fs afero.Fs, dir string) (int, error) {
	episodesDir := filepath.Join(dir, "episodes")
	if err := fs.MkdirAll(episodesDir, 0o755); err != nil {
		return 0, fmt.Errorf("creating output directory: %w", err)
	}

	paths, err := g.StaticPaths(ctx)
	if err != nil {
		return 0, err
	}

	home, err := g.regenerate(ctx, homeSlug)
	if err != nil {
		return 0, fmt.Errorf("rendering home page: %w", err)
	}
	if err := writePage(fs, filepath.Join(dir, "index.html"), home); err != nil {
		return 0, err
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.opts.Concurrency)

	for _, slug := range paths {
		eg.Go(func() error {
			if err := validateSlug(slug); err != nil {
				return err
			}
			page, err := g.regenerate(egCtx, slug)
			if err != nil {
				return fmt.Errorf("rendering %s: %w", slug, err)
			}
			return writePage(fs, filepath.Join(episodesDir, slug+".html"), page)
		})
	}

	if err := eg.Wait(); err != nil {
		return 0, err
	}

	log.Printf("[INFO] Exported %d episode pages to %s", len(paths), dir)
	return len(paths), nil
}

func writePage(fs afero.Fs, path string, page *RenderedPage) error {
	if err := afero.WriteFile(fs, path, page.HTML, os.FileMode(0o644)); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
