package pages

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/killallgit/podcastr/internal/models"
	"github.com/killallgit/podcastr/internal/services/cache"
	"github.com/killallgit/podcastr/internal/services/episodes"
)

// Generator renders and caches pages. Pages listed by StaticPaths can be
// rendered ahead of time; any other episode is rendered on its first
// request while that request waits. Pages past their revalidate time keep
// being served while one background regeneration replaces them.
type Generator struct {
	source   EpisodeSource
	store    cache.Cache
	renderer *renderer
	opts     Options

	group      singleflight.Group
	background sync.WaitGroup
	now        func() time.Time
}

// NewGenerator creates a page generator backed by store
func NewGenerator(source EpisodeSource, store cache.Cache, opts Options) (*Generator, error) {
	r, err := newRenderer()
	if err != nil {
		return nil, err
	}

	return &Generator{
		source:   source,
		store:    store,
		renderer: r,
		opts:     opts.withDefaults(),
		now:      time.Now,
	}, nil
}

// Options returns the effective configuration
func (g *Generator) Options() Options {
	return g.opts
}

// StaticPaths returns the slugs of the newest episodes
func (g *Generator) StaticPaths(ctx context.Context) ([]string, error) {
	latest, err := g.source.FetchLatestEpisodes(ctx, g.opts.PrerenderLimit)
	if err != nil {
		return nil, fmt.Errorf("listing static paths: %w", err)
	}

	paths := make([]string, 0, len(latest))
	for _, episode := range latest {
		paths = append(paths, episode.ID)
	}
	return paths, nil
}

// StaticProps fetches the episode behind slug and converts it to display values
func (g *Generator) StaticProps(ctx context.Context, slug string) (*Props, error) {
	if err := validateSlug(slug); err != nil {
		return nil, err
	}

	episode, err := g.fetchEpisode(ctx, slug)
	if err != nil {
		return nil, err
	}
	return g.propsFor(episode), nil
}

func (g *Generator) fetchEpisode(ctx context.Context, slug string) (*models.Episode, error) {
	episode, err := g.source.FetchEpisode(ctx, slug)
	if err != nil {
		if episodes.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrPageNotFound, slug)
		}
		return nil, err
	}
	return episode, nil
}

func (g *Generator) propsFor(episode *models.Episode) *Props {
	return &Props{
		Episode:    g.source.Transformer().ModelToDetail(episode),
		Revalidate: g.opts.Revalidate,
	}
}

// Prerender renders every static path and the home page into the cache
func (g *Generator) Prerender(ctx context.Context) (int, error) {
	paths, err := g.StaticPaths(ctx)
	if err != nil {
		return 0, err
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.opts.Concurrency)

	eg.Go(func() error {
		_, err := g.regenerate(egCtx, homeSlug)
		return err
	})
	for _, slug := range paths {
		eg.Go(func() error {
			_, err := g.regenerate(egCtx, slug)
			return err
		})
	}

	if err := eg.Wait(); err != nil {
		return 0, fmt.Errorf("prerendering pages: %w", err)
	}

	log.Printf("[INFO] Prerendered %d episode pages", len(paths))
	return len(paths), nil
}

// Page returns the rendered episode page for slug
func (g *Generator) Page(ctx context.Context, slug string) (*RenderedPage, error) {
	if err := validateSlug(slug); err != nil {
		return nil, err
	}
	return g.serve(ctx, slug)
}

// Home returns the rendered episode list page
func (g *Generator) Home(ctx context.Context) (*RenderedPage, error) {
	return g.serve(ctx, homeSlug)
}

// RenderError renders an error page with the site layout
func (g *Generator) RenderError(status int, message string) ([]byte, error) {
	return g.renderer.renderError(g.opts.SiteName, status, message)
}

// Invalidate drops a cached page so the next request regenerates it
func (g *Generator) Invalidate(ctx context.Context, slug string) error {
	return g.store.Delete(ctx, pageKey(slug))
}

// Revalidate regenerates a page right away, ignoring its revalidate time.
// An empty slug targets the home page. A page whose episode is gone is
// dropped and ErrPageNotFound returned.
func (g *Generator) Revalidate(ctx context.Context, slug string) (*RenderedPage, error) {
	if slug != homeSlug {
		if err := validateSlug(slug); err != nil {
			return nil, err
		}
	}

	page, err := g.regenerate(ctx, slug)
	if err != nil {
		if errors.Is(err, ErrPageNotFound) {
			_ = g.Invalidate(ctx, slug)
		}
		return nil, err
	}
	log.Printf("[INFO] Revalidated page %s on demand", pageKey(slug))
	return page, nil
}

func (g *Generator) serve(ctx context.Context, slug string) (*RenderedPage, error) {
	page, ok := g.load(ctx, slug)
	if !ok {
		log.Printf("[DEBUG] Page %s not cached, generating", slug)
		return g.regenerate(ctx, slug)
	}

	if page.Stale(g.now()) {
		g.revalidateInBackground(ctx, slug)
	}
	return page, nil
}

// regenerate renders slug once even when called concurrently. The render
// is shared by every waiting caller, so it runs detached from ctx and only
// the caller whose ctx ends stops waiting.
func (g *Generator) regenerate(ctx context.Context, slug string) (*RenderedPage, error) {
	ch := g.group.DoChan(pageKey(slug), func() (any, error) {
		renderCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), g.opts.FetchTimeout)
		defer cancel()
		return g.generate(renderCtx, slug)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*RenderedPage), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (g *Generator) revalidateInBackground(ctx context.Context, slug string) {
	g.background.Add(1)
	go func() {
		defer g.background.Done()
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[ERROR] Panic regenerating page %s: %v", slug, r)
			}
		}()

		bgCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), g.opts.FetchTimeout)
		defer cancel()

		if _, err := g.regenerate(bgCtx, slug); err != nil {
			if errors.Is(err, ErrPageNotFound) {
				log.Printf("[INFO] Episode %s no longer exists, dropping page", slug)
				_ = g.Invalidate(bgCtx, slug)
				return
			}
			log.Printf("[WARN] Failed to regenerate page %s, serving stale copy: %v", slug, err)
		}
	}()
}

// Wait blocks until background regenerations have finished
func (g *Generator) Wait() {
	g.background.Wait()
}

func (g *Generator) generate(ctx context.Context, slug string) (*RenderedPage, error) {
	var (
		html []byte
		err  error
	)
	if slug == homeSlug {
		html, err = g.renderHome(ctx)
	} else {
		html, err = g.renderEpisode(ctx, slug)
	}
	if err != nil {
		return nil, err
	}

	now := g.now()
	page := &RenderedPage{
		Slug:         slug,
		HTML:         html,
		GeneratedAt:  now,
		RevalidateAt: now.Add(g.opts.Revalidate),
	}
	g.save(ctx, page)
	return page, nil
}

func (g *Generator) renderEpisode(ctx context.Context, slug string) ([]byte, error) {
	episode, err := g.fetchEpisode(ctx, slug)
	if err != nil {
		return nil, err
	}

	props := g.propsFor(episode)
	playable := g.source.Transformer().ModelToPlayer(episode)
	return g.renderer.renderEpisode(g.opts.SiteName, props.Episode, playable)
}

func (g *Generator) renderHome(ctx context.Context) ([]byte, error) {
	latest, err := g.source.FetchLatestEpisodes(ctx, g.opts.PrerenderLimit)
	if err != nil {
		return nil, fmt.Errorf("listing latest episodes: %w", err)
	}

	transformer := g.source.Transformer()
	items := make([]homeItem, 0, len(latest))
	for i := range latest {
		items = append(items, homeItem{
			Detail:   transformer.ModelToDetail(&latest[i]),
			Playable: transformer.ModelToPlayer(&latest[i]),
		})
	}
	return g.renderer.renderHome(g.opts.SiteName, items)
}

func (g *Generator) load(ctx context.Context, slug string) (*RenderedPage, bool) {
	data, ok := g.store.Get(ctx, pageKey(slug))
	if !ok {
		return nil, false
	}

	var page RenderedPage
	if err := json.Unmarshal(data, &page); err != nil {
		log.Printf("[WARN] Dropping undecodable page %s: %v", slug, err)
		_ = g.store.Delete(ctx, pageKey(slug))
		return nil, false
	}
	return &page, true
}

func (g *Generator) save(ctx context.Context, page *RenderedPage) {
	data, err := json.Marshal(page)
	if err != nil {
		log.Printf("[ERROR] Failed to encode page %s: %v", page.Slug, err)
		return
	}
	if err := g.store.Set(ctx, pageKey(page.Slug), data, g.opts.Retention); err != nil {
		log.Printf("[WARN] Failed to cache page %s: %v", page.Slug, err)
	}
}

func pageKey(slug string) string {
	if slug == homeSlug {
		return "page:home"
	}
	return "page:episode:" + slug
}

func validateSlug(slug string) error {
	if slug == "" || slug == "." || slug == ".." ||
		strings.ContainsAny(slug, `/\`) || len(slug) > 256 {
		return fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
	}
	return nil
}
