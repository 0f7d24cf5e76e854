package pages

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcastr/api/types"
	pagesService "github.com/killallgit/podcastr/internal/services/pages"
)

const htmlContentType = "text/html; charset=utf-8"

// Home serves the episode list page
func Home(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := deps.Pages.Home(c.Request.Context())
		if err != nil {
			log.Printf("[ERROR] Failed to render home page: %v", err)
			RenderError(c, deps, http.StatusInternalServerError, "Não foi possível carregar os episódios.")
			return
		}
		writePage(c, page)
	}
}

// Episode serves an episode detail page
func Episode(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")

		page, err := deps.Pages.Page(c.Request.Context(), slug)
		if err != nil {
			if errors.Is(err, pagesService.ErrPageNotFound) || errors.Is(err, pagesService.ErrInvalidSlug) {
				log.Printf("[WARN] Episode page not found - slug: %s", slug)
				RenderError(c, deps, http.StatusNotFound, "Episódio não encontrado.")
				return
			}
			log.Printf("[ERROR] Failed to render episode page %s: %v", slug, err)
			RenderError(c, deps, http.StatusInternalServerError, "Não foi possível carregar o episódio.")
			return
		}
		writePage(c, page)
	}
}

// RenderError writes an HTML error page, falling back to plain text
func RenderError(c *gin.Context, deps *types.Dependencies, status int, message string) {
	if deps != nil && deps.Pages != nil {
		if html, err := deps.Pages.RenderError(status, message); err == nil {
			c.Data(status, htmlContentType, html)
			c.Abort()
			return
		}
	}
	c.AbortWithStatus(status)
	_, _ = c.Writer.WriteString(message)
}

func writePage(c *gin.Context, page *pagesService.RenderedPage) {
	maxAge := int(time.Until(page.RevalidateAt).Seconds())
	if maxAge < 0 {
		maxAge = 0
	}
	c.Header("Cache-Control", fmt.Sprintf("public, s-maxage=%d, stale-while-revalidate", maxAge))
	c.Header("Last-Modified", page.GeneratedAt.UTC().Format(http.TimeFormat))
	c.Data(http.StatusOK, htmlContentType, page.HTML)
}
