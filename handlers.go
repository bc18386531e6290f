package folio

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
)

func selectionFromQuery(c echo.Context) Selection {
	return Selection{
		Category: strings.TrimSpace(c.QueryParam("category")),
		Tag:      strings.TrimSpace(c.QueryParam("tag")),
	}
}

func (a *App) handleBlog(c echo.Context) error {
	sel := selectionFromQuery(c)
	query := strings.TrimSpace(c.QueryParam("q"))
	page := BlogPage{
		Site: a.Config,
		Meta: PageMeta{
			Title:       a.Config.Name,
			Description: a.Config.Description,
			URL:         BuildURL(a.Config.URL, "blog"),
			OGType:      "website",
		},
		Posts:      SearchPosts(a.Cache.Posts(sel), query),
		Categories: a.Catalog.Categories(),
		Tags:       a.Cache.Tags(),
		Selection:  sel,
		Query:      query,
		Flash:      popFlash(c),
	}
	return RenderPage(c, "posts", a.Views.Blog(page), a.Views.BlogPosts(page))
}

// postIDParam returns the unescaped :id route parameter. Echo matches on the
// raw path, so an id containing "/" arrives still escaped as %2F.
func postIDParam(c echo.Context) string {
	raw := c.Param("id")
	id, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return id
}

func (a *App) handlePost(c echo.Context) error {
	post, err := a.Cache.Get(postIDParam(c))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		}
		return err
	}
	page := PostPage{
		Site: a.Config,
		Meta: PageMeta{
			Title:       post.Title + " | " + a.Config.Name,
			Description: post.Excerpt,
			URL:         BuildURL(a.Config.URL, "blog", post.ID),
			OGType:      "article",
		},
		Post:    post,
		Content: a.Content.Load(c.Request().Context(), post),
		Related: RelatedPosts(post, a.Cache.All()),
		Flash:   popFlash(c),
		JSONLD:  BlogPostingJsonLD(post, a.Config),
	}
	return Render(c, a.Views.Post(page))
}

func (a *App) handleSitemap(c echo.Context) error {
	return a.renderSitemap(c, a.Cache.All())
}

func (a *App) handleFeed(c echo.Context) error {
	return a.renderRSS(c, a.Cache.All())
}

// handleRobots generates robots.txt from the site URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /blog/new/\nDisallow: /api/\n\nSitemap: %s/sitemap.xml\n", a.Config.URL)
	return c.String(http.StatusOK, body)
}

func handleRootRedirect(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/blog/")
}

func handleBlogRedirect(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/blog/")
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound && !isAPI(c) {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		if !isAPI(c) {
			_ = RenderStatus(c, code, a.Views.ServerError())
			return
		}
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

func isAPI(c echo.Context) bool {
	return strings.HasPrefix(c.Request().URL.Path, "/api/")
}
