package folio

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

func (a *App) handleComposeForm(c echo.Context) error {
	return Render(c, a.Views.Compose(a.composePage(c, Draft{}, nil)))
}

func (a *App) handleComposeSubmit(c echo.Context) error {
	if !a.limiter.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many posts submitted. Try again later.")
	}
	if err := c.Request().ParseForm(); err != nil {
		return err
	}
	draft := Draft{
		Title:    c.FormValue("title"),
		Excerpt:  c.FormValue("excerpt"),
		Category: c.FormValue("category"),
		Tags:     c.FormValue("tags"),
		Content:  c.FormValue("content"),
	}
	post, err := a.Publish(draft)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return RenderStatus(c, http.StatusUnprocessableEntity, a.Views.Compose(a.composePage(c, draft, verr)))
		}
		return err
	}
	if err := addFlash(c, "Post published."); err != nil {
		c.Logger().Warnf("flash: %v", err)
	}
	return c.Redirect(http.StatusSeeOther, post.Link())
}

func (a *App) composePage(c echo.Context, d Draft, verr *ValidationError) ComposePage {
	return ComposePage{
		Site: a.Config,
		Meta: PageMeta{
			Title:  "New post | " + a.Config.Name,
			URL:    BuildURL(a.Config.URL, "blog", "new"),
			OGType: "website",
		},
		Draft:      d,
		Categories: a.Catalog.Selectable(),
		Error:      verr,
		CSRFToken:  CsrfToken(c),
	}
}
