package folio

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type apiError struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func (a *App) apiListPosts(c echo.Context) error {
	posts := a.Cache.Posts(selectionFromQuery(c))
	return c.JSON(http.StatusOK, SearchPosts(posts, c.QueryParam("q")))
}

func (a *App) apiGetPost(c echo.Context) error {
	post, err := a.Cache.Get(postIDParam(c))
	if errors.Is(err, ErrNotFound) {
		return c.JSON(http.StatusNotFound, apiError{Error: err.Error()})
	}
	if err != nil {
		return err
	}
	if c.QueryParam("content") == "1" {
		post.Content = a.Content.Load(c.Request().Context(), post)
	}
	return c.JSON(http.StatusOK, post)
}

func (a *App) apiTags(c echo.Context) error {
	return c.JSON(http.StatusOK, a.Cache.Tags())
}

func (a *App) apiCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, a.Catalog.Categories())
}

func (a *App) apiCreatePost(c echo.Context) error {
	if !a.limiter.Allow(c.RealIP()) {
		return c.JSON(http.StatusTooManyRequests, apiError{Error: "too many posts submitted"})
	}
	var draft Draft
	if !strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		return c.JSON(http.StatusUnsupportedMediaType, apiError{Error: "expected application/json"})
	}
	if err := c.Bind(&draft); err != nil {
		return c.JSON(http.StatusBadRequest, apiError{Error: "invalid JSON body"})
	}
	post, err := a.Publish(draft)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusUnprocessableEntity, apiError{Error: verr.Message, Field: verr.Field})
		}
		return err
	}
	c.Response().Header().Set(echo.HeaderLocation, post.Link())
	return c.JSON(http.StatusCreated, post)
}
