// Package folio is a personal blog engine built with Go, Echo, and templ.
// It keeps the post list as one JSON snapshot in a local key-value file and
// provides category/tag filtering, a post composer, feeds and a JSON API.
//
// Sites provide their own templ components via the ViewFuncs struct; the
// views package ships a default set.
package folio

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// ViewFuncs holds the templ components the engine calls when rendering pages.
type ViewFuncs struct {
	Blog        func(page BlogPage) templ.Component
	BlogPosts   func(page BlogPage) templ.Component // HTMX fragment of the post list
	Post        func(page PostPage) templ.Component
	Compose     func(page ComposePage) templ.Component
	NotFound    func() templ.Component
	ServerError func() templ.Component
}

// App is the central folio application. It wires together the store, cache,
// composer, handlers, middleware, and templates.
type App struct {
	Config   SiteConfig
	Echo     *echo.Echo
	Logger   *log.Logger
	Store    *PostStore
	Cache    *PostCache
	Catalog  Catalog
	Composer *Composer
	Content  *ContentLoader
	Views    ViewFuncs

	kv           *SQLiteKV
	limiter      *SubmitLimiter
	documents    DocumentSource
	now          func() time.Time
	composeMu    sync.Mutex
	customRoutes []func(*App)
	staticDir    string
	stopBackups  func()
}

// New creates a new folio App with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     views,
		staticDir: "public",
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(a)
	}
	if a.Logger == nil {
		a.Logger = cfg.Logger()
	}
	a.Echo.Logger = a.Logger
	a.Echo.HideBanner = true

	return a
}

// Init opens the store and registers middleware and routes without
// listening. Start calls it; tests drive a.Echo directly afterwards.
func (a *App) Init() error {
	if err := a.Config.Validate(); err != nil {
		return err
	}

	seed, err := LoadSeedFile(a.Config.SeedPath)
	if err != nil {
		return fmt.Errorf("folio: load seed: %w", err)
	}
	if dups := DuplicateIDs(seed); len(dups) > 0 {
		a.Logger.Warnf("seed posts share ids %v; lookups return the first", dups)
	}

	kv, err := OpenSQLiteKV(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("folio: init store: %w", err)
	}
	a.kv = kv
	a.Store = NewPostStore(kv, a.Config.SnapshotKey, seed, a.Logger)
	a.Cache = NewPostCache(a.Store, a.Config.PostCacheTTL)
	a.Catalog = NewCatalog(a.Config.Categories)
	a.Composer = &Composer{Store: a.Store, ReadTime: a.Config.ReadTime, Now: a.now}

	if a.documents == nil {
		if a.Config.ContentBaseURL != "" {
			a.documents = NewHTTPSource(a.Config.ContentBaseURL, a.Config.ContentTimeout)
		} else {
			a.documents = DirSource{FS: os.DirFS(a.Config.ContentDir)}
		}
	}
	a.Content = &ContentLoader{Source: a.documents, Logger: a.Logger}
	a.limiter = NewSubmitLimiter(a.Config.SubmitLimit, a.Config.SubmitWindow)

	if dups := DuplicateIDs(a.Cache.All()); len(dups) > 0 {
		a.Logger.Warnf("stored posts share ids %v; lookups return the first", dups)
	}

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

// Start initializes the app, starts the backup scheduler and serves HTTP.
func (a *App) Start() error {
	if err := a.Init(); err != nil {
		return err
	}

	stop, err := a.StartBackupScheduler(a.Config.BackupSchedule, a.Config.BackupDir)
	if err != nil {
		return err
	}
	a.stopBackups = stop

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/folio.css", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))

	e.Static("/public", a.staticDir)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	e.GET("/", handleRootRedirect)
	e.GET("/blog", handleBlogRedirect)
	e.GET("/blog/", a.handleBlog)
	e.GET("/blog/new/", a.handleComposeForm)
	e.POST("/blog/new/", a.handleComposeSubmit)
	e.GET("/blog/:id/", a.handlePost)

	api := e.Group("/api")
	api.GET("/posts", a.apiListPosts)
	api.POST("/posts", a.apiCreatePost)
	api.GET("/posts/:id", a.apiGetPost)
	api.GET("/tags", a.apiTags)
	api.GET("/categories", a.apiCategories)
}

// Publish validates d and prepends the resulting post to the current list,
// saving the snapshot. Concurrent publishes are serialized. A failed save is
// logged and the post is kept in the cache until a later write succeeds.
func (a *App) Publish(d Draft) (Post, error) {
	a.composeMu.Lock()
	defer a.composeMu.Unlock()

	next, post, err := a.Composer.Publish(a.Cache.All(), d)
	var werr *StorageWriteError
	switch {
	case errors.As(err, &werr):
		a.Logger.Errorf("%v", err)
		a.Cache.ReplaceUnsaved(next)
	case err != nil:
		return Post{}, err
	default:
		a.Cache.Replace(next)
	}
	a.Logger.Infof("published post %q", post.ID)
	return post, nil
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.stopBackups != nil {
		a.stopBackups()
	}
	if a.limiter != nil {
		a.limiter.Stop()
	}
	if a.kv != nil {
		return a.kv.Close()
	}
	return nil
}
