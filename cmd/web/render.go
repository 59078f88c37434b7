package main

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"rawnaq.store/web/internal/format"
	"rawnaq.store/web/internal/handlers"
	mw "rawnaq.store/web/internal/middleware"
	"rawnaq.store/web/internal/nav"
	"rawnaq.store/web/internal/seo"
)

type renderer struct {
	dir       string
	devMode   bool
	translate func(lang, key string) string
	log       *zap.Logger

	mu    sync.RWMutex
	cache *template.Template
}

func newRenderer(dir string, devMode bool, translate func(lang, key string) string, log *zap.Logger) (*renderer, error) {
	r := &renderer{dir: dir, devMode: devMode, translate: translate, log: log}
	tc, err := r.parse()
	if err != nil {
		return nil, err
	}
	r.cache = tc
	return r, nil
}

func (rd *renderer) parse() (*template.Template, error) {
	funcMap := template.FuncMap{
		"t":        rd.translate,
		"dict":     templateDict,
		"now":      time.Now,
		"price":    format.Price,
		"discount": format.Discount,
		"date":     format.Date,
		"dir":      mw.Dir,
	}
	// ParseGlob has no ** support, so walk for .tmpl files
	var files []string
	if err := filepath.WalkDir(rd.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found under %s", rd.dir)
	}
	return template.New("_root").Funcs(funcMap).ParseFiles(files...)
}

func (rd *renderer) templates() (*template.Template, error) {
	if rd.devMode {
		return rd.parse()
	}
	rd.mu.RLock()
	defer rd.mu.RUnlock()
	return rd.cache, nil
}

// templateDict builds a map from key/value pairs, for passing composite data
// to nested templates.
func templateDict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("dict: odd argument count")
	}
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", pairs[i])
		}
		m[key] = pairs[i+1]
	}
	return m, nil
}

// renderPage executes the base layout with a named page block selected via
// PageData; renderTemplate executes one named template, used for fragments.
func (rd *renderer) renderPage(w http.ResponseWriter, r *http.Request, data any) {
	rd.execute(w, r, "base", data)
}

func (rd *renderer) renderTemplate(w http.ResponseWriter, r *http.Request, name string, data any) {
	rd.execute(w, r, name, data)
}

func (rd *renderer) execute(w http.ResponseWriter, r *http.Request, name string, data any) {
	t, err := rd.templates()
	if err != nil {
		rd.log.Error("template parse failed", zap.Error(err))
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, name, data); err != nil {
		rd.log.Error("template execute failed", zap.String("template", name), zap.Error(err))
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// basePageData fills the layout fields every page shares.
func (app *application) basePageData(r *http.Request, title string) handlers.PageData {
	lang := mw.Lang(r)
	s := mw.GetSession(r)
	return handlers.PageData{
		Title:         title,
		Lang:          lang,
		Dir:           mw.Dir(lang),
		Path:          r.URL.Path,
		Nav:           nav.Build(r.URL.Path),
		Breadcrumbs:   nav.Breadcrumbs(r.URL.Path),
		Analytics:     handlers.LoadAnalyticsFromEnv(),
		CartCount:     s.CartCount(),
		WishlistCount: s.WishlistCount(),
		CSRFToken:     s.CSRFToken,
	}
}

// fillSEO populates shared SEO fields on a page view model.
func (app *application) fillSEO(r *http.Request, vm *handlers.PageData, description string) {
	lang := vm.Lang
	brand := app.t(lang, "brand.name")
	vm.SEO.Title = vm.Title + " | " + brand
	vm.SEO.Description = description
	vm.SEO.Canonical = app.absoluteURL(r)
	vm.SEO.OG.URL = vm.SEO.Canonical
	vm.SEO.OG.SiteName = brand
	vm.SEO.OG.Title = vm.SEO.Title
	vm.SEO.OG.Description = description
	vm.SEO.OG.Type = "website"
	vm.SEO.Twitter.Card = "summary_large_image"
	vm.SEO.Alternates = app.buildAlternates(r)
	if len(vm.Breadcrumbs) > 1 {
		items := make([]seo.BreadcrumbItem, 0, len(vm.Breadcrumbs))
		for _, c := range vm.Breadcrumbs {
			label := c.Label
			if c.LabelKey != "" {
				label = app.t(lang, c.LabelKey)
			}
			items = append(items, seo.BreadcrumbItem{Name: label, Item: app.cfg.BaseURL + c.Href})
		}
		vm.SEO.JSONLD = append(vm.SEO.JSONLD, seo.JSON(seo.BreadcrumbList(items)))
	}
}

func (app *application) t(lang, key string) string {
	return app.bundle.T(lang, key)
}

// absoluteURL rebuilds the request URL on the configured public origin.
func (app *application) absoluteURL(r *http.Request) string {
	base := strings.TrimRight(app.cfg.BaseURL, "/")
	if base == "" {
		return r.URL.Path
	}
	return base + r.URL.Path
}

func (app *application) buildAlternates(r *http.Request) []seo.Alternate {
	path := r.URL.Path
	base := strings.TrimRight(app.cfg.BaseURL, "/")
	out := make([]seo.Alternate, 0, 2)
	for _, lang := range app.bundle.Supported() {
		out = append(out, seo.Alternate{
			Href:     base + path + "?hl=" + lang,
			Hreflang: lang,
		})
	}
	return out
}
