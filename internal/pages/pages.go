// Package pages serves the storefront's static content: policy documents and
// the about page. Pages live as localized markdown files with YAML front
// matter under content/<kind>/<lang>/<slug>.md and render to sanitized HTML.
package pages

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrNotFound reports that no page exists for the kind/slug/lang triple.
var ErrNotFound = errors.New("pages: not found")

// Page is a localized static page ready for the layout.
type Page struct {
	Kind          string
	Slug          string
	Lang          string
	Title         string
	Summary       string
	Body          string
	EffectiveDate time.Time
	UpdatedAt     time.Time
	Version       string
	Icon          string
	SEO           PageSEO
}

// PageSEO holds optional metadata overrides from front matter.
type PageSEO struct {
	Title       string
	Description string
	OGImage     string
}

type frontMatter struct {
	Title         string `yaml:"title"`
	Summary       string `yaml:"summary"`
	Lang          string `yaml:"lang"`
	EffectiveDate string `yaml:"effective_date"`
	UpdatedAt     string `yaml:"updated_at"`
	Version       string `yaml:"version"`
	Icon          string `yaml:"icon"`
	SEO           struct {
		Title       string `yaml:"title"`
		Description string `yaml:"description"`
		OGImage     string `yaml:"og_image"`
	} `yaml:"seo"`
}

type cacheEntry struct {
	page    Page
	expires time.Time
}

// Store serves pages remote-first when a content API is configured, falling
// back to the files bundled on disk, with a small TTL cache in front.
type Store struct {
	dir    string
	ttl    time.Duration
	remote string
	httpc  *http.Client

	mu    sync.RWMutex
	cache map[string]cacheEntry
}

// NewStore builds a page store over a content directory.
func NewStore(dir string, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &Store{dir: dir, ttl: ttl, cache: map[string]cacheEntry{}}
}

// UseRemote points the store at a content API serving the same
// <kind>/<lang>/<slug>.md layout. Local files remain the fallback.
func (s *Store) UseRemote(baseURL string) {
	s.remote = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	s.httpc = &http.Client{Timeout: 5 * time.Second}
}

// Get loads a page, preferring the requested language and falling back to
// the other one so a half-translated document still renders.
func (s *Store) Get(kind, slug, lang string) (Page, error) {
	kind = strings.TrimSpace(strings.ToLower(kind))
	slug = sanitizeSlug(slug)
	if kind == "" || slug == "" {
		return Page{}, ErrNotFound
	}
	if lang != "en" {
		lang = "ar"
	}

	key := strings.Join([]string{kind, lang, slug}, "|")
	if page, ok := s.cached(key); ok {
		return page, nil
	}

	for _, candidate := range []string{lang, otherLang(lang)} {
		page, err := s.read(kind, slug, candidate)
		if err == nil {
			s.store(key, page)
			return page, nil
		}
		if errors.Is(err, ErrNotFound) {
			continue
		}
		return Page{}, err
	}
	return Page{}, ErrNotFound
}

// Slugs lists available page slugs for a kind across both languages.
func (s *Store) Slugs(kind string) []string {
	seen := map[string]bool{}
	var out []string
	for _, lang := range []string{"ar", "en"} {
		entries, err := os.ReadDir(filepath.Join(s.dir, kind, lang))
		if err != nil {
			continue
		}
		for _, e := range entries {
			name := e.Name()
			if e.IsDir() || !strings.HasSuffix(name, ".md") {
				continue
			}
			slug := strings.TrimSuffix(name, ".md")
			if !seen[slug] {
				seen[slug] = true
				out = append(out, slug)
			}
		}
	}
	return out
}

func (s *Store) read(kind, slug, lang string) (Page, error) {
	if s.remote != "" {
		if page, err := s.readRemote(kind, slug, lang); err == nil {
			return page, nil
		}
	}
	return s.readLocal(kind, slug, lang)
}

// readRemote fetches one document from the content API. Any failure, transport
// or otherwise, sends the caller to the bundled files.
func (s *Store) readRemote(kind, slug, lang string) (Page, error) {
	endpoint, err := url.JoinPath(s.remote, kind, lang, slug+".md")
	if err != nil {
		return Page{}, err
	}
	resp, err := s.httpc.Get(endpoint)
	if err != nil {
		return Page{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return Page{}, ErrNotFound
	}
	if resp.StatusCode >= 400 {
		return Page{}, fmt.Errorf("pages: %s status %d", endpoint, resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Page{}, err
	}
	return s.parse(kind, slug, lang, data)
}

func (s *Store) readLocal(kind, slug, lang string) (Page, error) {
	file := filepath.Join(s.dir, kind, lang, slug+".md")
	data, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Page{}, ErrNotFound
		}
		return Page{}, err
	}
	page, err := s.parse(kind, slug, lang, data)
	if err != nil {
		return Page{}, err
	}
	if page.UpdatedAt.IsZero() {
		if info, err := os.Stat(file); err == nil {
			page.UpdatedAt = info.ModTime()
		}
	}
	return page, nil
}

func (s *Store) parse(kind, slug, lang string, data []byte) (Page, error) {
	fm, body := splitFrontMatter(string(data))
	var front frontMatter
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return Page{}, err
		}
	}

	page := Page{
		Kind:    kind,
		Slug:    slug,
		Lang:    firstNonEmpty(strings.TrimSpace(front.Lang), lang),
		Title:   strings.TrimSpace(front.Title),
		Summary: strings.TrimSpace(front.Summary),
		Body:    body,
		Version: strings.TrimSpace(front.Version),
		Icon:    strings.TrimSpace(front.Icon),
		SEO: PageSEO{
			Title:       strings.TrimSpace(front.SEO.Title),
			Description: strings.TrimSpace(front.SEO.Description),
			OGImage:     strings.TrimSpace(front.SEO.OGImage),
		},
	}
	page.EffectiveDate = parseDate(front.EffectiveDate)
	page.UpdatedAt = parseDate(front.UpdatedAt)
	if page.Title == "" {
		page.Title = prettifySlug(slug)
	}
	return page, nil
}

func (s *Store) cached(key string) (Page, bool) {
	s.mu.RLock()
	entry, ok := s.cache[key]
	s.mu.RUnlock()
	if !ok || time.Now().After(entry.expires) {
		return Page{}, false
	}
	return entry.page, true
}

func (s *Store) store(key string, page Page) {
	s.mu.Lock()
	s.cache[key] = cacheEntry{page: page, expires: time.Now().Add(s.ttl)}
	s.mu.Unlock()
}

func otherLang(lang string) string {
	if lang == "ar" {
		return "en"
	}
	return "ar"
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\uFEFF")
	lines := strings.Split(input, "\n")
	if len(lines) == 0 {
		return "", ""
	}
	if strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n\r")
		}
	}
	return "", input
}

func parseDate(v string) time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02", "2006/01/02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

func prettifySlug(slug string) string {
	parts := strings.Split(slug, "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		runes := []rune(part)
		if runes[0] >= 'a' && runes[0] <= 'z' {
			runes[0] -= 'a' - 'A'
		}
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}

func sanitizeSlug(slug string) string {
	slug = strings.TrimSpace(strings.ToLower(slug))
	slug = strings.Trim(slug, "/")
	if slug == "" || strings.Contains(slug, "..") || strings.ContainsRune(slug, os.PathSeparator) {
		return ""
	}
	return slug
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
