package pages

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePage(t *testing.T, dir, kind, lang, slug, content string) {
	t.Helper()
	full := filepath.Join(dir, kind, lang)
	require.NoError(t, os.MkdirAll(full, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(full, slug+".md"), []byte(content), 0o644))
}

const arReturns = `---
title: سياسة الاسترجاع
summary: شروط استرجاع المنتجات
effective_date: 2026-01-01
version: "2.1"
---

## المدة

يمكن الاسترجاع خلال 14 يومًا.
`

func TestStoreGetPrefersRequestedLanguage(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "policies", "ar", "returns", arReturns)
	writePage(t, dir, "policies", "en", "returns", "---\ntitle: Returns Policy\n---\n\nbody\n")
	store := NewStore(dir, time.Minute)

	page, err := store.Get("policies", "returns", "ar")
	require.NoError(t, err)
	assert.Equal(t, "سياسة الاسترجاع", page.Title)
	assert.Equal(t, "2.1", page.Version)
	assert.Equal(t, 2026, page.EffectiveDate.Year())

	page, err = store.Get("policies", "returns", "en")
	require.NoError(t, err)
	assert.Equal(t, "Returns Policy", page.Title)
}

func TestStoreStripsByteOrderMark(t *testing.T) {
	// files exported from Windows editors often start with a BOM, which must
	// not hide the front matter delimiter
	dir := t.TempDir()
	writePage(t, dir, "policies", "en", "privacy", "\uFEFF---\ntitle: Privacy\n---\n\nbody\n")
	store := NewStore(dir, time.Minute)

	page, err := store.Get("policies", "privacy", "en")
	require.NoError(t, err)
	assert.Equal(t, "Privacy", page.Title)
}

func TestStoreGetFallsBackAcrossLanguages(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "policies", "en", "shipping", "---\ntitle: Shipping\n---\n\nbody\n")
	store := NewStore(dir, time.Minute)

	page, err := store.Get("policies", "shipping", "ar")
	require.NoError(t, err)
	assert.Equal(t, "Shipping", page.Title)
}

func TestStoreGetMissing(t *testing.T) {
	store := NewStore(t.TempDir(), time.Minute)
	_, err := store.Get("policies", "nope", "ar")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreRejectsTraversal(t *testing.T) {
	store := NewStore(t.TempDir(), time.Minute)
	for _, slug := range []string{"../secret", "a/b", ""} {
		_, err := store.Get("policies", slug, "ar")
		assert.ErrorIs(t, err, ErrNotFound, "slug %q", slug)
	}
}

func TestStoreSlugs(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "policies", "ar", "returns", arReturns)
	writePage(t, dir, "policies", "en", "returns", "body")
	writePage(t, dir, "policies", "en", "privacy", "body")
	store := NewStore(dir, time.Minute)

	slugs := store.Slugs("policies")
	assert.ElementsMatch(t, []string{"returns", "privacy"}, slugs)
}

func TestRenderMarkdown(t *testing.T) {
	out, err := Render("## العنوان الأول\n\nنص تجريبي مع **تأكيد**.\n\n### فرعي\n\nمزيد من النص.\n")
	require.NoError(t, err)
	html := string(out.HTML)
	assert.Contains(t, html, "<strong>")
	require.Len(t, out.TOC, 2)
	assert.Equal(t, 2, out.TOC[0].Level)
	assert.Equal(t, "العنوان الأول", out.TOC[0].Title)
	assert.NotEmpty(t, out.TOC[0].ID, "headings carry anchors")
	assert.Equal(t, 3, out.TOC[1].Level)
}

func TestRenderStripsScripts(t *testing.T) {
	out, err := Render("hello\n\n<script>alert(1)</script>\n\n<p onclick=\"x()\">para</p>\n")
	require.NoError(t, err)
	html := string(out.HTML)
	assert.NotContains(t, html, "<script")
	assert.NotContains(t, strings.ToLower(html), "onclick")
	assert.Contains(t, html, "hello")
}

func TestStoreRemoteFirst(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/policies/ar/returns.md" {
			_, _ = w.Write([]byte("---\ntitle: نسخة المحرر\n---\n\nمحتوى محدث\n"))
			return
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	writePage(t, dir, "policies", "ar", "returns", arReturns)
	store := NewStore(dir, time.Minute)
	store.UseRemote(srv.URL)

	page, err := store.Get("policies", "returns", "ar")
	require.NoError(t, err)
	assert.Equal(t, "نسخة المحرر", page.Title)
}

func TestStoreRemoteFailureFallsBackToBundled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	writePage(t, dir, "policies", "ar", "returns", arReturns)
	store := NewStore(dir, time.Minute)
	store.UseRemote(srv.URL)

	page, err := store.Get("policies", "returns", "ar")
	require.NoError(t, err)
	assert.Equal(t, "سياسة الاسترجاع", page.Title)
}
