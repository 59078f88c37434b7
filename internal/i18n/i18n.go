// Package i18n carries the storefront's UI strings for its two display
// languages. The storefront is strictly bilingual, Arabic first, so the
// bundle holds exactly one dictionary per side of the pair and every lookup
// falls across to the companion language before surfacing the raw key.
package i18n

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

const (
	Arabic  = "ar"
	English = "en"
)

// Normalize maps an arbitrary language tag onto the pair. Anything that is
// not English renders Arabic.
func Normalize(lang string) string {
	if strings.EqualFold(lang, English) {
		return English
	}
	return Arabic
}

// Bundle holds the Arabic and English UI dictionaries.
type Bundle struct {
	ar       map[string]string
	en       map[string]string
	fallback string
}

// Load reads ar.json and en.json from dir. The fallback language's file must
// exist; the companion file may lag behind while translations catch up.
func Load(dir, fallback string) (*Bundle, error) {
	b := &Bundle{fallback: Normalize(fallback)}
	for _, lang := range []string{Arabic, English} {
		m, err := readDict(filepath.Join(dir, lang+".json"))
		if err != nil {
			if lang == b.fallback {
				return nil, fmt.Errorf("load locale %s: %w", lang, err)
			}
			continue
		}
		if lang == English {
			b.en = m
		} else {
			b.ar = m
		}
	}
	return b, nil
}

func readDict(path string) (map[string]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m map[string]string
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return m, nil
}

// Supported lists the display languages, for hreflang alternates.
func (b *Bundle) Supported() []string { return []string{Arabic, English} }

// Fallback returns the default display language.
func (b *Bundle) Fallback() string { return b.fallback }

func (b *Bundle) dict(lang string) map[string]string {
	if lang == English {
		return b.en
	}
	return b.ar
}

// T translates key for lang, trying the companion language before giving the
// key back verbatim.
func (b *Bundle) T(lang, key string) string {
	lang = Normalize(lang)
	if v, ok := b.dict(lang)[key]; ok {
		return v
	}
	if v, ok := b.dict(Other(lang))[key]; ok {
		return v
	}
	return key
}

// Resolve picks a display language from an Accept-Language header. Only base
// subtags matter; entries outside the pair or marked not-acceptable with q=0
// are skipped, and an empty or unmatched header yields the fallback.
func (b *Bundle) Resolve(acceptLang string) string {
	type pref struct {
		lang string
		q    float64
		pos  int
	}
	var prefs []pref
	for i, part := range strings.Split(acceptLang, ",") {
		p := strings.TrimSpace(part)
		if p == "" {
			continue
		}
		q := 1.0
		if sc := strings.IndexByte(p, ';'); sc != -1 {
			if params := strings.TrimSpace(p[sc+1:]); strings.HasPrefix(params, "q=") {
				if v, err := strconv.ParseFloat(params[2:], 64); err == nil {
					q = min(max(v, 0), 1)
				}
			}
			p = strings.TrimSpace(p[:sc])
		}
		if dash := strings.IndexByte(p, '-'); dash != -1 {
			p = p[:dash]
		}
		if q == 0 {
			continue
		}
		switch l := strings.ToLower(p); l {
		case Arabic, English:
			prefs = append(prefs, pref{lang: l, q: q, pos: i})
		}
	}
	if len(prefs) == 0 {
		return b.fallback
	}
	sort.SliceStable(prefs, func(i, j int) bool {
		if prefs[i].q == prefs[j].q {
			return prefs[i].pos < prefs[j].pos
		}
		return prefs[i].q > prefs[j].q
	})
	return prefs[0].lang
}
