package catalog

import (
	"strconv"
	"strings"

	"rawnaq.store/web/internal/slug"
)

// MatchCollection finds the collection a route token refers to. The token may
// be a Mongo-style id, a numeric legacy id, or a slugged localized name.
// Identity forms are tried strongest first across the whole list, so an exact
// id match on a later entry beats a slug match on an earlier one:
//
//  1. primary id, exact string
//  2. legacy id, literal string form
//  3. slug of the Arabic name
//  4. slug of the English name
//  5. numeric token against the legacy integer id
func MatchCollection(token string, list []Collection) (Collection, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Collection{}, false
	}
	passes := []func(Collection) bool{
		func(c Collection) bool { return c.ID != "" && c.ID == token },
		func(c Collection) bool { return c.LegacyIDRaw != "" && c.LegacyIDRaw == token },
		func(c Collection) bool { return slugMatches(c.Name.Resolve("ar"), token) },
		func(c Collection) bool { return slugMatches(c.Name.Resolve("en"), token) },
	}
	if n, err := strconv.ParseInt(token, 10, 64); err == nil {
		passes = append(passes, func(c Collection) bool { return c.LegacyID != 0 && c.LegacyID == n })
	}
	for _, match := range passes {
		for _, c := range list {
			if match(c) {
				return c, true
			}
		}
	}
	return Collection{}, false
}

// MatchCategory resolves a category route token with the same identity order
// as collections, minus the Mongo id form categories do not carry.
func MatchCategory(token string, list []Category) (Category, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Category{}, false
	}
	passes := []func(Category) bool{
		func(c Category) bool { return c.ID != 0 && strconv.FormatInt(c.ID, 10) == token },
		func(c Category) bool { return slugMatches(c.Name.Resolve("ar"), token) },
		func(c Category) bool { return slugMatches(c.Name.Resolve("en"), token) },
	}
	for _, match := range passes {
		for _, c := range list {
			if match(c) {
				return c, true
			}
		}
	}
	return Category{}, false
}

func slugMatches(name, token string) bool {
	if name == "" {
		return false
	}
	return slug.Make(name) == token || slug.Make(name) == slug.Make(token)
}
