package catalog

import (
	"context"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"rawnaq.store/web/internal/snapshot"
)

// Resolver turns a collection route token into something renderable. It walks
// the sources in fixed order and never fails: snapshot cache, direct fetch by
// token, the full collection list plus a follow-up product fetch, and finally
// the bundled static set.
type Resolver struct {
	api    *Client
	static *StaticSet
	cache  snapshot.Store
	log    *zap.Logger
}

// CollectionResult is what a collection page renders: the resolved collection
// when one was identified, and the products to show either way.
type CollectionResult struct {
	Collection *Collection `json:"collection,omitempty"`
	Products   []Product   `json:"products"`
	// FromStatic marks results that fell through to the bundled set.
	FromStatic bool `json:"fromStatic,omitempty"`
}

// NewResolver wires a resolver over the remote client, the bundled set, and
// a snapshot store.
func NewResolver(api *Client, static *StaticSet, cache snapshot.Store, log *zap.Logger) *Resolver {
	return &Resolver{api: api, static: static, cache: cache, log: log}
}

// Collection resolves a route token to a renderable result. A fresh snapshot
// short-circuits everything; otherwise the chain runs and its outcome is
// snapshotted, empty or not, so a flapping upstream is not hammered.
func (r *Resolver) Collection(ctx context.Context, token string) CollectionResult {
	key := snapshot.Key("collection", token)
	var cached CollectionResult
	if r.cache.Get(ctx, key, &cached) {
		return cached
	}
	res := r.resolve(ctx, token)
	r.cache.Set(ctx, key, res)
	return res
}

// Invalidate drops the snapshot for one collection token.
func (r *Resolver) Invalidate(ctx context.Context, token string) {
	r.cache.Invalidate(ctx, snapshot.Key("collection", token))
}

func (r *Resolver) resolve(ctx context.Context, token string) CollectionResult {
	var (
		col   Collection
		colOK bool
		prods []Product
	)

	// direct fetches run in parallel; either may fail without sinking the page
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, ok, err := r.api.CollectionByID(gctx, token)
		if err != nil {
			r.log.Debug("collection fetch failed", zap.String("token", token), zap.Error(err))
			return nil
		}
		col, colOK = c, ok
		return nil
	})
	g.Go(func() error {
		ps, err := r.api.CollectionProducts(gctx, token, ListQuery{})
		if err != nil {
			r.log.Debug("collection products fetch failed", zap.String("token", token), zap.Error(err))
			return nil
		}
		prods = ps
		return nil
	})
	_ = g.Wait()

	if !colOK || len(prods) == 0 {
		if c, ps, ok := r.resolveViaList(ctx, token, prods); ok {
			col, colOK = c, true
			prods = ps
		}
	}

	if len(prods) == 0 {
		var scope *Collection
		if colOK {
			scope = &col
		}
		prods = r.static.FilterFor(scope)
		r.log.Info("collection served from bundled set",
			zap.String("token", token),
			zap.Bool("identified", colOK),
			zap.Int("products", len(prods)))
		return result(col, colOK, prods, true)
	}
	return result(col, colOK, prods, false)
}

// resolveViaList scans the full collection list for the token and, when the
// direct product fetch came back empty, retries products under the matched
// collection's own identifier.
func (r *Resolver) resolveViaList(ctx context.Context, token string, prods []Product) (Collection, []Product, bool) {
	list, err := r.api.Collections(ctx)
	if err != nil {
		r.log.Debug("collection list fetch failed", zap.Error(err))
		return Collection{}, nil, false
	}
	matched, ok := MatchCollection(token, list)
	if !ok {
		return Collection{}, nil, false
	}
	if len(prods) == 0 {
		if id := matched.RouteID(); id != "" && id != token {
			if ps, err := r.api.CollectionProducts(ctx, id, ListQuery{}); err == nil {
				prods = ps
			}
		}
	}
	return matched, prods, true
}

func result(col Collection, colOK bool, prods []Product, static bool) CollectionResult {
	res := CollectionResult{Products: prods, FromStatic: static}
	if colOK {
		c := col
		res.Collection = &c
	}
	return res
}

// Collections returns the collection list, snapshot-first. Used by the home
// page strip and the collections index.
func (r *Resolver) Collections(ctx context.Context) []Collection {
	key := snapshot.Key("collections", "all")
	var cached []Collection
	if r.cache.Get(ctx, key, &cached) {
		return cached
	}
	list, err := r.api.Collections(ctx)
	if err != nil {
		r.log.Debug("collections fetch failed", zap.Error(err))
		return nil
	}
	r.cache.Set(ctx, key, list)
	return list
}

// Featured returns products for the home page strip: the remote listing when
// available, the bundled set otherwise.
func (r *Resolver) Featured(ctx context.Context, limit int) []Product {
	// keyed per limit: the remote listing honors it, so an 8-item home strip
	// snapshot must not answer an unbounded lookup
	key := snapshot.Key("products", "featured:"+strconv.Itoa(limit))
	var prods []Product
	if !r.cache.Get(ctx, key, &prods) {
		var err error
		prods, err = r.api.Products(ctx, ListQuery{Page: 1, Limit: limit, Sort: "createdAt", Order: "desc"})
		if err != nil || len(prods) == 0 {
			prods = r.static.All()
		} else {
			r.cache.Set(ctx, key, prods)
		}
	}
	SortNewest(prods)
	if limit > 0 && len(prods) > limit {
		prods = prods[:limit]
	}
	return prods
}

// Categories returns the category list, snapshot-first.
func (r *Resolver) Categories(ctx context.Context) []Category {
	key := snapshot.Key("categories", "all")
	var cached []Category
	if r.cache.Get(ctx, key, &cached) {
		return cached
	}
	cats, err := r.api.Categories(ctx)
	if err != nil {
		r.log.Debug("categories fetch failed", zap.Error(err))
		return nil
	}
	r.cache.Set(ctx, key, cats)
	return cats
}

// Category resolves a category route token against the category list.
func (r *Resolver) Category(ctx context.Context, token string) (Category, bool) {
	return MatchCategory(token, r.Categories(ctx))
}

// CategoryProducts returns a category's products, snapshot-first. The limit
// caps preview strips; zero means no cap.
func (r *Resolver) CategoryProducts(ctx context.Context, cat Category, limit int) []Product {
	key := snapshot.Key("category-products", strconv.FormatInt(cat.ID, 10))
	var prods []Product
	if !r.cache.Get(ctx, key, &prods) {
		var err error
		prods, err = r.api.ProductsByCategory(ctx, cat.ID, ListQuery{Sort: "createdAt", Order: "desc"})
		if err != nil {
			r.log.Debug("category products fetch failed", zap.Int64("category", cat.ID), zap.Error(err))
			prods = r.staticCategoryProducts(cat.ID)
		} else {
			r.cache.Set(ctx, key, prods)
		}
	}
	SortNewest(prods)
	if limit > 0 && len(prods) > limit {
		prods = prods[:limit]
	}
	return prods
}

func (r *Resolver) staticCategoryProducts(catID int64) []Product {
	all := r.static.All()
	out := make([]Product, 0, len(all))
	for _, p := range all {
		if p.CategoryID != nil && *p.CategoryID == catID {
			out = append(out, p)
		}
	}
	return out
}
