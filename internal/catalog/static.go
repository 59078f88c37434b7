package catalog

import (
	"encoding/json"
	"os"
	"sync"

	"go.uber.org/zap"
)

// StaticSet is the bundled product set served when every remote source of a
// collection's products has failed. It ships with the binary, so grid pages
// always have something to show.
type StaticSet struct {
	mu       sync.RWMutex
	products []Product
}

// LoadStaticSet reads the bundled product file. A missing or malformed file
// yields an empty set; the storefront must still start.
func LoadStaticSet(path string, log *zap.Logger) *StaticSet {
	s := &StaticSet{}
	if path == "" {
		return s
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn("static product set unavailable", zap.String("path", path), zap.Error(err))
		return s
	}
	products := DecodeProducts(data)
	if len(products) == 0 {
		// the file may also be a bare array without an envelope
		var list []Product
		if err := json.Unmarshal(data, &list); err == nil {
			products = list
		}
	}
	s.products = products
	log.Info("static product set loaded", zap.String("path", path), zap.Int("products", len(products)))
	return s
}

// All returns a copy of the full set.
func (s *StaticSet) All() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// FilterFor narrows the set to a collection's membership. Manual collections
// keep listed ids in set order; automated collections keep products matching
// every condition. A nil or untyped collection returns the full set.
func (s *StaticSet) FilterFor(col *Collection) []Product {
	all := s.All()
	if col == nil {
		return all
	}
	switch col.Type {
	case "manual":
		if len(col.ProductIDs) == 0 {
			return nil
		}
		members := make(map[int64]bool, len(col.ProductIDs))
		for _, id := range col.ProductIDs {
			members[id] = true
		}
		out := make([]Product, 0, len(col.ProductIDs))
		for _, p := range all {
			if members[p.ID] {
				out = append(out, p)
			}
		}
		return out
	case "automated":
		out := make([]Product, 0, len(all))
		for _, p := range all {
			if p.Matches(col.Conditions) {
				out = append(out, p)
			}
		}
		return out
	default:
		return all
	}
}
