// Package catalog models the storefront's read-only view of the remote
// catalog API: products, collections, and categories. The upstream API is not
// contractually stable, so every decoder here is tolerant: unknown shapes
// degrade to zero values rather than errors.
package catalog

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"rawnaq.store/web/internal/i18n"
)

// Product is a catalog item as rendered on product cards and grids.
type Product struct {
	ID             int64
	Name           i18n.Text
	Description    i18n.Text
	Price          float64
	OriginalPrice  float64
	IsAvailable    bool
	CategoryID     *int64
	SubcategoryID  *int64
	MainImage      string
	DetailedImages []string
	CreatedAt      time.Time

	// attrs keeps the raw decoded fields so automated-collection conditions
	// can reference attributes the struct does not model.
	attrs map[string]json.RawMessage
}

// Condition is one rule of an automated collection: equality against a
// product attribute, or membership when the attribute holds a list.
type Condition struct {
	Field string
	Value string
}

// Collection groups products either by an explicit member list (manual) or by
// filter conditions (automated).
type Collection struct {
	ID          string // Mongo-style _id
	LegacyID    int64  // numeric id, 0 when absent
	LegacyIDRaw string // literal form of id for string matching
	Name        i18n.Text
	Description i18n.Text
	Image       string
	Type        string // "manual" or "automated"
	ProductIDs  []int64
	Conditions  []Condition
}

// Category is a catalog category; a non-nil ParentID marks a subcategory.
type Category struct {
	ID          int64
	Name        i18n.Text
	Description i18n.Text
	Image       string
	ParentID    *int64
}

// Valid reports whether the collection carries enough identity to render:
// any id or any localized name variant.
func (c Collection) Valid() bool {
	return c.ID != "" || c.LegacyIDRaw != "" || !c.Name.IsZero()
}

// RouteID returns the identifier to use for follow-up product fetches.
func (c Collection) RouteID() string {
	if c.ID != "" {
		return c.ID
	}
	return c.LegacyIDRaw
}

// UnmarshalJSON decodes a product from any of the upstream payload shapes.
// It never fails on missing or mistyped fields.
func (p *Product) UnmarshalJSON(data []byte) error {
	obj := decodeObject(data)
	if obj == nil {
		*p = Product{}
		return nil
	}
	p.attrs = obj
	p.ID = decodeInt(obj["id"])
	p.Name = i18n.DecodeText(obj, "name")
	p.Description = i18n.DecodeText(obj, "description")
	p.Price = decodeFloat(obj["price"])
	p.OriginalPrice = decodeFloat(obj["originalPrice"])
	p.IsAvailable = decodeBool(obj["isAvailable"], true)
	p.CategoryID = decodeIntPtr(obj["categoryId"])
	p.SubcategoryID = decodeIntPtr(obj["subcategoryId"])
	p.MainImage = decodeStr(obj["mainImage"])
	if p.MainImage == "" {
		if imgs := decodeStrList(obj["images"]); len(imgs) > 0 {
			p.MainImage = imgs[0]
		}
	}
	p.DetailedImages = decodeStrList(obj["detailedImages"])
	p.CreatedAt = decodeTime(obj["createdAt"])
	return nil
}

// MarshalJSON emits the canonical shape used for cache snapshots. Decoding
// the output yields a resolution-equivalent product.
func (p Product) MarshalJSON() ([]byte, error) {
	obj := map[string]any{
		"id":          p.ID,
		"price":       p.Price,
		"isAvailable": p.IsAvailable,
	}
	encodeText(obj, "name", p.Name)
	encodeText(obj, "description", p.Description)
	if p.OriginalPrice != 0 {
		obj["originalPrice"] = p.OriginalPrice
	}
	if p.CategoryID != nil {
		obj["categoryId"] = *p.CategoryID
	}
	if p.SubcategoryID != nil {
		obj["subcategoryId"] = *p.SubcategoryID
	}
	if p.MainImage != "" {
		obj["mainImage"] = p.MainImage
	}
	if len(p.DetailedImages) > 0 {
		obj["detailedImages"] = p.DetailedImages
	}
	if !p.CreatedAt.IsZero() {
		obj["createdAt"] = p.CreatedAt.Format(time.RFC3339)
	}
	return json.Marshal(obj)
}

// Attr returns the string form of a raw product attribute, for condition
// matching against fields the struct does not model.
func (p Product) Attr(field string) (json.RawMessage, bool) {
	raw, ok := p.attrs[field]
	return raw, ok
}

// Matches reports whether the product satisfies every condition.
func (p Product) Matches(conds []Condition) bool {
	for _, cond := range conds {
		if !p.matches(cond) {
			return false
		}
	}
	return true
}

func (p Product) matches(cond Condition) bool {
	if cond.Field == "" {
		return true
	}
	raw, ok := p.attrs[cond.Field]
	if !ok {
		return false
	}
	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, "[") {
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err == nil {
			for _, it := range items {
				if scalarString(it) == cond.Value {
					return true
				}
			}
			return false
		}
	}
	return strings.EqualFold(scalarString(raw), cond.Value)
}

func (c *Collection) UnmarshalJSON(data []byte) error {
	obj := decodeObject(data)
	if obj == nil {
		*c = Collection{}
		return nil
	}
	c.ID = decodeStr(obj["_id"])
	if c.ID == "" {
		// some endpoints emit numeric _id values
		if n := decodeInt(obj["_id"]); n != 0 {
			c.ID = strconv.FormatInt(n, 10)
		}
	}
	c.LegacyIDRaw = scalarString(obj["id"])
	c.LegacyID = decodeInt(obj["id"])
	c.Name = i18n.DecodeText(obj, "name")
	c.Description = i18n.DecodeText(obj, "description")
	c.Image = decodeStr(obj["image"])
	c.Type = strings.ToLower(decodeStr(obj["type"]))
	c.ProductIDs = decodeIntList(obj["products"])
	c.Conditions = decodeConditions(obj["conditions"])
	return nil
}

func (c Collection) MarshalJSON() ([]byte, error) {
	obj := map[string]any{}
	if c.ID != "" {
		obj["_id"] = c.ID
	}
	if c.LegacyIDRaw != "" {
		if c.LegacyID != 0 {
			obj["id"] = c.LegacyID
		} else {
			obj["id"] = c.LegacyIDRaw
		}
	}
	encodeText(obj, "name", c.Name)
	encodeText(obj, "description", c.Description)
	if c.Image != "" {
		obj["image"] = c.Image
	}
	if c.Type != "" {
		obj["type"] = c.Type
	}
	if len(c.ProductIDs) > 0 {
		obj["products"] = c.ProductIDs
	}
	if len(c.Conditions) > 0 {
		conds := make([]map[string]string, 0, len(c.Conditions))
		for _, cond := range c.Conditions {
			conds = append(conds, map[string]string{"field": cond.Field, "value": cond.Value})
		}
		obj["conditions"] = conds
	}
	return json.Marshal(obj)
}

func (c *Category) UnmarshalJSON(data []byte) error {
	obj := decodeObject(data)
	if obj == nil {
		*c = Category{}
		return nil
	}
	c.ID = decodeInt(obj["id"])
	c.Name = i18n.DecodeText(obj, "name")
	c.Description = i18n.DecodeText(obj, "description")
	c.Image = decodeStr(obj["image"])
	c.ParentID = decodeIntPtr(obj["parentId"])
	return nil
}

func (c Category) MarshalJSON() ([]byte, error) {
	obj := map[string]any{"id": c.ID}
	encodeText(obj, "name", c.Name)
	encodeText(obj, "description", c.Description)
	if c.Image != "" {
		obj["image"] = c.Image
	}
	if c.ParentID != nil {
		obj["parentId"] = *c.ParentID
	}
	return json.Marshal(obj)
}

func decodeConditions(raw json.RawMessage) []Condition {
	var items []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	out := make([]Condition, 0, len(items))
	for _, it := range items {
		field := decodeStr(it["field"])
		if field == "" {
			field = decodeStr(it["key"])
		}
		out = append(out, Condition{Field: field, Value: scalarString(it["value"])})
	}
	return out
}

func encodeText(obj map[string]any, field string, t i18n.Text) {
	if t.AR != "" {
		obj[field+"_ar"] = t.AR
	}
	if t.EN != "" {
		obj[field+"_en"] = t.EN
	}
	switch {
	case t.Base != "":
		obj[field] = t.Base
	case t.BaseAR != "" || t.BaseEN != "":
		nested := map[string]string{}
		if t.BaseAR != "" {
			nested["ar"] = t.BaseAR
		}
		if t.BaseEN != "" {
			nested["en"] = t.BaseEN
		}
		obj[field] = nested
	}
}

func decodeObject(data []byte) map[string]json.RawMessage {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil
	}
	return obj
}

func decodeStr(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func decodeStrList(raw json.RawMessage) []string {
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil
	}
	return list
}

func decodeInt(raw json.RawMessage) int64 {
	var n int64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return int64(f)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
			return v
		}
	}
	return 0
}

func decodeIntPtr(raw json.RawMessage) *int64 {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil
	}
	n := decodeInt(raw)
	if n == 0 && trimmed != "0" && trimmed != `"0"` {
		return nil
	}
	return &n
}

func decodeIntList(raw json.RawMessage) []int64 {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	out := make([]int64, 0, len(items))
	for _, it := range items {
		out = append(out, decodeInt(it))
	}
	return out
}

func decodeFloat(raw json.RawMessage) float64 {
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return v
		}
	}
	return 0
}

func decodeBool(raw json.RawMessage, def bool) bool {
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return def
	}
	return b
}

func decodeTime(raw json.RawMessage) time.Time {
	s := decodeStr(raw)
	if s == "" {
		return time.Time{}
	}
	layouts := []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// scalarString renders a raw JSON scalar the way the matcher compares it:
// strings unquoted, numbers and booleans literally, everything else empty.
func scalarString(raw json.RawMessage) string {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return ""
	}
	if strings.HasPrefix(trimmed, `"`) {
		return decodeStr(raw)
	}
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return ""
	}
	return trimmed
}
