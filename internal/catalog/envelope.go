package catalog

import (
	"bytes"
	"encoding/json"
)

// ExtractList pulls the item array out of any envelope the API wraps list
// responses in. Checked in order: a bare array, response.products,
// response.data.products, response.data as an array, response.data.data.
// Anything else yields nil.
func ExtractList(raw json.RawMessage) []json.RawMessage {
	if list, ok := asArray(raw); ok {
		return list
	}
	obj := decodeObject(raw)
	if obj == nil {
		return nil
	}
	if list, ok := asArray(obj["products"]); ok {
		return list
	}
	data, hasData := obj["data"]
	if !hasData {
		return nil
	}
	if inner := decodeObject(data); inner != nil {
		if list, ok := asArray(inner["products"]); ok {
			return list
		}
		if list, ok := asArray(inner["data"]); ok {
			return list
		}
		return nil
	}
	if list, ok := asArray(data); ok {
		return list
	}
	return nil
}

// ExtractObject unwraps a single-entity response: response.data when it is an
// object, otherwise the response itself when it is an object.
func ExtractObject(raw json.RawMessage) json.RawMessage {
	obj := decodeObject(raw)
	if obj == nil {
		return nil
	}
	if data, ok := obj["data"]; ok {
		if decodeObject(data) != nil {
			return data
		}
	}
	return raw
}

// DecodeProducts extracts and decodes a product list from any envelope shape.
// Items that are not objects are dropped.
func DecodeProducts(raw json.RawMessage) []Product {
	items := ExtractList(raw)
	out := make([]Product, 0, len(items))
	for _, it := range items {
		if decodeObject(it) == nil {
			continue
		}
		var p Product
		if err := json.Unmarshal(it, &p); err == nil {
			out = append(out, p)
		}
	}
	return out
}

// DecodeCollections extracts and decodes a collection list.
func DecodeCollections(raw json.RawMessage) []Collection {
	items := ExtractList(raw)
	out := make([]Collection, 0, len(items))
	for _, it := range items {
		if decodeObject(it) == nil {
			continue
		}
		var c Collection
		if err := json.Unmarshal(it, &c); err == nil {
			out = append(out, c)
		}
	}
	return out
}

// DecodeCategories extracts and decodes a category list.
func DecodeCategories(raw json.RawMessage) []Category {
	items := ExtractList(raw)
	out := make([]Category, 0, len(items))
	for _, it := range items {
		if decodeObject(it) == nil {
			continue
		}
		var c Category
		if err := json.Unmarshal(it, &c); err == nil {
			out = append(out, c)
		}
	}
	return out
}

func asArray(raw json.RawMessage) ([]json.RawMessage, bool) {
	trimmed := bytes.TrimSpace(raw)
	if !bytes.HasPrefix(trimmed, []byte("[")) {
		return nil, false
	}
	var list []json.RawMessage
	if err := json.Unmarshal(trimmed, &list); err != nil {
		return nil, false
	}
	return list, true
}
