package i18n

import (
	"encoding/json"
	"strings"
)

// Other returns the counterpart language of the ar/en pair.
func Other(lang string) string {
	if lang == "ar" {
		return "en"
	}
	return "ar"
}

// Text carries every variant the catalog API may use for one localized field:
// flat suffixed strings (name_ar/name_en), a bare string, or a nested
// {ar,en} object. Upstream payloads mix all of these per entity.
type Text struct {
	AR   string // field_ar
	EN   string // field_en
	Base string // bare string value of field

	// nested object form of field
	BaseAR string
	BaseEN string
}

// Resolve picks the best display string for lang. Priority: the lang-suffixed
// variant, the other-language suffixed variant, the bare string, then the
// nested object in the same language order. Empty string when nothing is set.
func (t Text) Resolve(lang string) string {
	if lang != "en" {
		lang = "ar"
	}
	candidates := []string{
		t.variant(lang),
		t.variant(Other(lang)),
		t.Base,
		t.nested(lang),
		t.nested(Other(lang)),
	}
	for _, c := range candidates {
		if s := strings.TrimSpace(c); s != "" {
			return s
		}
	}
	return ""
}

// IsZero reports whether no variant is populated.
func (t Text) IsZero() bool {
	return t.Resolve("ar") == ""
}

func (t Text) variant(lang string) string {
	if lang == "en" {
		return t.EN
	}
	return t.AR
}

func (t Text) nested(lang string) string {
	if lang == "en" {
		return t.BaseEN
	}
	return t.BaseAR
}

// DecodeText assembles a Text from a decoded JSON object and a field base
// name, accepting every shape the API emits. Malformed values degrade to the
// zero Text; this never fails.
func DecodeText(obj map[string]json.RawMessage, field string) Text {
	var t Text
	if obj == nil {
		return t
	}
	t.AR = decodeString(obj[field+"_ar"])
	t.EN = decodeString(obj[field+"_en"])
	if raw, ok := obj[field]; ok {
		if s := decodeString(raw); s != "" {
			t.Base = s
		} else {
			var nested map[string]string
			if err := json.Unmarshal(raw, &nested); err == nil {
				t.BaseAR = nested["ar"]
				t.BaseEN = nested["en"]
			}
		}
	}
	return t
}

func decodeString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}
