package i18n

import "testing"

func loadBundle(t *testing.T) *Bundle {
	t.Helper()
	b, err := Load("../../locales", "ar")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return b
}

func TestResolveHonorsQValues(t *testing.T) {
	b := loadBundle(t)
	if got := b.Resolve("ar;q=0.8, en;q=0.9"); got != "en" {
		t.Fatalf("expected en, got %s", got)
	}
}

func TestResolveSubtagsAndRejections(t *testing.T) {
	b := loadBundle(t)
	if got := b.Resolve("en-GB, ar;q=0.5"); got != "en" {
		t.Fatalf("region subtag should match base language, got %s", got)
	}
	if got := b.Resolve("en;q=0, ar;q=0.5"); got != "ar" {
		t.Fatalf("q=0 marks a language unacceptable, got %s", got)
	}
	if got := b.Resolve("fr, de;q=0.9"); got != "ar" {
		t.Fatalf("no match should yield the fallback, got %s", got)
	}
	if got := b.Resolve(""); got != "ar" {
		t.Fatalf("empty header should yield the fallback, got %s", got)
	}
}

func TestTFallsBackAcrossThePair(t *testing.T) {
	b := loadBundle(t)
	if got := b.T("en", "nav.home"); got == "nav.home" {
		t.Fatalf("expected translation for nav.home, got raw key")
	}
	if got := b.T("fr", "nav.home"); got == "nav.home" {
		t.Fatalf("expected arabic translation for unknown locale, got raw key")
	}
	if got := b.T("ar", "no.such.key"); got != "no.such.key" {
		t.Fatalf("missing key should come back verbatim, got %s", got)
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("EN"); got != English {
		t.Fatalf("expected en, got %s", got)
	}
	for _, tag := range []string{"", "ar", "fr", "ja"} {
		if got := Normalize(tag); got != Arabic {
			t.Fatalf("Normalize(%q) = %s, expected ar", tag, got)
		}
	}
}
