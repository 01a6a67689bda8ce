package i18n

import (
	"strings"
	"testing"
)

func TestTFallsBackToKey(t *testing.T) {
	got := T(English, "no.such.key")
	if got != "no.such.key" {
		t.Fatalf("expected key fallback, got %q", got)
	}
	got = T(Language("xx"), "app.name")
	if got != "app.name" {
		t.Fatalf("unknown language should fall back to key, got %q", got)
	}
}

func TestParse(t *testing.T) {
	if lang, ok := Parse("ml"); !ok || lang != Malayalam {
		t.Fatalf("parse ml: got %q ok=%v", lang, ok)
	}
	if lang, ok := Parse("english"); !ok || lang != English {
		t.Fatalf("parse english: got %q ok=%v", lang, ok)
	}
	if _, ok := Parse("fr"); ok {
		t.Fatalf("expected fr to be unsupported")
	}
}

func TestTablesCoverSameKeys(t *testing.T) {
	en := tables[English]
	ml := tables[Malayalam]
	for k := range en {
		if _, ok := ml[k]; !ok {
			t.Errorf("key %q missing from Malayalam table", k)
		}
	}
	for k := range ml {
		if _, ok := en[k]; !ok {
			t.Errorf("key %q missing from English table", k)
		}
	}
}

func TestGenericTemplateHasTwoPlaceholders(t *testing.T) {
	for _, lang := range Languages() {
		tpl := T(lang, "chat.reply.generic")
		if strings.Count(tpl, "%s") != 2 {
			t.Fatalf("%s generic template needs two placeholders: %q", lang, tpl)
		}
	}
}
