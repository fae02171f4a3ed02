package ui

import (
	"testing"

	"github.com/five82/welcome/internal/catalog"
)

func TestGetTheme_UnknownFallsBackToDracula(t *testing.T) {
	if got := GetTheme("nope").Name; got != "Dracula" {
		t.Fatalf("GetTheme(nope) = %q, want Dracula", got)
	}
	if got := GetTheme("Slate").Name; got != "Slate" {
		t.Fatalf("GetTheme(Slate) = %q", got)
	}
}

func TestNextTheme_Cycles(t *testing.T) {
	names := ThemeNames()
	for i, name := range names {
		want := names[(i+1)%len(names)]
		if got := NextTheme(name); got != want {
			t.Fatalf("NextTheme(%q) = %q, want %q", name, got, want)
		}
	}
	if got := NextTheme("unknown"); got != names[0] {
		t.Fatalf("NextTheme(unknown) = %q, want %q", got, names[0])
	}
}

func TestThemeNames_ReturnsCopy(t *testing.T) {
	names := ThemeNames()
	names[0] = "mutated"
	if ThemeNames()[0] == "mutated" {
		t.Fatalf("ThemeNames exposed internal slice")
	}
}

func TestTailwindColor_CoversCatalog(t *testing.T) {
	for _, key := range catalog.Known() {
		token := catalog.Resolve(key).Color
		if _, ok := TailwindColor(token); !ok {
			t.Errorf("no terminal color for %s (%s)", token, key)
		}
	}
	if _, ok := TailwindColor(catalog.NeutralColor); !ok {
		t.Errorf("no terminal color for the neutral accent")
	}
	if _, ok := TailwindColor("bg-unknown-100"); ok {
		t.Errorf("unknown token resolved")
	}
}

func TestCategoryColors_CoverCatalog(t *testing.T) {
	for _, name := range ThemeNames() {
		theme := GetTheme(name)
		for _, key := range catalog.Known() {
			cat := catalog.Resolve(key).Category
			if cat == "" {
				continue
			}
			if theme.CategoryColors[cat] == "" {
				t.Errorf("%s theme has no color for category %q", name, cat)
			}
		}
	}
}
