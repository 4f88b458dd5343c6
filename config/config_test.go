package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/vi-rogue/engine"
)

func TestParseFull(t *testing.T) {
	cfg, err := Parse(`
[tiles]
friendly = "&"
water = "="
elevation = ["a", "b", "c", "d"]

[[items]]
glyph = "/"
name = "Sword"
damage = 3

[[items]]
name = "Potion"
consumable = true
hp = 10
`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if got := cfg.Palette.TileGlyph(engine.TileFriendly); got != '&' {
		t.Errorf("Expected friendly glyph '&', got %q", got)
	}
	if got := cfg.Palette.TileGlyph(engine.TileEnemy); got != 'E' {
		t.Errorf("Expected default enemy glyph 'E', got %q", got)
	}
	if cfg.Palette.Elevation != [ElevationBuckets]rune{'a', 'b', 'c', 'd'} {
		t.Errorf("Unexpected elevation palette %q", cfg.Palette.Elevation)
	}

	if len(cfg.Items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(cfg.Items))
	}
	if cfg.Items[0] != (engine.ItemDef{Glyph: '/', Name: "Sword", Damage: 3}) {
		t.Errorf("Unexpected item 0: %+v", cfg.Items[0])
	}
	// Absent fields default to empty
	if cfg.Items[1].Glyph != ' ' || cfg.Items[1].Armor != 0 || !cfg.Items[1].Consumable {
		t.Errorf("Unexpected item 1: %+v", cfg.Items[1])
	}

	if cfg.Catalog().Len() != 2 {
		t.Errorf("Expected catalog of 2, got %d", cfg.Catalog().Len())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"unknown tile", "[tiles]\nlava = \"L\"\n", "unknown tile type"},
		{"short elevation", "[tiles]\nelevation = [\".\"]\n", "expected 4 glyphs"},
		{"wide glyph", "[tiles]\ntree = \"TT\"\n", "single character"},
		{"non-string tile", "[tiles]\ntree = 3\n", "expected string"},
		{"bad item glyph", "[[items]]\nglyph = \"ab\"\n", "items[0]"},
		{"malformed", "[tiles\n", "config parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.doc)
			if err == nil {
				t.Fatal("Expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[[items]]\nname = \"Club\"\ndamage = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cfg.Items) != 1 || cfg.Items[0].Name != "Club" {
		t.Errorf("Unexpected items %+v", cfg.Items)
	}
	if cfg.Palette != DefaultPalette() {
		t.Error("Expected default palette when [tiles] is absent")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLoadEmptyPathDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cfg.Items) == 0 {
		t.Error("Expected built-in items")
	}
}

func TestShippedConfigLoads(t *testing.T) {
	cfg, err := Load("config.toml")
	if err != nil {
		t.Fatalf("Shipped config invalid: %v", err)
	}
	if len(cfg.Items) != len(Default().Items) {
		t.Errorf("Expected %d shipped items, got %d", len(Default().Items), len(cfg.Items))
	}
}

func TestElevationGlyph(t *testing.T) {
	p := DefaultPalette()
	tests := []struct {
		elev int
		want rune
	}{
		{-2, '~'},
		{-1, '.'},
		{0, ','},
		{1, '"'},
		{2, '^'},
	}
	for _, tt := range tests {
		if got := p.ElevationGlyph(tt.elev); got != tt.want {
			t.Errorf("ElevationGlyph(%d): expected %q, got %q", tt.elev, tt.want, got)
		}
	}
}
