package config

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-rogue/engine"
	"github.com/lixenwraith/vi-rogue/logger"
)

// Config is the startup configuration: display palette and item catalog
type Config struct {
	Palette Palette
	Items   []engine.ItemDef
}

// Catalog builds the immutable item catalog from the loaded definitions
func (c *Config) Catalog() *engine.Catalog {
	return engine.NewCatalog(c.Items)
}

// itemRecord is one [[items]] entry; absent fields default to zero values
type itemRecord struct {
	Glyph      string `toml:"glyph"`
	Name       string `toml:"name"`
	Consumable bool   `toml:"consumable"`
	Damage     int    `toml:"damage"`
	Armor      int    `toml:"armor"`
	HP         int    `toml:"hp"`
}

type document struct {
	Tiles map[string]any `toml:"tiles"`
	Items []itemRecord   `toml:"items"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Palette: DefaultPalette(),
		Items: []engine.ItemDef{
			{Glyph: '/', Name: "Iron Sword", Damage: 4},
			{Glyph: 'P', Name: "War Axe", Damage: 7},
			{Glyph: ']', Name: "Wooden Shield", Armor: 5},
			{Glyph: '[', Name: "Chain Mail", Armor: 10},
			{Glyph: 'o', Name: "Ring of Vigor", HP: 15},
			{Glyph: '!', Name: "Healing Potion", Consumable: true, HP: 25},
			{Glyph: '%', Name: "Bread", Consumable: true, HP: 8},
		},
	}
}

// Load reads a TOML configuration file
// An empty path yields the built-in defaults
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	var doc document
	md, err := toml.DecodeFile(path, &doc)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	cfg, err := build(doc)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	warnUndecoded(md)
	return cfg, nil
}

// Parse decodes configuration from TOML text
func Parse(data string) (*Config, error) {
	var doc document
	md, err := toml.Decode(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("config parse: %w", err)
	}
	cfg, err := build(doc)
	if err != nil {
		return nil, err
	}
	warnUndecoded(md)
	return cfg, nil
}

func build(doc document) (*Config, error) {
	cfg := &Config{Palette: DefaultPalette()}

	if err := applyTiles(&cfg.Palette, doc.Tiles); err != nil {
		return nil, err
	}

	// Without an [[items]] list the built-in catalog is used
	if doc.Items == nil {
		cfg.Items = Default().Items
		return cfg, nil
	}

	cfg.Items = make([]engine.ItemDef, 0, len(doc.Items))
	for i, rec := range doc.Items {
		glyph, err := parseGlyph(rec.Glyph)
		if err != nil {
			return nil, fmt.Errorf("items[%d] glyph: %w", i, err)
		}
		cfg.Items = append(cfg.Items, engine.ItemDef{
			Glyph:      glyph,
			Name:       rec.Name,
			Consumable: rec.Consumable,
			Damage:     rec.Damage,
			Armor:      rec.Armor,
			HP:         rec.HP,
		})
	}
	return cfg, nil
}

// applyTiles overlays the [tiles] section onto p
// Keys are tile type names plus "elevation", an array of ElevationBuckets glyphs
func applyTiles(p *Palette, section map[string]any) error {
	// Sorted for stable error reporting
	keys := make([]string, 0, len(section))
	for k := range section {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		val := section[key]
		if key == "elevation" {
			arr, ok := val.([]any)
			if !ok {
				return fmt.Errorf("section [tiles]: elevation: expected array, got %T", val)
			}
			if len(arr) != ElevationBuckets {
				return fmt.Errorf("section [tiles]: elevation: expected %d glyphs, got %d", ElevationBuckets, len(arr))
			}
			for i, v := range arr {
				s, ok := v.(string)
				if !ok {
					return fmt.Errorf("section [tiles]: elevation[%d]: expected string, got %T", i, v)
				}
				g, err := parseGlyph(s)
				if err != nil {
					return fmt.Errorf("section [tiles]: elevation[%d]: %w", i, err)
				}
				p.Elevation[i] = g
			}
			continue
		}

		typ, err := engine.ParseTileType(strings.ToLower(key))
		if err != nil {
			return fmt.Errorf("section [tiles]: %w", err)
		}
		s, ok := val.(string)
		if !ok {
			return fmt.Errorf("section [tiles]: %s: expected string, got %T", key, val)
		}
		g, err := parseGlyph(s)
		if err != nil {
			return fmt.Errorf("section [tiles]: %s: %w", key, err)
		}
		p.Tiles[typ] = g
	}
	return nil
}

// parseGlyph accepts a single-rune string; empty means blank
func parseGlyph(s string) (rune, error) {
	switch utf8.RuneCountInString(s) {
	case 0:
		return ' ', nil
	case 1:
		r, _ := utf8.DecodeRuneInString(s)
		return r, nil
	}
	return 0, fmt.Errorf("glyph %q must be a single character", s)
}

func warnUndecoded(md toml.MetaData) {
	for _, key := range md.Undecoded() {
		logger.Log.WithField("key", key.String()).Warn("unknown config key ignored")
	}
}
