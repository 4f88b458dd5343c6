package engine

// ItemConsumed marks an inventory slot as logically deleted
// Slot indices stay valid until the inventory is committed
const ItemConsumed = -1

// Item is a lightweight reference into the ItemDef catalog
type Item struct {
	Idx      int
	Equipped bool
}

// Consumed reports whether the slot was logically deleted
func (i Item) Consumed() bool {
	return i.Idx == ItemConsumed
}

// ItemDef is an immutable catalog record
type ItemDef struct {
	Glyph      rune
	Name       string
	Consumable bool
	Damage     int
	Armor      int
	HP         int
}

// SharesKind reports whether two definitions modify an overlapping stat
// Kind is inferred from which of damage/hp/armor is non-zero
func (d ItemDef) SharesKind(o ItemDef) bool {
	return (d.Damage != 0 && o.Damage != 0) ||
		(d.HP != 0 && o.HP != 0) ||
		(d.Armor != 0 && o.Armor != 0)
}

// Catalog is the global, immutable list of item definitions
// Indices are stable for the process lifetime
type Catalog struct {
	defs []ItemDef
}

// NewCatalog copies defs into a new immutable catalog
func NewCatalog(defs []ItemDef) *Catalog {
	c := &Catalog{defs: make([]ItemDef, len(defs))}
	copy(c.defs, defs)
	return c
}

// Len returns the number of definitions
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.defs)
}

// Valid reports whether idx addresses a definition
func (c *Catalog) Valid(idx int) bool {
	return idx >= 0 && idx < c.Len()
}

// Def returns the definition at idx; zero ItemDef when out of range
func (c *Catalog) Def(idx int) ItemDef {
	if !c.Valid(idx) {
		return ItemDef{}
	}
	return c.defs[idx]
}
