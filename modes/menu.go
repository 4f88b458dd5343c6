package modes

// ItemKind discriminates menu item variants
type ItemKind uint8

const (
	ItemButton ItemKind = iota
	ItemText
	ItemToggle
)

// MenuItem is one selectable row of a menu
// Text items own their edit buffer and cursor; both reset when the menu becomes active
type MenuItem struct {
	Kind    ItemKind
	Label   string
	OnClick func() // Button click, or toggle flip after Checked changes

	// Toggle
	Checked bool
	Slot    int // Inventory slot backing the toggle

	// Text input
	Text   []rune
	Cursor int
	Max    int
}

// Button creates a button item
func Button(label string, onClick func()) *MenuItem {
	return &MenuItem{Kind: ItemButton, Label: label, OnClick: onClick}
}

// TextInput creates a text field limited to max characters
func TextInput(label string, max int) *MenuItem {
	return &MenuItem{Kind: ItemText, Label: label, Max: max}
}

// Toggle creates a checkbox item
func Toggle(label string, checked bool, onClick func()) *MenuItem {
	return &MenuItem{Kind: ItemToggle, Label: label, Checked: checked, OnClick: onClick}
}

// Value returns the current text buffer
func (it *MenuItem) Value() string {
	return string(it.Text)
}

// MoveCursor shifts the edit cursor by d, clamped to the buffer
func (it *MenuItem) MoveCursor(d int) {
	it.Cursor = min(max(it.Cursor+d, 0), len(it.Text))
}

// Insert puts r at the cursor; ignored once the buffer is full
func (it *MenuItem) Insert(r rune) bool {
	if len(it.Text) >= it.Max {
		return false
	}
	it.Text = append(it.Text, 0)
	copy(it.Text[it.Cursor+1:], it.Text[it.Cursor:])
	it.Text[it.Cursor] = r
	it.Cursor++
	return true
}

// DeleteBack removes the character before the cursor
func (it *MenuItem) DeleteBack() bool {
	if it.Cursor == 0 {
		return false
	}
	it.Text = append(it.Text[:it.Cursor-1], it.Text[it.Cursor:]...)
	it.Cursor--
	return true
}

func (it *MenuItem) resetEdit() {
	it.Text = it.Text[:0]
	it.Cursor = 0
}

// Menu is a titled list of items with optional lifecycle hooks
type Menu struct {
	Title string
	Items []*MenuItem

	// OnSubmit runs when Enter is pressed on a text item
	OnSubmit func()
	// OnExit runs when Backspace finds no menu or view left to pop
	OnExit func()
	// OnOpen rebuilds dynamic items each time the menu becomes active
	OnOpen func()
	// OnClose runs when the menu leaves the menu stack
	OnClose func()
}

// Item returns the item at i, or nil
func (m *Menu) Item(i int) *MenuItem {
	if i < 0 || i >= len(m.Items) {
		return nil
	}
	return m.Items[i]
}

// TextItem returns the first text input, or nil
func (m *Menu) TextItem() *MenuItem {
	for _, it := range m.Items {
		if it.Kind == ItemText {
			return it
		}
	}
	return nil
}

// Remove drops it from the item list; reports whether it was present
func (m *Menu) Remove(it *MenuItem) bool {
	for i, cur := range m.Items {
		if cur == it {
			m.Items = append(m.Items[:i], m.Items[i+1:]...)
			return true
		}
	}
	return false
}

// activate clears transient edit state and rebuilds dynamic items
func (m *Menu) activate() {
	for _, it := range m.Items {
		if it.Kind == ItemText {
			it.resetEdit()
		}
	}
	if m.OnOpen != nil {
		m.OnOpen()
	}
}
