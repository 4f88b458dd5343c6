package constants

// Menu Titles
const (
	TitleMainMenu  = "MAIN MENU"
	TitleNewGame   = "NEW GAME"
	TitleSaveGame  = "SAVE GAME"
	TitleLoadGame  = "LOAD GAME"
	TitleInventory = "ITEMS"
	TitleDead      = "DEAD"
)

// Menu Labels
const (
	LabelBack       = "<< Back"
	LabelBackToMain = "<< Back to main menu"
	LabelNewGame    = "New Game"
	LabelSaveGame   = "Save Game"
	LabelLoadGame   = "Load Game"
	LabelQuitGame   = "Quit Game"
	LabelSeed       = "Enter seed: "
	LabelSaveName   = "Enter save filename: "
)

// Text Input Constants
const (
	// TextInputMax is the maximum length of menu text fields
	TextInputMax = 15
)

// Inventory Label Prefixes
const (
	PrefixEquipment  = "e "
	PrefixConsumable = "c "
)

// Status Bar Constants
const (
	// StatusBarHeight is the number of rows reserved above the game viewport
	StatusBarHeight = 1
)

// File Location Constants
const (
	// DefaultConfigPath is the configuration document read at startup
	DefaultConfigPath = "config/config.toml"

	// DefaultSavesDir is the directory holding save slots
	DefaultSavesDir = "saves"

	// SaveExtension is appended to user-entered save names
	SaveExtension = ".json"

	// DefaultLogPath is the log file; stdout belongs to the terminal screen
	DefaultLogPath = "vi-rogue.log"
)

// Status Messages
const (
	StatusNewGame     = "new game, seed %d"
	StatusSaved       = "saved %s"
	StatusSaveFailed  = "save failed: %v"
	StatusLoaded      = "loaded %s"
	StatusLoadFailed  = "load failed: %v"
	StatusNoSaveName  = "enter a save name"
	StatusListFailed  = "cannot list saves: %v"
	StatusPlayerDied  = "you died"
	StatusItemBlocked = "already wearing an item of that kind"
)
