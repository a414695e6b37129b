package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Application identity
const (
	AppID   = "com.ytget.library-catalog"
	AppName = "Library Catalog"
)

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconBook     = "📚"
)

// Layout sizing
const (
	WindowWidth  float32 = 520
	WindowHeight float32 = 420

	SettingsDialogWidth  float32 = 360
	SettingsDialogHeight float32 = 220
)

// Action is an operation offered by the form's action selector
type Action string

const (
	ActionList     Action = "List"
	ActionAdd      Action = "Add"
	ActionSearch   Action = "Search"
	ActionCheckout Action = "Checkout"
	ActionReturn   Action = "Return"
)

// Actions lists selector entries in display order
var Actions = []Action{ActionList, ActionAdd, ActionSearch, ActionCheckout, ActionReturn}
