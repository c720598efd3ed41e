package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconCheck = "\uf00c" // check
	IconX     = "\uf00d" // x

	IconTrash    = "\uf1f8" // trash
	IconConfig   = "\ue615" // config
	IconDatabase = "\uf1c0" // database
	IconDesktop  = "\uf108" // desktop
	IconLogs     = "\uf0f6" // file-text

	// UI
	IconCursor = "\uf054" // chevron-right

	// Layouts
	IconPane = "\uf0db" // columns
	IconTree = "\uf1bb" // tree
)
