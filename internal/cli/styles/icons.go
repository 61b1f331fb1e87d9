package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "" // tag
	IconGitBranch = "" // git branch
	IconCalendar  = "" // calendar
	IconGo        = "" // go gopher
	IconGithub    = "" // github
	IconWrench    = "" // wrench
	IconConfig    = "" // config
	IconCheck     = ""
	IconX         = ""
	IconKeyboard  = ""
	IconMouse     = ""
	IconWindow    = ""
)
