package styles

// Nerd Font icons.
const (
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconHeart     = "\uf004" // heart
	IconGo        = "\ue627" // go gopher

	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info

	IconConfig   = "\ue615" // config
	IconDatabase = "\uf1c0" // database
	IconTrash    = "\uf1f8" // trash
	IconClock    = "\uf017" // clock

	IconLock   = "\uf023" // lock
	IconUnlock = "\uf09c" // unlock
	IconBolt   = "\uf0e7" // bolt
)
