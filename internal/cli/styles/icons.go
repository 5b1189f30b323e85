package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconKeyboard = "\uf11c" // keyboard
	IconWindow   = "\uf2d0" // window
	IconApp      = "\uf108" // desktop
	IconCheck    = "\uf00c" // check
	IconX        = "\uf00d" // x
	IconWarning  = "\uf071" // warning
	IconInfo     = "\uf05a" // info
	IconConfig   = "\ue615" // config
	IconClock    = "\uf017" // clock
	IconArrow    = "\uf061" // arrow right
	IconCursor   = "\uf054" // chevron-right
)

const (
	cursorSelected = IconCursor + " "
	cursorEmpty    = "  "
)
