package widget

// Role names what a run of cells shows; the surface maps it to a style.
type Role int

const (
	RoleNone Role = iota
	RoleContent
	RoleInactive
	RoleGutter
	RoleCursor
	RoleCursorInsert
	RoleStatus
	RoleScrollbar
	RoleThumb
)

// Surface is a rectangular drawing area. Coordinates are relative to its
// top-left corner and anything outside its size is dropped.
type Surface interface {
	Size() Size
	Focused() bool
	Enabled() bool
	Print(x, y int, text string)
	PrintHLine(x, y, n int, glyph string)
	WithRole(role Role, draw func(Surface))
	Sub(x, y, w, h int) Surface
}
