package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"

	"hexed/internal/widget"
)

type Theme struct {
	ContentBackground      string `toml:"content_background"`
	ContentForeground      string `toml:"content_foreground"`
	InactiveForeground     string `toml:"inactive_foreground"`
	CursorBackground       string `toml:"cursor_background"`
	CursorInsertBackground string `toml:"cursor_insert_background"`
	GutterForeground       string `toml:"gutter_foreground"`
	StatusForeground       string `toml:"status_foreground"`
	ScrollbarForeground    string `toml:"scrollbar_foreground"`
	LegendBackground       string `toml:"legend_background"`
	BorderColor            string `toml:"border_color"`
	ErrorColor             string `toml:"error_color"`
}

type Editor struct {
	PageRows  int  `toml:"page_rows"`
	WheelRows int  `toml:"wheel_rows"`
	Mouse     bool `toml:"mouse"`
}

type Config struct {
	Theme  Theme  `toml:"theme"`
	Editor Editor `toml:"editor"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme: Theme{
			ContentBackground:      "#000000",
			ContentForeground:      "#FFFFFF",
			InactiveForeground:     "#666666",
			CursorBackground:       "#0000FF",
			CursorInsertBackground: "#FF0000",
			GutterForeground:       "#888888",
			StatusForeground:       "#FFFF00",
			ScrollbarForeground:    "#0000FF",
			LegendBackground:       "#0000FF",
			BorderColor:            "#0000FF",
			ErrorColor:             "#FF0000",
		},
		Editor: Editor{
			PageRows:  5,
			WheelRows: 5,
			Mouse:     true,
		},
	}
}

func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "hexed.toml"
	}
	return filepath.Join(home, ".config", "hexed", "hexed.toml")
}

// Load reads path over the defaults. An empty path means ConfigPath, and a
// missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = ConfigPath()
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return cfg, err
	}

	if cfg.Editor.PageRows <= 0 {
		cfg.Editor.PageRows = DefaultConfig().Editor.PageRows
	}
	if cfg.Editor.WheelRows <= 0 {
		cfg.Editor.WheelRows = DefaultConfig().Editor.WheelRows
	}
	return cfg, nil
}

func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}

type Styles struct {
	Content      lipgloss.Style
	Inactive     lipgloss.Style
	Cursor       lipgloss.Style
	CursorInsert lipgloss.Style
	Gutter       lipgloss.Style
	Status       lipgloss.Style
	Scrollbar    lipgloss.Style
	Thumb        lipgloss.Style
	Legend       lipgloss.Style
	Border       lipgloss.Style
	Error        lipgloss.Style
	Modified     lipgloss.Style
	HelpTitle    lipgloss.Style
	HelpKey      lipgloss.Style
	HelpDesc     lipgloss.Style
}

func NewStyles(theme *Theme) *Styles {
	bg := lipgloss.Color(theme.ContentBackground)
	return &Styles{
		Content: lipgloss.NewStyle().
			Background(bg).
			Foreground(lipgloss.Color(theme.ContentForeground)),
		Inactive: lipgloss.NewStyle().
			Background(bg).
			Foreground(lipgloss.Color(theme.InactiveForeground)),
		Cursor: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.CursorBackground)).
			Foreground(lipgloss.Color("#FFFFFF")),
		CursorInsert: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.CursorInsertBackground)).
			Foreground(lipgloss.Color("#FFFFFF")),
		Gutter: lipgloss.NewStyle().
			Background(bg).
			Foreground(lipgloss.Color(theme.GutterForeground)),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.StatusForeground)).
			Bold(true),
		Scrollbar: lipgloss.NewStyle().
			Background(bg).
			Foreground(lipgloss.Color(theme.ScrollbarForeground)),
		Thumb: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.ScrollbarForeground)).
			Foreground(lipgloss.Color(theme.ScrollbarForeground)),
		Legend: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.LegendBackground)).
			Foreground(lipgloss.Color("#FFFFFF")),
		Border: lipgloss.NewStyle().
			BorderForeground(lipgloss.Color(theme.BorderColor)),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.ErrorColor)).
			Bold(true),
		Modified: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.ErrorColor)),
		HelpTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.CursorInsertBackground)).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA")),
	}
}

// Roles maps the widget drawing roles onto the styles for canvas rendering.
func (s *Styles) Roles() map[widget.Role]lipgloss.Style {
	return map[widget.Role]lipgloss.Style{
		widget.RoleContent:      s.Content,
		widget.RoleInactive:     s.Inactive,
		widget.RoleGutter:       s.Gutter,
		widget.RoleCursor:       s.Cursor,
		widget.RoleCursorInsert: s.CursorInsert,
		widget.RoleStatus:       s.Status,
		widget.RoleScrollbar:    s.Scrollbar,
		widget.RoleThumb:        s.Thumb,
	}
}
