package editor

import (
	"errors"
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hexed/internal/buffer"
	"hexed/internal/config"
	"hexed/internal/hexarea"
	"hexed/internal/hexcodec"
	"hexed/internal/widget"
)

type View int

const (
	ViewMain View = iota
	ViewHelp
	ViewGoto
	ViewError
	ViewConfirmQuit
	ViewFileChangedPrompt
)

// The legend takes the first line and the status line the last.
const (
	legendLines = 1
	statusLines = 1
)

const invalidHexMessage = "Invalid hex characters present."

type Model struct {
	buf    *buffer.Buffer
	area   *hexarea.HexArea
	codec  *hexcodec.Cache
	view   View
	width  int
	height int
	config *config.Config
	styles *config.Styles
	keys   keyMap
	help   help.Model

	// areaSize is the hex area's size as of the last layout.
	areaSize widget.Size

	gotoInput textinput.Model

	// Decoded bytes waiting for the overwrite prompt.
	pending []byte

	errorMsg  string
	statusMsg string
}

func NewModel(filename string, cfg *config.Config) (*Model, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	buf, err := buffer.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filename, err)
	}

	gotoInput := textinput.New()
	gotoInput.Prompt = "> "
	gotoInput.Placeholder = "00000000"
	gotoInput.CharLimit = 8

	styles := config.NewStyles(&cfg.Theme)
	h := help.New()
	h.Styles.ShortKey = styles.HelpKey
	h.Styles.FullKey = styles.HelpKey
	h.Styles.FullDesc = styles.HelpDesc

	area := hexarea.New(buf.Data(),
		hexarea.WithPageRows(cfg.Editor.PageRows),
		hexarea.WithWheelRows(cfg.Editor.WheelRows),
	)

	m := &Model{
		buf:       buf,
		area:      area,
		codec:     hexcodec.NewCache(),
		view:      ViewMain,
		config:    cfg,
		styles:    styles,
		keys:      newKeyMap(),
		help:      h,
		gotoInput: gotoInput,
	}
	return m, nil
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	case tea.MouseMsg:
		cmd = m.handleMouse(msg)

	case hexarea.ChangedMsg:
		m.buf.MarkModified()

	default:
		if m.view == ViewGoto {
			m.gotoInput, cmd = m.gotoInput.Update(msg)
		}
	}

	m.layout()
	return m, cmd
}

func (m *Model) setView(v View) {
	m.view = v
	if v == ViewMain {
		m.area.Enable()
	} else {
		m.area.Disable()
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	// Clear status message on any key
	m.statusMsg = ""

	switch m.view {
	case ViewHelp:
		return m.handleHelpKey(msg)
	case ViewGoto:
		return m.handleGotoKey(msg)
	case ViewError:
		return m.handleErrorKey(msg)
	case ViewConfirmQuit:
		return m.handleConfirmQuitKey(msg)
	case ViewFileChangedPrompt:
		return m.handleFileChangedPromptKey(msg)
	default:
		return m.handleMainKey(msg)
	}
}

func (m *Model) handleMainKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.tryQuit()
	case key.Matches(msg, m.keys.Save):
		return m.trySave()
	case key.Matches(msg, m.keys.Help):
		m.setView(ViewHelp)
		return nil
	case key.Matches(msg, m.keys.Goto):
		m.gotoInput.Reset()
		m.setView(ViewGoto)
		return m.gotoInput.Focus()
	}

	var cmds []tea.Cmd
	for _, ev := range keyEvents(msg) {
		res := m.area.OnEvent(ev)
		if res.Cmd != nil {
			cmds = append(cmds, res.Cmd)
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.view != ViewMain {
		return nil
	}
	ev, ok := mouseEvent(msg, m.areaOffset())
	if !ok {
		return nil
	}
	return m.area.OnEvent(ev).Cmd
}

func (m *Model) handleHelpKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Cancel) {
		m.setView(ViewMain)
	}
	return nil
}

func (m *Model) handleGotoKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.gotoInput.Blur()
		m.setView(ViewMain)
		return nil
	case key.Matches(msg, m.keys.Confirm):
		m.gotoInput.Blur()
		m.setView(ViewMain)
		m.area.Goto(m.gotoInput.Value())
		return nil
	}

	var cmd tea.Cmd
	m.gotoInput, cmd = m.gotoInput.Update(msg)
	return cmd
}

func (m *Model) handleErrorKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Confirm) || key.Matches(msg, m.keys.Cancel) {
		m.errorMsg = ""
		m.setView(ViewMain)
	}
	return nil
}

func (m *Model) handleConfirmQuitKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Yes):
		return tea.Quit
	case key.Matches(msg, m.keys.No):
		m.setView(ViewMain)
	}
	return nil
}

func (m *Model) handleFileChangedPromptKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Yes):
		m.setView(ViewMain)
		m.save(m.pending)
		m.pending = nil
	case key.Matches(msg, m.keys.No):
		m.setView(ViewMain)
		m.pending = nil
	}
	return nil
}

func (m *Model) tryQuit() tea.Cmd {
	if m.buf.IsModified() {
		m.setView(ViewConfirmQuit)
		return nil
	}
	return tea.Quit
}

func (m *Model) trySave() tea.Cmd {
	data, err := hexcodec.Decode(m.area.Content(), m.codec)
	if err != nil {
		log.Printf("save: %v", err)
		if errors.Is(err, hexcodec.ErrInvalidToken) {
			m.showError(invalidHexMessage)
		} else {
			m.showError(err.Error())
		}
		return nil
	}

	// Check if file changed on disk
	changed, err := m.buf.HasChangedOnDisk()
	if err == nil && changed {
		m.pending = data
		m.setView(ViewFileChangedPrompt)
		return nil
	}

	m.save(data)
	return nil
}

func (m *Model) save(data []byte) {
	if err := m.buf.Save(data); err != nil {
		log.Printf("save: %v", err)
		m.showError(fmt.Sprintf("Error saving: %v", err))
		return
	}
	m.statusMsg = "File saved"
}

func (m *Model) showError(msg string) {
	m.errorMsg = msg
	m.setView(ViewError)
}

// layout sizes the hex area to the space left by the legend, the status line
// and any open dialog.
func (m *Model) layout() {
	m.areaSize = m.computeAreaSize()
	m.area.Layout(m.areaSize)
}

func (m *Model) areaOffset() widget.Point {
	return widget.Point{X: 0, Y: legendLines}
}

func (m *Model) computeAreaSize() widget.Size {
	h := m.height - legendLines - statusLines
	if d := m.renderDialog(); d != "" {
		h -= lipgloss.Height(d)
	}
	avail := widget.Size{W: max(m.width, 0), H: max(h, 0)}
	want := m.area.RequiredSize(avail)
	return widget.Size{W: avail.W, H: min(avail.H, want.H)}
}

// Modified reports whether the edited content differs from the file.
func (m *Model) Modified() bool {
	return m.buf.IsModified()
}

func (m *Model) CurrentView() View {
	return m.view
}

func (m *Model) Area() *hexarea.HexArea {
	return m.area
}
