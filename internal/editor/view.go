package editor

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"hexed/internal/canvas"
)

// Dialog text is wrapped to this width.
const dialogWidth = 48

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var b strings.Builder

	// Legend
	b.WriteString(m.renderLegend())
	b.WriteString("\n")

	if m.view == ViewHelp {
		b.WriteString(m.renderHelp())
		return b.String()
	}

	b.WriteString(m.renderArea())
	if d := m.renderDialog(); d != "" {
		b.WriteString("\n")
		b.WriteString(d)
	}
	b.WriteString("\n")
	b.WriteString(m.renderStatus())

	return b.String()
}

func (m *Model) legendBindings() []key.Binding {
	switch m.view {
	case ViewHelp:
		return []key.Binding{m.keys.Help, m.keys.Cancel}
	case ViewGoto:
		return []key.Binding{m.keys.Confirm, m.keys.Cancel}
	case ViewError:
		return []key.Binding{m.keys.Confirm}
	case ViewConfirmQuit, ViewFileChangedPrompt:
		return []key.Binding{m.keys.Yes, m.keys.No}
	default:
		return m.keys.ShortHelp()
	}
}

func (m *Model) renderLegend() string {
	legend := m.help.ShortHelpView(m.legendBindings())
	return m.styles.Legend.Width(m.width).MaxHeight(legendLines).Render(legend)
}

func (m *Model) renderArea() string {
	c := canvas.New(m.areaSize.W, m.areaSize.H, m.styles.Roles())
	c.SetFocused(m.view == ViewMain && m.area.TakeFocus())
	c.SetEnabled(m.view == ViewMain)
	m.area.Draw(c.Surface())
	return c.Render()
}

func (m *Model) renderStatus() string {
	var b strings.Builder

	b.WriteString(filepath.Base(m.buf.Filename()))
	if m.buf.IsModified() {
		b.WriteString(m.styles.Modified.Render(" *"))
	}
	b.WriteString(fmt.Sprintf("  %d bytes", m.buf.Size()))
	b.WriteString(fmt.Sprintf("  0x%08X", m.area.CursorAddress()))
	if v, ok := m.area.CursorByte(); ok {
		b.WriteString(fmt.Sprintf("  %02X %3d", v, v))
	}
	if m.statusMsg != "" {
		b.WriteString("  ")
		b.WriteString(m.statusMsg)
	}

	return lipgloss.NewStyle().Width(m.width).MaxWidth(m.width).Render(b.String())
}

func (m *Model) renderDialog() string {
	switch m.view {
	case ViewGoto:
		return m.renderBox("Enter a hexadecimal memory address:\n\n" + m.gotoInput.View())
	case ViewError:
		return m.renderBox(m.styles.Error.Render(wordwrap.String(m.errorMsg, dialogWidth)))
	case ViewConfirmQuit:
		return m.renderBox("Unsaved changes. Quit anyway? (Y/N)")
	case ViewFileChangedPrompt:
		return m.renderBox("File changed on disk. Overwrite? (Y/N)")
	}
	return ""
}

func (m *Model) renderBox(message string) string {
	box := m.styles.Border.
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2).
		Render(message)
	return box
}

func (m *Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(m.styles.HelpTitle.Render("HELP - hexed"))
	b.WriteString("\n\n")
	b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(m.styles.HelpDesc.Render("In insert mode 0-9 and a-f overwrite the digit under the cursor."))
	b.WriteString("\n")
	b.WriteString(m.styles.HelpDesc.Render(fmt.Sprintf("PgUp/PgDown move %d rows.", m.config.Editor.PageRows)))
	b.WriteString("\n\nPress ESC or F1 to close this help screen.\n")

	return b.String()
}
