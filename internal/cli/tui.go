package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/cardframe/pkg/template"
)

// previewCanvasWidth is the character width of the preview canvas. The
// height follows from the container's aspect ratio, halved because
// terminal cells are roughly twice as tall as they are wide.
const previewCanvasWidth = 64

var (
	previewBorderStyle   = lipgloss.NewStyle().Foreground(colorDim)
	previewBoxStyle      = lipgloss.NewStyle().Foreground(colorGray)
	previewSelectedStyle = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
)

// PreviewModel is the bubbletea model for the interactive layout preview.
// It draws the resolved layout as scaled boxes and lets the user cycle
// through components to inspect their rectangles.
type PreviewModel struct {
	Template template.Template
	Result   template.Result
	Cursor   int
}

// NewPreviewModel creates a preview model over a resolved layout.
func NewPreviewModel(tmpl template.Template, res template.Result) PreviewModel {
	return PreviewModel{Template: tmpl, Result: res}
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "l", "tab", "down", "j":
			if len(m.Result.Components) > 0 {
				m.Cursor = (m.Cursor + 1) % len(m.Result.Components)
			}
		case "left", "h", "up", "k":
			if len(m.Result.Components) > 0 {
				m.Cursor = (m.Cursor + len(m.Result.Components) - 1) % len(m.Result.Components)
			}
		}
	}
	return m, nil
}

func (m PreviewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Layout Preview"))
	if m.Template.Name != "" {
		b.WriteString(StyleDim.Render("  " + m.Template.Name))
	}
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←/→ cycle components  q quit"))
	b.WriteString("\n\n")

	b.WriteString(m.renderCanvas())
	b.WriteString("\n")

	if len(m.Result.Components) > 0 {
		p := m.Result.Components[m.Cursor]
		b.WriteString(previewSelectedStyle.Render(fmt.Sprintf("  #%d", p.ID)))
		b.WriteString(StyleDim.Render(fmt.Sprintf("  x=%d y=%d w=%d h=%d", p.X, p.Y, p.Width, p.Height)))
		b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Result.Components))))
		b.WriteString("\n")
	}

	return b.String()
}

// renderCanvas rasterizes the layout into a character grid. Later
// components overwrite earlier ones, matching paint order.
func (m PreviewModel) renderCanvas() string {
	cw, ch := m.Result.Container.Width, m.Result.Container.Height
	if cw <= 0 || ch <= 0 {
		return ""
	}

	gridW := previewCanvasWidth
	gridH := gridW * ch / cw / 2
	if gridH < 4 {
		gridH = 4
	}

	// cell values: 0 empty, otherwise index+1 into Result.Components
	cells := make([][]int, gridH)
	for y := range cells {
		cells[y] = make([]int, gridW)
	}

	for i, p := range m.Result.Components {
		x0 := clamp(p.X*gridW/cw, 0, gridW-1)
		y0 := clamp(p.Y*gridH/ch, 0, gridH-1)
		x1 := clamp((p.X+p.Width)*gridW/cw, x0+1, gridW)
		y1 := clamp((p.Y+p.Height)*gridH/ch, y0+1, gridH)
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				cells[y][x] = i + 1
			}
		}
	}

	var b strings.Builder
	b.WriteString(previewBorderStyle.Render("  ┌" + strings.Repeat("─", gridW) + "┐"))
	b.WriteString("\n")
	for y := 0; y < gridH; y++ {
		b.WriteString(previewBorderStyle.Render("  │"))
		for x := 0; x < gridW; x++ {
			idx := cells[y][x]
			if idx == 0 {
				b.WriteString(" ")
				continue
			}
			ch := fmt.Sprintf("%d", m.Result.Components[idx-1].ID%10)
			if idx-1 == m.Cursor {
				b.WriteString(previewSelectedStyle.Render(ch))
			} else {
				b.WriteString(previewBoxStyle.Render(ch))
			}
		}
		b.WriteString(previewBorderStyle.Render("│"))
		b.WriteString("\n")
	}
	b.WriteString(previewBorderStyle.Render("  └" + strings.Repeat("─", gridW) + "┘"))
	b.WriteString("\n")
	return b.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
