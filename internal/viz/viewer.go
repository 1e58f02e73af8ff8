package viz

import (
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/xvgterm/internal/render"
	"github.com/san-kum/xvgterm/internal/term"
	"github.com/san-kum/xvgterm/internal/xvg"
)

// chromeRows covers the summary and key hint lines under the graph.
const chromeRows = 2

// Viewer is the Bubble Tea model of the interactive viewer.
type Viewer struct {
	data          *xvg.Dataset
	style         render.Style
	least         term.Size
	width, height int
	styles        Styles
}

// NewViewer returns a viewer for ds. Terminals smaller than least show a
// warning instead of the graph.
func NewViewer(ds *xvg.Dataset, style render.Style, least term.Size) Viewer {
	return Viewer{
		data:   ds,
		style:  style,
		least:  least,
		styles: NewStyles(os.Stdout),
	}
}

func (v Viewer) Init() tea.Cmd { return nil }

func (v Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width, v.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return v, tea.Quit
		case "s":
			if v.style == render.Block {
				v.style = render.ASCII
			} else {
				v.style = render.Block
			}
		}
	}
	return v, nil
}

func (v Viewer) View() string {
	if v.width == 0 {
		return "loading..."
	}

	var b strings.Builder
	size := term.Size{Width: v.width, Height: v.height}
	if !size.Fits(v.least) {
		b.WriteString(v.styles.Warning.Render("Size is too small to present a meaningful graph."))
		b.WriteByte('\n')
	} else {
		size = size.Shrink(chromeRows)
		graph, err := render.Graph(v.data, v.style, size.Width, size.Height)
		if err != nil {
			b.WriteString(v.styles.Error.Render(err.Error()))
			b.WriteByte('\n')
		} else {
			b.WriteString(graph)
		}
	}

	b.WriteString(v.styles.Subtle.Render(render.Summary(v.data.Col(1))))
	b.WriteByte('\n')
	b.WriteString(v.styles.KeyHint.Render("s: style (" + v.style.String() + ")  q: quit"))
	return b.String()
}

// Style returns the current shading style.
func (v Viewer) Style() render.Style { return v.style }

// Run shows ds in the interactive viewer until the user quits.
func Run(ds *xvg.Dataset, style render.Style, least term.Size) error {
	p := tea.NewProgram(NewViewer(ds, style, least), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
