package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/mcoot/minesweeper/internal/services/game"
	"github.com/mcoot/minesweeper/internal/services/view"
)

// Each board column is this many characters wide
const cellWidth = 3

var (
	coveredStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("248"))
	emptyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	flagStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	questionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	mineStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
	blownMineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("9")).Bold(true)
	falseFlagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("201")).Strikethrough(true)
	axisStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	winStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	lossStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	numberStyles   = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),  // 1
		lipgloss.NewStyle().Foreground(lipgloss.Color("41")),  // 2
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")), // 3
		lipgloss.NewStyle().Foreground(lipgloss.Color("99")),  // 4
		lipgloss.NewStyle().Foreground(lipgloss.Color("160")), // 5
		lipgloss.NewStyle().Foreground(lipgloss.Color("37")),  // 6
		lipgloss.NewStyle().Foreground(lipgloss.Color("248")), // 7
		lipgloss.NewStyle().Foreground(lipgloss.Color("243")), // 8
	}
)

var faces = map[view.Face]string{
	view.FaceHappy:  ":)",
	view.FaceDead:   "X(",
	view.FaceWinner: "B)",
}

// Output handles formatting output based on the configured format
type Output struct {
	format string
	out    io.Writer
	errOut io.Writer
	styled bool
}

// NewOutput creates a new Output formatter. Text output is coloured only
// when out is a terminal.
func NewOutput(format string, out, errOut io.Writer) *Output {
	return &Output{
		format: format,
		out:    out,
		errOut: errOut,
		styled: format == OutputText && isTerminal(out),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// PrintBoard outputs the board in the configured format
func (o *Output) PrintBoard(b view.Board) {
	if o.format == OutputJSON {
		o.printJSON(o.out, b)
		return
	}
	fmt.Fprint(o.out, o.formatBoard(b))
}

// PrintPresets outputs the built-in presets
func (o *Output) PrintPresets(presets []game.Preset) {
	if o.format == OutputJSON {
		type presetJSON struct {
			Name  string `json:"name"`
			Cols  int    `json:"cols"`
			Rows  int    `json:"rows"`
			Mines int    `json:"mines"`
		}
		data := make([]presetJSON, len(presets))
		for i, p := range presets {
			data[i] = presetJSON{Name: p.Name, Cols: p.Cols, Rows: p.Rows, Mines: p.Mines}
		}
		o.printJSON(o.out, data)
		return
	}

	for _, p := range presets {
		fmt.Fprintf(o.out, "%-14s %2dx%-2d %3d mines\n", p.Name, p.Cols, p.Rows, p.Mines)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == OutputJSON {
		o.printJSON(o.errOut, map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		})
		return
	}
	fmt.Fprintf(o.errOut, "Error: %s\n", err)
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == OutputJSON {
		o.printJSON(o.out, map[string]string{"message": msg})
		return
	}
	fmt.Fprintln(o.out, msg)
}

// PrintOutcome announces the end of a game
func (o *Output) PrintOutcome(b view.Board, msg string) {
	if o.format == OutputJSON {
		o.printJSON(o.out, map[string]string{"message": msg, "status": b.Status})
		return
	}
	fmt.Fprintln(o.out, o.style(statusStyle(b.Face), msg))
}

// printJSON writes one object per line so a stream of boards can be read
// line by line
func (o *Output) printJSON(w io.Writer, data any) {
	_ = json.NewEncoder(w).Encode(data)
}

func (o *Output) formatBoard(b view.Board) string {
	var sb strings.Builder

	header := fmt.Sprintf("%s  mines %d  time %ds", faces[b.Face], b.MinesRemaining, b.ElapsedSeconds)
	sb.WriteString(o.style(headerStyle, header))
	sb.WriteString("\n")

	// Column numbers
	sb.WriteString(strings.Repeat(" ", cellWidth+1))
	for col := range b.Cols {
		sb.WriteString(o.style(axisStyle, fmt.Sprintf("%*d", cellWidth, col)))
	}
	sb.WriteString("\n")

	for row, cells := range b.Cells {
		sb.WriteString(o.style(axisStyle, fmt.Sprintf("%*d", cellWidth, row)))
		sb.WriteString(" ")
		for _, cell := range cells {
			sym := cell.Symbol()
			sb.WriteString(strings.Repeat(" ", cellWidth-len(sym)))
			sb.WriteString(o.style(cellStyle(cell), sym))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func (o *Output) style(s lipgloss.Style, text string) string {
	if !o.styled {
		return text
	}
	return s.Render(text)
}

// statusStyle picks the colour for an end-of-game message
func statusStyle(face view.Face) lipgloss.Style {
	if face == view.FaceWinner {
		return winStyle
	}
	return lossStyle
}

func cellStyle(c view.Cell) lipgloss.Style {
	switch c.Kind {
	case view.CellNumber:
		if c.Count == 0 {
			return emptyStyle
		}
		return numberStyles[c.Count-1]
	case view.CellFlagged:
		return flagStyle
	case view.CellQuestioned:
		return questionStyle
	case view.CellMine:
		return mineStyle
	case view.CellBlownMine:
		return blownMineStyle
	case view.CellFalseFlag:
		return falseFlagStyle
	default:
		return coveredStyle
	}
}
