// Package ui renders the agent playing minesweeper as a bubbletea program.
// The model owns one board and one agent and advances the game one move per
// step, either on keypress or on a timer in autoplay mode.
package ui

import (
	"fmt"
	"strings"
	"time"

	"sweeper/internal/agent"
	"sweeper/internal/game"
	"sweeper/internal/knowledge"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// GameState tracks where the displayed game is.
type GameState int

const (
	StatePlaying GameState = iota
	StateWon
	StateLost
	StateStuck
)

const autoplayInterval = 150 * time.Millisecond

type tickMsg time.Time

// PlayModel defines the state of the play view.
type PlayModel struct {
	board *game.Board
	agent *agent.Agent
	seed  int64

	revealed map[knowledge.Cell]int
	lastMove knowledge.Cell
	hasMoved bool
	moves    int
	guesses  int
	state    GameState
	autoplay bool
	err      error

	progress progress.Model
	styles   Styles
	width    int
	height   int
}

// NewPlayModel creates the play view over a fresh board and agent.
func NewPlayModel(board *game.Board, ag *agent.Agent, seed int64) PlayModel {
	return PlayModel{
		board:    board,
		agent:    ag,
		seed:     seed,
		revealed: make(map[knowledge.Cell]int),
		progress: progress.New(progress.WithDefaultGradient()),
		styles:   DefaultStyles(),
		width:    80,
		height:   24,
	}
}

// Init initializes the model.
func (m PlayModel) Init() tea.Cmd {
	return nil
}

func tick() tea.Cmd {
	return tea.Tick(autoplayInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "enter":
			m.autoplay = false
			m = m.step()
		case "a":
			m.autoplay = !m.autoplay
			if m.autoplay {
				return m, tick()
			}
		}
	case tickMsg:
		if !m.autoplay {
			return m, nil
		}
		m = m.step()
		if m.state == StatePlaying {
			return m, tick()
		}
		m.autoplay = false
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(m.width-8, 40)
	}
	return m, nil
}

// step advances the game by one agent move.
func (m PlayModel) step() PlayModel {
	if m.state != StatePlaying {
		return m
	}

	move, guess, ok := m.nextMove()
	if !ok {
		if m.board.Won(m.agent.Flagged()) {
			m.state = StateWon
		} else {
			m.state = StateStuck
		}
		return m
	}

	m.lastMove = move
	m.hasMoved = true
	m.moves++
	if guess {
		m.guesses++
	}

	if m.board.IsMine(move) {
		m.state = StateLost
		return m
	}

	count, err := m.board.RevealCount(move)
	if err != nil {
		m.err = err
		m.state = StateStuck
		return m
	}
	if err := m.agent.Observe(move, count); err != nil {
		m.err = err
		m.state = StateStuck
		return m
	}
	m.revealed[move] = count

	if m.board.Won(m.agent.Flagged()) {
		m.state = StateWon
	}
	return m
}

func (m PlayModel) nextMove() (move knowledge.Cell, guess, ok bool) {
	if c, ok := m.agent.SafeMove(); ok {
		return c, false, true
	}
	if c, ok := m.agent.RandomMove(); ok {
		return c, true, true
	}
	return knowledge.Cell{}, false, false
}

// View renders the page.
func (m PlayModel) View() string {
	var sb strings.Builder

	h, w := m.board.Dims()
	sb.WriteString(m.styles.Header.Render(
		fmt.Sprintf("sweeper  %dx%d board, %d mines, seed %d", h, w, m.board.MineCount(), m.seed)))
	sb.WriteString("\n\n")
	sb.WriteString(m.renderBoard())
	sb.WriteString("\n")
	sb.WriteString(m.renderFooter())

	return m.styles.App.Render(sb.String())
}

func (m PlayModel) renderBoard() string {
	h, w := m.board.Dims()
	kb := m.agent.Knowledge()

	var rows []string
	for r := 0; r < h; r++ {
		cells := make([]string, 0, w)
		for c := 0; c < w; c++ {
			cell := knowledge.Cell{Row: r, Col: c}
			cells = append(cells, m.renderCell(cell, kb))
		}
		rows = append(rows, strings.Join(cells, " "))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m PlayModel) renderCell(cell knowledge.Cell, kb *knowledge.KnowledgeBase) string {
	style := m.styles.Hidden
	glyph := "■"

	switch {
	case m.state == StateLost && m.board.IsMine(cell):
		style, glyph = m.styles.Mine, "✸"
	case kb.IsMine(cell):
		style, glyph = m.styles.Flag, "⚑"
	default:
		if count, ok := m.revealed[cell]; ok {
			if count == 0 {
				style, glyph = m.styles.Empty, "·"
			} else {
				style, glyph = m.styles.Number, fmt.Sprintf("%d", count)
			}
		}
	}

	if m.hasMoved && cell == m.lastMove && m.state != StateLost {
		style = m.styles.LastMove
	}
	return style.Render(glyph)
}

func (m PlayModel) renderFooter() string {
	var status string
	switch m.state {
	case StateWon:
		status = m.styles.StatusWon.Render("WON - every mine identified")
	case StateLost:
		status = m.styles.StatusLost.Render(fmt.Sprintf("LOST - guessed into a mine at %v", m.lastMove))
	case StateStuck:
		if m.err != nil {
			status = m.styles.StatusLost.Render(fmt.Sprintf("stopped: %v", m.err))
		} else {
			status = m.styles.StatusInfo.Render("no moves left")
		}
	default:
		mode := "step"
		if m.autoplay {
			mode = "autoplay"
		}
		status = m.styles.StatusInfo.Render(fmt.Sprintf("%s - %d moves, %d guesses, %d sentences",
			mode, m.moves, m.guesses, m.agent.Knowledge().SentenceCount()))
	}

	flagged := len(m.agent.Flagged())
	total := m.board.MineCount()
	var ratio float64
	if total > 0 {
		ratio = float64(flagged) / float64(total)
	}
	bar := fmt.Sprintf("mines flagged %d/%d  %s", flagged, total, m.progress.ViewAs(ratio))

	help := m.styles.Help.Render("space: step  a: autoplay  q: quit")
	return m.styles.Footer.Render(status + "\n" + bar + "\n" + help)
}
