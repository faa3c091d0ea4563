package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

// PlayFunc plays a session on term until the player quits or ctx is done.
type PlayFunc func(ctx context.Context, term game.Terminal) error

// Model is the Bubble Tea side of a session. It forwards keys and window
// sizes to the Terminal and displays the frames the game loop produces.
type Model struct {
	ctx      context.Context
	term     *Terminal
	keys     KeyMap
	play     PlayFunc
	frame    string
	err      error
	quitting bool
}

// NewModel creates a model that runs play on term once the program starts.
func NewModel(ctx context.Context, term *Terminal, keys KeyMap, play PlayFunc) Model {
	return Model{
		ctx:  ctx,
		term: term,
		keys: keys,
		play: play,
	}
}

// Init starts the game loop and the frame listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.runLoop(), waitForFrame(m.term))
}

// runLoop runs the game for the lifetime of the program. Bubble Tea runs
// commands on their own goroutines, so blocking here is fine.
func (m Model) runLoop() tea.Cmd {
	ctx, term, play := m.ctx, m.term, m.play
	return func() tea.Msg {
		err := play(ctx, term)
		term.Close()
		return LoopDoneMsg{Err: err}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.term.Send(m.keys.Action(msg))
		return m, nil

	case tea.WindowSizeMsg:
		m.term.SetSize(msg.Width, msg.Height)
		return m, nil

	case FrameMsg:
		m.frame = string(msg)
		return m, waitForFrame(m.term)

	case LoopDoneMsg:
		m.err = msg.Err
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the latest frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.frame
}

// Err returns the error the game loop ended with, if any.
func (m Model) Err() error {
	return m.err
}

// Run plays one local session in a Bubble Tea program. cfg supplies the
// initial window size until the first resize message arrives.
func Run(ctx context.Context, cfg core.RuntimeConfig, keys KeyMap, play PlayFunc) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	term := NewTerminal(cfg.ScreenW, cfg.ScreenH)
	defer term.Close()

	p := tea.NewProgram(
		NewModel(ctx, term, keys, play),
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}
