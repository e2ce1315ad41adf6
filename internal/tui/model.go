package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"twenty48/internal/config"
	"twenty48/internal/game"
	"twenty48/internal/replay"
	"twenty48/internal/storage"
)

// Model is the Bubble Tea model for one play session.
type Model struct {
	cfg    config.Config
	game   *game.Game
	anim   *animator
	screen *canvas
	keys   keyMap
	help   help.Model
	store  *storage.Store

	width    int
	height   int
	saved    bool
	quitting bool
}

// NewModel creates a session model. A zero seed picks one from the clock.
func NewModel(cfg config.Config, seed int64, store *storage.Store, width, height int) (Model, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := game.New(cfg, seed)
	anim, err := newAnimator(g.Board().Encode(), cfg.Board.Size, cfg.Animation.SlideTicks, cfg.Animation.PopTicks)
	if err != nil {
		return Model{}, err
	}

	return Model{
		cfg:    cfg,
		game:   g,
		anim:   anim,
		screen: newCanvas(width, height),
		keys:   defaultKeyMap(),
		help:   help.New(),
		store:  store,
		width:  width,
		height: height,
	}, nil
}

// Init starts the animation tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.cfg.Animation.TickRate)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, keys.Restart):
		if m.game.Over() {
			m.game = game.New(m.cfg, time.Now().UnixNano())
			if err := m.anim.reset(m.game.Board().Encode()); err != nil {
				m.quitting = true
				return m, tea.Quit
			}
			m.saved = false
		}
		return m, nil
	}

	if d, ok := keys.direction(msg); ok {
		// Input is ignored while a previous turn is still animating.
		if m.anim.animating() || m.game.Over() {
			return m, nil
		}
		if actions, moved := m.game.Move(d); moved {
			m.anim.observe(actions)
		}
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.anim.tick()

	if m.game.Over() && !m.anim.animating() && !m.saved {
		m.saveResult()
		m.saved = true
	}

	return m, tickCmd(m.cfg.Animation.TickRate)
}

// saveResult records the finished session with its replay recording.
func (m Model) saveResult() {
	if m.store == nil {
		return
	}
	var replayText string
	if data, err := replay.FromGame(m.game, m.cfg).Marshal(); err == nil {
		replayText = string(data)
	}
	//nolint:errcheck // Best-effort save
	m.store.SaveResult(storage.Result{
		Board:   m.game.Board().Encode(),
		MaxTile: int(m.game.MaxTile()),
		Moves:   len(m.game.Moves()),
		Replay:  replayText,
	})
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.clear()

	size := m.cfg.Board.Size
	boardW := size*cellWidth + 1
	boardH := size*cellHeight + 1

	if m.width < boardW || m.height < hudHeight+boardH+2 {
		drawTooSmall(m.screen)
		return renderCanvas(m.screen)
	}

	boardX := (m.width - boardW) / 2
	boardY := hudHeight + 1

	drawHUD(m.screen, boardX, boardW, m.game.MaxTile(), len(m.game.Moves()), m.game.Seed())
	drawGrid(m.screen, boardX, boardY, size)
	m.drawTiles(boardX, boardY)

	if m.game.Over() && !m.anim.animating() {
		drawOverlay(m.screen, boardX+boardW/2, boardY+boardH/2,
			"GAME OVER",
			fmt.Sprintf("Max tile: %d", int(m.game.MaxTile())),
			"R restart, Q quit",
		)
	}

	return renderCanvas(m.screen) + "\n" + m.help.View(m.keys)
}

// drawTiles draws the board contents for the current animation phase.
func (m Model) drawTiles(boardX, boardY int) {
	a := m.anim
	switch a.phase {
	case phaseSlide:
		for _, t := range a.rest {
			drawTile(m.screen, boardX, boardY, t.Position, t.Value, tileColor(t.Value))
		}
		progress := a.progress()
		for _, s := range a.sprites {
			row, col := s.at(progress)
			drawTileAt(m.screen, boardX, boardY, row, col, s.value, tileColor(s.value))
		}
	case phasePop:
		for p, v := range a.tiles {
			color := tileColor(v)
			if a.spawn != nil && p == a.spawn.Tile.Position {
				color = ColorBrightWhite
			}
			drawTile(m.screen, boardX, boardY, p, v, color)
		}
	default:
		for p, v := range a.tiles {
			drawTile(m.screen, boardX, boardY, p, v, tileColor(v))
		}
	}
}

// Run plays one interactive session in the local terminal.
func Run(cfg config.Config, seed int64, store *storage.Store, width, height int) error {
	m, err := NewModel(cfg, seed, store, width, height)
	if err != nil {
		return err
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
