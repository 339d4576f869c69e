// Package display shows the cube in the terminal and animates queued moves.
package display

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	colorcube "github.com/kenzierocks/color-cube-solver"
)

// FrameRate is the number of frames drawn per second.
const FrameRate = 60

type frameMsg time.Time

// Options configures a Model.
type Options struct {
	Title string
	// MoveSpeed is the number of frames each move is animated for.
	MoveSpeed int
	// Moves is polled once per frame. A closed channel means no more moves.
	Moves <-chan colorcube.Move
	// Clicks receives one value per click. Clicks nobody is waiting for are
	// dropped once the buffer is full.
	Clicks chan<- struct{}
	// QuitWhenDone exits after the last move has been shown.
	QuitWhenDone bool
}

// Model is the bubbletea model that drives the display.
type Model struct {
	opts    Options
	tracker *colorcube.Tracker[colorcube.SixColor]

	current   *colorcube.Move
	highlight map[int]bool
	frames    int

	done      bool
	solvedAt  int
	clicks    int
	dropped   int
	quitting  bool
	lastFrame time.Time
}

// New creates a model showing start.
func New(start *colorcube.SixCube, opts Options) *Model {
	if opts.MoveSpeed < 1 {
		opts.MoveSpeed = 1
	}
	m := &Model{
		opts:     opts,
		tracker:  colorcube.NewTracker(start),
		solvedAt: -1,
	}
	m.tracker.SetSolvedCallback(func(moveCount int) {
		m.solvedAt = moveCount
	})
	return m
}

// Cube returns the cube as currently committed.
func (m *Model) Cube() *colorcube.SixCube {
	return m.tracker.Cube()
}

// Applied returns the number of moves committed so far.
func (m *Model) Applied() int {
	return m.tracker.MoveCount()
}

// Done reports whether the move channel was closed and fully shown.
func (m *Model) Done() bool {
	return m.done && m.current == nil
}

// Quitting reports whether the user asked to quit.
func (m *Model) Quitting() bool {
	return m.quitting
}

func (m *Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/FrameRate, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case " ", "space", "enter":
			m.click()
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			m.click()
		}

	case frameMsg:
		m.lastFrame = time.Time(msg)
		m.step()
		if m.opts.QuitWhenDone && m.Done() {
			return m, tea.Quit
		}
		return m, tick()
	}

	return m, nil
}

// step advances the animation by one frame, taking a new move from the
// queue when idle.
func (m *Model) step() {
	if m.current == nil && !m.done && m.opts.Moves != nil {
		select {
		case mv, ok := <-m.opts.Moves:
			if !ok {
				m.done = true
				break
			}
			m.current = &mv
			m.frames = 0
			m.highlight = turningCells(mv.Face, m.tracker.Cube().Size())
		default:
		}
	}
	if m.current == nil {
		return
	}

	m.frames++
	if m.frames >= m.opts.MoveSpeed {
		m.tracker.ApplyMove(*m.current)
		m.current = nil
		m.highlight = nil
		m.frames = 0
	}
}

func (m *Model) click() {
	m.clicks++
	if m.opts.Clicks == nil {
		return
	}
	select {
	case m.opts.Clicks <- struct{}{}:
	default:
		m.dropped++
	}
}

// turningCells returns every storage index a quarter turn of face touches.
func turningCells(face colorcube.Face, size int) map[int]bool {
	cells := make(map[int]bool, size*size+4*size)
	for _, i := range colorcube.OuterRingIndices(face, size) {
		cells[i] = true
	}
	for x, y := range colorcube.FacePoints(size) {
		cells[colorcube.Index(face, x, y, size)] = true
	}
	return cells
}
