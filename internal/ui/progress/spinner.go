// Package progress shows a spinner on stderr while remark waits on
// something slow, such as the release API.
package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"

	"github.com/raphi011/remark/internal/ui/styles"
)

// stopTimeout bounds how long Stop waits for the program to exit.
const stopTimeout = 500 * time.Millisecond

// Spinner is a one-line animation with a message.
type Spinner struct {
	message string
	out     io.Writer

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

type spinnerModel struct {
	spinner spinner.Model
	message string
}

func newSpinnerModel(message string) spinnerModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.AccentStyle
	return spinnerModel{spinner: sp, message: message}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyPressMsg); ok {
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m spinnerModel) View() tea.View {
	if m.message == "" {
		return tea.NewView("")
	}
	return tea.NewView(fmt.Sprintf("%s %s", m.spinner.View(), styles.MutedStyle.Render(m.message)))
}

// NewSpinner returns a stopped spinner writing to stderr.
func NewSpinner(message string) *Spinner {
	return &Spinner{message: message, out: os.Stderr}
}

// Start begins the animation. Starting twice is a no-op.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.program != nil {
		return
	}
	profile := colorprofile.Detect(os.Stderr, os.Environ())
	s.program = tea.NewProgram(newSpinnerModel(s.message),
		tea.WithoutSignalHandler(),
		tea.WithOutput(s.out),
		tea.WithColorProfile(profile),
	)
	s.done = make(chan struct{})

	go func(p *tea.Program, done chan struct{}) {
		_, _ = p.Run()
		close(done)
	}(s.program, s.done)
}

// Stop ends the animation and clears its line.
func (s *Spinner) Stop() {
	s.mu.Lock()
	p, done := s.program, s.done
	s.program = nil
	s.mu.Unlock()

	if p == nil {
		return
	}
	p.Quit()
	select {
	case <-done:
	case <-time.After(stopTimeout):
	}
	fmt.Fprint(s.out, "\r\033[K")
}

// Run shows the spinner while fn runs and returns fn's error.
func Run(message string, fn func() error) error {
	s := NewSpinner(message)
	s.Start()
	defer s.Stop()
	return fn()
}
