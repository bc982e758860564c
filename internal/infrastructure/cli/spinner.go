package cli

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/doeshing/wiz/internal/domain"
	"github.com/doeshing/wiz/internal/ports"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

var spinnerPhrases = []string{
	"Winging it...",
	"Markov-chaining my way to it...",
	"Compressing the internet...",
}

// Spinner displays an animated spinner while the llm subprocess runs.
// It starts at most once; later Start calls are ignored.
type Spinner struct {
	writer   io.Writer
	interval time.Duration
	grace    time.Duration
	enabled  bool

	once    sync.Once
	started atomic.Bool
	stop    chan struct{}
	done    chan struct{}
}

// NewSpinner creates an enabled spinner drawing on w.
func NewSpinner(w io.Writer, interval time.Duration) *Spinner {
	if interval <= 0 {
		interval = domain.DefaultProgressInterval
	}
	return &Spinner{
		writer:   w,
		interval: interval,
		grace:    domain.DefaultProgressGrace,
		enabled:  true,
		stop:     make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
}

var (
	processSpinner     *Spinner
	processSpinnerOnce sync.Once
)

// ProcessSpinner returns the single spinner of this process, drawing on stderr.
// Settings from the first call win. It stays silent when stderr is not a terminal.
func ProcessSpinner(settings domain.ProgressSettings) *Spinner {
	processSpinnerOnce.Do(func() {
		interval := time.Duration(settings.IntervalMS) * time.Millisecond
		processSpinner = NewSpinner(os.Stderr, interval)
		processSpinner.enabled = settings.Enabled && isTerminal(os.Stderr)
	})
	return processSpinner
}

// Enabled reports whether Start will draw anything.
func (s *Spinner) Enabled() bool {
	return s.enabled
}

// Start begins the spinner animation.
func (s *Spinner) Start() {
	if !s.enabled {
		return
	}
	s.once.Do(func() {
		s.started.Store(true)
		go s.run(pickPhrase())
	})
}

// Stop signals the animation to clear its line and waits up to the grace
// period for it to do so. Safe to call before Start or more than once.
func (s *Spinner) Stop() {
	if !s.started.Load() {
		return
	}
	select {
	case s.stop <- struct{}{}:
	default:
	}
	select {
	case <-s.done:
	case <-time.After(s.grace):
	}
}

func (s *Spinner) run(phrase string) {
	defer close(s.done)
	idx := 0
	for {
		select {
		case _, ok := <-s.stop:
			if ok {
				// Clear the spinner line
				fmt.Fprint(s.writer, "\r\033[K")
			}
			return
		default:
		}

		fmt.Fprintf(s.writer, "\r%s %s", spinnerFrames[idx], phrase)
		if f, ok := s.writer.(interface{ Flush() error }); ok {
			_ = f.Flush()
		}
		idx = (idx + 1) % len(spinnerFrames)
		time.Sleep(s.interval)
	}
}

func pickPhrase() string {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	return spinnerPhrases[r.Intn(len(spinnerPhrases))]
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

var _ ports.Progress = (*Spinner)(nil)
