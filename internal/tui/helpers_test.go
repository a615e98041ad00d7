package tui

import (
	"context"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/teeform/internal/imageload"
	"github.com/alexisbeaulieu97/teeform/internal/submit"
)

func init() {
	// Force a consistent colour profile so rendered views are plain text.
	lipgloss.SetColorProfile(termenv.Ascii)
}

type fakeLoader struct {
	mu     sync.Mutex
	images map[string]*imageload.Image
	errs   map[string]error
	calls  []string
}

func (f *fakeLoader) Load(_ context.Context, path string) (*imageload.Image, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, path)
	if err, ok := f.errs[path]; ok {
		return nil, err
	}
	return f.images[path], nil
}

type fakeSubmitter struct {
	mu          sync.Mutex
	submissions []submit.Submission
	err         error
}

func (f *fakeSubmitter) Submit(_ context.Context, sub submit.Submission) (submit.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submissions = append(f.submissions, sub)
	if f.err != nil {
		return submit.Receipt{}, f.err
	}
	return submit.Receipt{Submitter: "fake"}, nil
}

func (f *fakeSubmitter) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.submissions)
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	return NewModel(Options{
		Loader:    &fakeLoader{},
		Submitter: &fakeSubmitter{},
		StartDir:  t.TempDir(),
	})
}

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func paste(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s), Paste: true}
}

var (
	altQ     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}, Alt: true}
	ctrlS    = tea.KeyMsg{Type: tea.KeyCtrlS}
	tab      = tea.KeyMsg{Type: tea.KeyTab}
	shiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	enter    = tea.KeyMsg{Type: tea.KeyEnter}
	esc      = tea.KeyMsg{Type: tea.KeyEsc}
	right    = tea.KeyMsg{Type: tea.KeyRight}
	left     = tea.KeyMsg{Type: tea.KeyLeft}
)
