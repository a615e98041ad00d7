package tui

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/teeform/internal/customizer"
	"github.com/alexisbeaulieu97/teeform/internal/logger"
	"github.com/alexisbeaulieu97/teeform/internal/submit"
	"github.com/alexisbeaulieu97/teeform/internal/ui/components"
)

const (
	termWidth  = 120
	termHeight = 50
)

func waitForContent(t *testing.T, tm *teatest.TestModel, content string) {
	t.Helper()
	teatest.WaitFor(t, tm.Output(),
		func(b []byte) bool {
			return bytes.Contains(b, []byte(content))
		},
		teatest.WithCheckInterval(50*time.Millisecond),
		teatest.WithDuration(3*time.Second),
	)
}

func TestProgramCyclesThemes(t *testing.T) {
	m := newTestModel(t)
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(termWidth, termHeight))

	waitForContent(t, tm, "T-Shirt Customizer")

	tm.Send(altQ)
	waitForContent(t, tm, "Dark")
	tm.Send(altQ)
	waitForContent(t, tm, "Colorful")

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	final, ok := tm.FinalModel(t, teatest.WithFinalTimeout(3*time.Second)).(Model)
	require.True(t, ok)
	require.Equal(t, components.ThemeColorful, final.Theme())
}

func TestProgramSubmitsThroughLogSubmitter(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	m := NewModel(Options{
		Loader:    &fakeLoader{},
		Submitter: submit.NewLogSubmitter(log, 10*time.Millisecond),
		StartDir:  t.TempDir(),
	})
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(termWidth, termHeight))
	waitForContent(t, tm, "Save Customization")

	// Move to the text area and write two lines.
	for i := 0; i < 4; i++ {
		tm.Send(tab)
	}
	tm.Type("GO")
	tm.Send(enter)
	tm.Type("TEAM")
	waitForContent(t, tm, "2/3 lines used")

	tm.Send(ctrlS)
	waitForContent(t, tm, "Customization saved")

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	final, ok := tm.FinalModel(t, teatest.WithFinalTimeout(3*time.Second)).(Model)
	require.True(t, ok)
	require.False(t, final.Submitting())
	require.Equal(t, "GO\nTEAM", final.Text())
	require.Equal(t, customizer.BuildAthletic, final.Build())
	require.Contains(t, buf.String(), "customization submitted")
	require.Contains(t, buf.String(), `"text_lines":2`)
}
