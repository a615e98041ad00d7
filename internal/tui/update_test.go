package tui

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/teeform/internal/customizer"
	"github.com/alexisbeaulieu97/teeform/internal/imageload"
	"github.com/alexisbeaulieu97/teeform/internal/logger"
	"github.com/alexisbeaulieu97/teeform/internal/submit"
	"github.com/alexisbeaulieu97/teeform/internal/ui/components"
	apperrors "github.com/alexisbeaulieu97/teeform/pkg/errors"
)

func TestUpdate_WindowSizeMsg(t *testing.T) {
	t.Parallel()

	m, cmd := send(t, newTestModel(t), tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Nil(t, cmd)
	assert.Equal(t, 100, m.width)
	assert.Equal(t, 40, m.height)
	assert.Equal(t, 100, m.help.Width)
}

func TestUpdate_ThemeCycle(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	want := []components.ThemeName{components.ThemeDark, components.ThemeColorful, components.ThemeLight}
	for _, theme := range want {
		m, _ = send(t, m, altQ)
		require.Equal(t, theme, m.Theme())
		require.Equal(t, theme, m.styles.theme.Name)
	}
}

func TestUpdate_ThemeCycleIsNotTypedIntoText(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.setFocus(focusText)

	m, _ = send(t, m, runes("hi"), altQ)
	assert.Equal(t, "hi", m.Text())
	assert.Equal(t, components.ThemeDark, m.Theme())
}

func TestUpdate_ThemeCycleWorksWhilePicking(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.picking = true

	m, _ = send(t, m, altQ)
	assert.Equal(t, components.ThemeDark, m.Theme())
	assert.True(t, m.picking)
}

func TestUpdate_NumberInputsAcceptDigitsOnly(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.heightInput.SetValue("")

	m, _ = send(t, m, runes("1a2"))
	assert.Equal(t, "12", m.Input().Height)

	m, _ = send(t, m, runes("345"))
	assert.Equal(t, "123", m.Input().Height, "three characters at most")
}

func TestUpdate_BuildSelector(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.setFocus(focusBuild)

	m, _ = send(t, m, right)
	assert.Equal(t, customizer.BuildBig, m.Build())
	m, _ = send(t, m, right)
	assert.Equal(t, customizer.BuildLean, m.Build())
	m, _ = send(t, m, left, left)
	assert.Equal(t, customizer.BuildAthletic, m.Build())
	m, _ = send(t, m, runes("h"))
	assert.Equal(t, customizer.BuildRegular, m.Build())
}

func TestUpdate_TextIsClampedAfterEveryEdit(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.setFocus(focusText)

	m, _ = send(t, m, runes("a"), enter, runes("b"), enter, runes("c"))
	assert.Equal(t, "a\nb\nc", m.Text())

	m, _ = send(t, m, enter)
	assert.Equal(t, 3, customizer.LineCount(m.Text()), "a fourth line is never kept")
	assert.True(t, strings.HasPrefix(m.Text(), "a\nb\nc"))
}

func TestUpdate_PastedTextIsClamped(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.setFocus(focusText)

	m, _ = send(t, m, paste("one\ntwo\nthree\nfour\nfive"))
	assert.Equal(t, "one\ntwo\nthree", m.Text())
}

func TestUpdate_SubmitWithInvalidFields(t *testing.T) {
	t.Parallel()

	sub := &fakeSubmitter{}
	m := NewModel(Options{Loader: &fakeLoader{}, Submitter: sub, StartDir: t.TempDir()})
	m.heightInput.SetValue("99")
	m.weightInput.SetValue("201")
	m.setFocus(focusSubmit)

	m, _ = send(t, m, ctrlS)

	assert.False(t, m.Submitting())
	assert.Equal(t, "Height must be between 100-250 cm", m.Errors().For(customizer.FieldHeight))
	assert.Equal(t, "Weight must be between 30-200 kg", m.Errors().For(customizer.FieldWeight))
	assert.Equal(t, focusHeight, m.focus, "focus jumps to the first invalid field")
	assert.Zero(t, sub.count())
}

func TestUpdate_FieldsRevalidateAfterFailedSubmit(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.heightInput.SetValue("99")

	m, _ = send(t, m, ctrlS)
	require.True(t, m.Errors().Has(customizer.FieldHeight))

	m.heightInput.SetValue("10")
	m, _ = send(t, m, runes("0"))
	assert.Equal(t, "100", m.Input().Height)
	assert.Empty(t, m.Errors())
}

func TestUpdate_NoValidationBeforeFirstSubmit(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.heightInput.SetValue("")

	m, _ = send(t, m, runes("9"))
	assert.Empty(t, m.Errors())
}

func TestUpdate_EmptyHeightIsRequired(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.heightInput.SetValue("")

	m, _ = send(t, m, ctrlS)
	assert.Equal(t, "Height is required", m.Errors().For(customizer.FieldHeight))
}

func TestUpdate_SubmitValidForm(t *testing.T) {
	t.Parallel()

	sub := &fakeSubmitter{}
	m := NewModel(Options{Loader: &fakeLoader{}, Submitter: sub, StartDir: t.TempDir()})
	m.image = &imageload.Image{Name: "design.png"}

	m, cmd := send(t, m, ctrlS)
	require.NotNil(t, cmd)
	assert.True(t, m.Submitting())
	assert.Empty(t, m.Errors())

	m, cmd = send(t, m, ctrlS)
	assert.Nil(t, cmd, "submit is ignored while one is in flight")
	assert.True(t, m.Submitting())

	m, _ = send(t, m, SubmittedMsg{Receipt: submit.Receipt{Submitter: "fake"}})
	assert.False(t, m.Submitting())
	require.NotNil(t, m.Status())
	assert.Equal(t, components.AlertVariantSuccess, m.Status().Variant)
}

func TestUpdate_SubmitButtonActivates(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.setFocus(focusSubmit)

	m, cmd := send(t, m, enter)
	assert.NotNil(t, cmd)
	assert.True(t, m.Submitting())
}

func TestUpdate_SubmitFailed(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m, _ = send(t, m, ctrlS)
	require.True(t, m.Submitting())

	m, _ = send(t, m, SubmitFailedMsg{Err: errors.New("backend unavailable")})
	assert.False(t, m.Submitting())
	require.NotNil(t, m.Status())
	assert.Equal(t, components.AlertVariantError, m.Status().Variant)
	assert.Contains(t, m.Status().Message, "backend unavailable")
}

func TestUpdate_DroppedPathStartsLoad(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.setFocus(focusDrop)

	m, cmd := send(t, m, paste("'/tmp/my design.png'"))
	require.NotNil(t, cmd)
	assert.True(t, m.loading)
	assert.Equal(t, uint64(1), m.loadSeq)
	assert.Equal(t, "my design.png", m.loadingLabel)
}

func TestUpdate_DroppedGarbageIsReported(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.setFocus(focusDrop)

	m, _ = send(t, m, paste("   "))
	assert.False(t, m.loading)
	assert.NotEmpty(t, m.imageErr)
}

func TestUpdate_LatestImageRequestWins(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.setFocus(focusDrop)
	m, _ = send(t, m, paste("/tmp/first.png"), paste("/tmp/second.png"))
	require.Equal(t, uint64(2), m.loadSeq)

	second := &imageload.Image{Name: "second.png"}
	m, _ = send(t, m, ImageLoadedMsg{Seq: 2, Image: second})
	assert.Same(t, second, m.Image())
	assert.False(t, m.loading)

	m, _ = send(t, m, ImageLoadedMsg{Seq: 1, Image: &imageload.Image{Name: "first.png"}})
	assert.Same(t, second, m.Image(), "a late result for an older request is discarded")
}

func TestUpdate_FailedLoadKeepsPreviousImage(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	previous := &imageload.Image{Name: "keep.png"}
	m.image = previous
	m.setFocus(focusDrop)

	m, _ = send(t, m, paste("/tmp/notes.txt"))
	err := apperrors.NewImageError("/tmp/notes.txt", fmt.Errorf("text/plain: %w", apperrors.ErrNotImage))
	m, _ = send(t, m, ImageLoadFailedMsg{Seq: m.loadSeq, Path: "/tmp/notes.txt", Err: err})

	assert.Same(t, previous, m.Image())
	assert.Equal(t, "notes.txt is not an image", m.imageErr)
	assert.False(t, m.loading)
}

func TestUpdate_RemoveImageInvalidatesInFlightLoad(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.image = &imageload.Image{Name: "old.png"}
	m.setFocus(focusDrop)

	m, _ = send(t, m, paste("/tmp/new.png"))
	pending := m.loadSeq

	m, _ = send(t, m, runes("x"))
	assert.Nil(t, m.Image())
	assert.False(t, m.loading)

	m, _ = send(t, m, ImageLoadedMsg{Seq: pending, Image: &imageload.Image{Name: "new.png"}})
	assert.Nil(t, m.Image())
}

func TestUpdate_PickerOpensAndCancels(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.setFocus(focusDrop)

	m, cmd := send(t, m, enter)
	assert.True(t, m.picking)
	assert.NotNil(t, cmd)

	m, _ = send(t, m, ctrlS)
	assert.False(t, m.Submitting(), "form keys are inactive while picking")

	m, _ = send(t, m, esc)
	assert.False(t, m.picking)
}

func TestUpdate_QuitKey(t *testing.T) {
	t.Parallel()

	m, cmd := send(t, newTestModel(t), tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.True(t, m.Quitting())
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestUpdate_SpinnerIdleWhenNothingInFlight(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	_, cmd := send(t, m, m.spinner.Tick())
	assert.Nil(t, cmd)
}

func TestImageErrorMessage(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "not an image",
			err:  apperrors.NewImageError("/x/a.txt", fmt.Errorf("text/plain: %w", apperrors.ErrNotImage)),
			want: "a.txt is not an image",
		},
		{
			name: "image error cause is shown",
			err:  apperrors.NewImageError("/x/a.png", errors.New("decode image/png: unexpected EOF")),
			want: "Could not load a.png: decode image/png: unexpected EOF",
		},
		{
			name: "plain error",
			err:  errors.New("boom"),
			want: "Could not load a.png: boom",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := "/x/a.png"
			if strings.HasSuffix(tc.want, "not an image") {
				path = "/x/a.txt"
			}
			assert.Equal(t, tc.want, imageErrorMessage(path, tc.err))
		})
	}
}

func TestUpdate_RejectedUploadsAreLoggedAsWarnings(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	m := NewModel(Options{
		Loader:    &fakeLoader{},
		Submitter: &fakeSubmitter{},
		Logger:    log,
		StartDir:  t.TempDir(),
	})
	m.setFocus(focusDrop)

	m, _ = send(t, m, paste("   "))
	require.Contains(t, buf.String(), `"message":"rejected drop"`)

	m, _ = send(t, m, paste("/tmp/notes.txt"))
	notImage := apperrors.NewImageError("/tmp/notes.txt", apperrors.ErrNotImage)
	_, _ = send(t, m, ImageLoadFailedMsg{Seq: m.loadSeq, Path: "/tmp/notes.txt", Err: notImage})

	out := buf.String()
	require.Contains(t, out, `"message":"rejected non-image upload"`)
	require.Contains(t, out, `"level":"warn"`)
	require.NotContains(t, out, `"level":"error"`)
}
