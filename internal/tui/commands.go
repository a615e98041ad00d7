package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/teeform/internal/imageload"
	"github.com/alexisbeaulieu97/teeform/internal/submit"
)

// ImageLoader reads an image file into a form attachment.
type ImageLoader interface {
	Load(ctx context.Context, path string) (*imageload.Image, error)
}

// loadImageCmd loads an image asynchronously
func loadImageCmd(ctx context.Context, loader ImageLoader, seq uint64, path string) tea.Cmd {
	return func() tea.Msg {
		img, err := loader.Load(ctx, path)
		if err != nil {
			return ImageLoadFailedMsg{Seq: seq, Path: path, Err: err}
		}
		if img == nil {
			return ImageLoadFailedMsg{Seq: seq, Path: path, Err: fmt.Errorf("load produced no image")}
		}
		return ImageLoadedMsg{Seq: seq, Image: img}
	}
}

// submitCmd hands the submission to the submitter asynchronously
func submitCmd(ctx context.Context, submitter submit.Submitter, sub submit.Submission) tea.Cmd {
	return func() tea.Msg {
		receipt, err := submitter.Submit(ctx, sub)
		if err != nil {
			return SubmitFailedMsg{Err: err}
		}
		return SubmittedMsg{Receipt: receipt}
	}
}
