package tui

import (
	"github.com/alexisbeaulieu97/teeform/internal/imageload"
	"github.com/alexisbeaulieu97/teeform/internal/submit"
)

// ImageLoadedMsg reports a finished image load. Seq identifies the request so
// results of superseded loads can be dropped.
type ImageLoadedMsg struct {
	Seq   uint64
	Image *imageload.Image
}

// ImageLoadFailedMsg reports that the image at Path could not be loaded.
type ImageLoadFailedMsg struct {
	Seq  uint64
	Path string
	Err  error
}

// SubmittedMsg indicates the submitter accepted the customization
type SubmittedMsg struct {
	Receipt submit.Receipt
}

// SubmitFailedMsg indicates submission failed
type SubmitFailedMsg struct {
	Err error
}
