// Package submit hands finished customizations to an external collaborator.
// No backend exists yet; LogSubmitter stands in for one.
package submit

import (
	"context"
	"time"

	"github.com/alexisbeaulieu97/teeform/internal/customizer"
	"github.com/alexisbeaulieu97/teeform/internal/imageload"
	"github.com/alexisbeaulieu97/teeform/internal/logger"
	apperrors "github.com/alexisbeaulieu97/teeform/pkg/errors"
)

// Submission is the request shape handed to a Submitter.
type Submission struct {
	Form        customizer.FormData
	Image       *imageload.Image
	SubmittedAt time.Time
}

// Receipt acknowledges an accepted submission.
type Receipt struct {
	Submitter  string
	AcceptedAt time.Time
}

// Submitter delivers a submission. Implementations must honour ctx cancellation.
type Submitter interface {
	Submit(ctx context.Context, s Submission) (Receipt, error)
}

// LogSubmitter writes the submission to the log after a simulated delay.
type LogSubmitter struct {
	log   *logger.Logger
	delay time.Duration
	now   func() time.Time
}

// NewLogSubmitter builds a LogSubmitter. A nil logger discards output.
func NewLogSubmitter(log *logger.Logger, delay time.Duration) *LogSubmitter {
	if log == nil {
		log = logger.Nop()
	}
	return &LogSubmitter{log: log, delay: delay, now: time.Now}
}

const logSubmitterName = "log"

// Submit waits for the configured delay and logs the submission.
func (s *LogSubmitter) Submit(ctx context.Context, sub Submission) (Receipt, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Receipt{}, apperrors.NewSubmissionError(logSubmitterName, ctx.Err())
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return Receipt{}, apperrors.NewSubmissionError(logSubmitterName, err)
	}

	s.log.WithFields(Fields(sub)).Info("customization submitted")
	return Receipt{Submitter: logSubmitterName, AcceptedAt: s.now()}, nil
}

// Fields flattens a submission into structured log fields. The image payload
// itself is summarised, never logged.
func Fields(sub Submission) map[string]any {
	fields := map[string]any{
		"height":     sub.Form.Height,
		"weight":     sub.Form.Weight,
		"build":      string(sub.Form.Build),
		"text":       sub.Form.Text,
		"text_lines": customizer.LineCount(sub.Form.Text),
		"has_image":  sub.Image != nil,
	}
	if !sub.SubmittedAt.IsZero() {
		fields["submitted_at"] = sub.SubmittedAt.Format(time.RFC3339)
	}
	if img := sub.Image; img != nil {
		fields["image_name"] = img.Name
		fields["image_mime"] = img.MIME
		fields["image_bytes"] = img.Size
		fields["image_data_url_len"] = len(img.DataURL)
		if img.Decoded() {
			fields["image_width"] = img.Width
			fields["image_height"] = img.Height
		}
	}
	return fields
}
