// Package recaptcha solves Google reCAPTCHA v2 widgets through their audio
// challenge: rod drives the page, a Transcriber turns the clip into text.
package recaptcha

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-rod/rod"
)

// Element wait timeouts. Standard covers the primary waits, short the
// solved-state polling, detection the bot-detection probe inside the
// main flow.
const (
	TIMEOUT_STANDARD  = 7 * time.Second
	TIMEOUT_SHORT     = time.Second
	TIMEOUT_DETECTION = 50 * time.Millisecond
)

// Transcriber converts the audio clip at url into text.
type Transcriber interface {
	Transcribe(ctx context.Context, url string) (string, error)
}

type Solver struct {
	// Сторінка з віджетом. Належить викликаючому коду
	page *rod.Page

	// Розпізнавач аудіо челенджу
	transcriber Transcriber

	log *slog.Logger

	timeoutStandard  time.Duration
	timeoutShort     time.Duration
	timeoutDetection time.Duration
}

// New - creates a solver over an already opened page. One solve per page
// at a time, concurrent calls on the same page are not supported.
func New(page *rod.Page) *Solver {
	return &Solver{
		page:             page,
		log:              slog.Default(),
		timeoutStandard:  TIMEOUT_STANDARD,
		timeoutShort:     TIMEOUT_SHORT,
		timeoutDetection: TIMEOUT_DETECTION,
	}
}

func (s *Solver) SetTranscriber(transcriber Transcriber) *Solver {
	s.transcriber = transcriber
	return s
}

// SetTimeouts - overrides the element wait timeouts. Mostly useful in tests
// to keep suites fast.
func (s *Solver) SetTimeouts(standard, short, detection time.Duration) *Solver {
	s.timeoutStandard = standard
	s.timeoutShort = short
	s.timeoutDetection = detection
	return s
}

func (s *Solver) SetLogger(log *slog.Logger) *Solver {
	s.log = log
	return s
}
