package recaptcha

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// Solve - runs one full pass over the widget: the checkbox first, then the
// audio challenge when the checkbox alone is not enough.
func (s *Solver) Solve() error {
	s.page.Activate()

	widget, err := s.waitElement(s.page, GetSelector("iframe"), s.timeoutStandard)
	if err != nil {
		return fmt.Errorf("%w: recaptcha iframe: %w", ErrElementNotFound, err)
	}

	anchor, err := widget.Frame()
	if err != nil {
		return fmt.Errorf("%w: recaptcha iframe: %w", ErrFrameAccess, err)
	}

	checkbox, err := s.waitElement(anchor, GetSelector("checkbox"), s.timeoutStandard)
	if err != nil {
		return fmt.Errorf("%w: checkbox: %w", ErrElementNotFound, err)
	}
	if err := checkbox.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("click checkbox: %w", err)
	}

	s.log.Debug("checkbox clicked")

	// Інколи достатньо самого чекбокса
	if s.IsSolved() {
		s.log.Info("captcha solved", "mode", "checkbox")
		return nil
	}

	challengeFrame, err := s.waitElement(s.page, GetSelector("challenge_frame"), s.timeoutStandard)
	if err != nil {
		return fmt.Errorf("%w: challenge iframe: %w", ErrElementNotFound, err)
	}

	challenge, err := challengeFrame.Frame()
	if err != nil {
		return fmt.Errorf("%w: challenge iframe: %w", ErrFrameAccess, err)
	}

	audioButton, err := s.waitElement(challenge, GetSelector("audio_challenge"), s.timeoutStandard)
	if err != nil {
		return fmt.Errorf("%w: audio button: %w", ErrElementNotFound, err)
	}
	if err := audioButton.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("click audio button: %w", err)
	}

	// Челендж перезавантажується після перемикання на аудіо
	time.Sleep(time.Millisecond * 300)

	if s.IsDetected() {
		if message := frameText(challenge, GetSelector("error_message")); message != "" {
			return fmt.Errorf("%w: %s", ErrBotDetected, message)
		}
		return ErrBotDetected
	}

	if err := s.passAudioChallenge(challenge); err != nil {
		return fmt.Errorf("%w: %w", ErrAudioChallenge, err)
	}

	s.log.Info("captcha solved", "mode", "audio")
	return nil
}

// passAudioChallenge - the audio round itself: read the clip URL, transcribe
// it and submit the answer. The caller tags every failure from here as
// ErrAudioChallenge.
func (s *Solver) passAudioChallenge(challenge *rod.Page) error {
	// Аудіо елемент присутній в DOM, але не видимий
	audioElement, err := s.waitElement(challenge, GetSelector("audio_source"), s.timeoutStandard)
	if err != nil {
		return fmt.Errorf("%w: audio source: %w", ErrElementNotFound, err)
	}

	src, err := audioElement.Attribute("src")
	if err != nil {
		return fmt.Errorf("read audio source url: %w", err)
	}
	if src == nil || *src == "" {
		return ErrMissingAudioSource
	}

	if s.transcriber == nil {
		return errors.New("no transcriber configured")
	}

	text, err := s.transcriber.Transcribe(s.page.GetContext(), *src)
	if err != nil {
		return err
	}

	s.log.Debug("audio transcribed", "text", text)

	response, err := s.waitElement(challenge, GetSelector("audio_response"), s.timeoutStandard)
	if err != nil {
		return fmt.Errorf("%w: response field: %w", ErrElementNotFound, err)
	}
	if err := response.Input(strings.ToLower(text)); err != nil {
		return fmt.Errorf("fill response: %w", err)
	}

	verify, err := s.waitElement(challenge, GetSelector("verify_button"), s.timeoutStandard)
	if err != nil {
		return fmt.Errorf("%w: verify button: %w", ErrElementNotFound, err)
	}
	if err := verify.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("click verify: %w", err)
	}

	time.Sleep(time.Millisecond * 400)

	if !s.IsSolved() {
		return ErrSolveFailed
	}

	return nil
}
