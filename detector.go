package recaptcha

import (
	"time"

	"github.com/go-rod/rod"
)

// IsSolved - checks the solved state of the widget. Best effort: any lookup
// failure means false, never an error.
func (s *Solver) IsSolved() bool {
	widget, err := s.waitElement(s.page, GetSelector("iframe"), s.timeoutShort)
	if err != nil {
		return false
	}

	anchor, err := widget.Frame()
	if err != nil {
		return false
	}

	checkmark, err := s.waitElement(anchor, GetSelector("checkmark"), s.timeoutShort)
	if err != nil {
		return false
	}

	// Галочка малюється через атрибут style
	style, err := checkmark.Attribute("style")
	return err == nil && style != nil && *style != ""
}

// IsDetected - checks whether the widget has flagged us as a bot. Uses the
// very short timeout: this runs in the middle of the main flow and must not
// stall it.
func (s *Solver) IsDetected() bool {
	challengeFrame, err := s.waitElement(s.page, GetSelector("challenge_frame"), s.timeoutDetection)
	if err != nil {
		return false
	}

	challenge, err := challengeFrame.Frame()
	if err != nil {
		return false
	}

	has, message, err := challenge.Has(GetSelector("error_message"))
	if err != nil || !has {
		return false
	}

	visible, err := message.Visible()
	return err == nil && visible
}

// GetToken - reads the response token from the challenge frame. Empty string
// when the token is not available.
func (s *Solver) GetToken() string {
	challengeFrame, err := s.waitElement(s.page, GetSelector("challenge_frame"), s.timeoutStandard)
	if err != nil {
		return ""
	}

	challenge, err := challengeFrame.Frame()
	if err != nil {
		return ""
	}

	token, err := s.waitElement(challenge, GetSelector("token"), s.timeoutStandard)
	if err != nil {
		return ""
	}

	value, err := token.Attribute("value")
	if err != nil || value == nil {
		return ""
	}
	return *value
}

// waitElement - bounded wait for an element to be attached. The timeout is
// cancelled on the returned element so it does not leak into later calls on
// frames resolved from it.
func (s *Solver) waitElement(page *rod.Page, selector string, timeout time.Duration) (*rod.Element, error) {
	element, err := page.Timeout(timeout).Element(selector)
	if err != nil {
		return nil, err
	}
	return element.CancelTimeout(), nil
}
