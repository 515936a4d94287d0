package recaptcha

import "errors"

// Terminal errors of a single Solve call. Nothing is retried internally,
// the caller decides whether to start a fresh attempt. State checks like
// IsSolved never return errors - they collapse any failure into a
// negative result.
var (
	// Required element did not appear within its timeout
	ErrElementNotFound = errors.New("element not found")

	// Frame element exists but its content is not reachable
	ErrFrameAccess = errors.New("cannot access frame content")

	// Audio element is present but carries no source URL
	ErrMissingAudioSource = errors.New("audio source URL not found")

	// Widget blocked us as automated traffic. Not solvable on this page
	ErrBotDetected = errors.New("captcha detected bot behavior")

	// Something in the audio round failed, the cause is wrapped
	ErrAudioChallenge = errors.New("audio challenge failed")

	// Verification finished but the captcha stayed unsolved
	ErrSolveFailed = errors.New("failed to solve the captcha")
)
