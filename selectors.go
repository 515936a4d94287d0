package recaptcha

// Селектори елементів віджета reCAPTCHA
var selectors = map[string]string{
	"checkbox":        ".rc-anchor-content",
	"audio_challenge": "#recaptcha-audio-button",
	"audio_response":  "#audio-response",
	"verify_button":   "#recaptcha-verify-button",
	"token":           "#recaptcha-token",
	"iframe":          "iframe[title='reCAPTCHA']",
	"challenge_frame": "iframe[title*='recaptcha challenge']",
	"checkmark":       ".recaptcha-checkbox-checkmark",
	"error_message":   ".rc-doscaptcha-header-text",
	"audio_source":    "#audio-source",
}

// GetSelector - returns the CSS selector for a logical element role.
// Unknown roles resolve to an empty string.
func GetSelector(role string) string {
	return selectors[role]
}
