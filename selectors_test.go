package recaptcha

import "testing"

func TestGetSelectorKnownRoles(t *testing.T) {
	roles := []string{
		"checkbox",
		"audio_challenge",
		"audio_response",
		"verify_button",
		"token",
		"iframe",
		"challenge_frame",
		"checkmark",
		"error_message",
		"audio_source",
	}

	for _, role := range roles {
		if GetSelector(role) == "" {
			t.Errorf("role %q has no selector", role)
		}
	}
}

func TestGetSelectorUnknownRole(t *testing.T) {
	for _, role := range []string{"", "nope", "audio-source", "IFRAME"} {
		if got := GetSelector(role); got != "" {
			t.Errorf("GetSelector(%q) = %q, want empty string", role, got)
		}
	}
}
