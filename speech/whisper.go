package speech

import (
	"context"
	"os"
	"strings"

	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

const DEFAULT_MODEL = string(openai.AudioModelWhisper1)

// recognize - sends the WAV to the speech API and returns the raw transcript
func (t *Transcriber) recognize(ctx context.Context, wavPath string) (string, error) {
	file, err := os.Open(wavPath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	params := openai.AudioTranscriptionNewParams{
		File:  file,
		Model: openai.AudioModel(t.model),
	}
	if t.language != "" {
		params.Language = openai.String(t.language)
	}

	client := t.api()
	transcription, err := client.Audio.Transcriptions.New(ctx, params)
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(transcription.Text)
	if text == "" {
		return "", ErrEmptyTranscript
	}

	return text, nil
}

// api - assembles the API client with the current overrides. Cheap enough
// to rebuild per call.
func (t *Transcriber) api() openai.Client {
	options := []option.RequestOption{option.WithAPIKey(t.apiKey)}

	if t.baseURL != "" {
		options = append(options, option.WithBaseURL(t.baseURL))
	}
	if t.httpClient != nil {
		options = append(options, option.WithHTTPClient(t.httpClient))
	}

	return openai.NewClient(options...)
}
