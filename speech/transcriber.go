// Package speech turns short audio clips into text: download the clip,
// convert it to a recognizer-friendly WAV and hand it to a remote
// speech-recognition API.
package speech

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"path/filepath"

	"gopkg.in/h2non/gentleman.v2"
)

// Remote returned no usable text for the clip
var ErrEmptyTranscript = errors.New("no speech recognized in audio")

type Transcriber struct {
	// Ключ API сервісу розпізнавання
	apiKey string

	model    string
	language string

	// Директорія для тимчасових файлів
	tempDir string

	// Перевизначення для тестів та сумісних API
	baseURL    string
	httpClient *http.Client

	// Клієнт для завантаження аудіо
	client *gentleman.Client

	log *slog.Logger
}

func New(apiKey string) *Transcriber {
	return &Transcriber{
		apiKey:  apiKey,
		model:   DEFAULT_MODEL,
		tempDir: os.TempDir(),
		log:     slog.Default(),
	}
}

func (t *Transcriber) SetModel(model string) *Transcriber {
	t.model = model
	return t
}

// SetLanguage - hints the expected clip language, e.g. "en".
func (t *Transcriber) SetLanguage(language string) *Transcriber {
	t.language = language
	return t
}

func (t *Transcriber) SetTempDir(dir string) *Transcriber {
	t.tempDir = dir
	return t
}

// SetBaseURL - points the recognition calls at a different endpoint.
func (t *Transcriber) SetBaseURL(url string) *Transcriber {
	t.baseURL = url
	return t
}

func (t *Transcriber) SetHTTPClient(client *http.Client) *Transcriber {
	t.httpClient = client
	return t
}

func (t *Transcriber) SetLogger(log *slog.Logger) *Transcriber {
	t.log = log
	return t
}

// Transcribe - fetches the clip, converts it and recognizes the speech.
// Both temp files are removed on every path, removal errors are swallowed.
//
// Temp names are random numeric and not collision proof: run one
// transcription at a time per temp dir.
func (t *Transcriber) Transcribe(ctx context.Context, audioURL string) (string, error) {
	mp3Path := t.tempPath("mp3")
	wavPath := t.tempPath("wav")
	defer removeIfExists(mp3Path)
	defer removeIfExists(wavPath)

	if err := t.downloadAudio(audioURL, mp3Path); err != nil {
		return "", fmt.Errorf("download audio: %w", err)
	}

	if err := convertToWAV(mp3Path, wavPath); err != nil {
		return "", fmt.Errorf("convert audio: %w", err)
	}

	text, err := t.recognize(ctx, wavPath)
	if err != nil {
		return "", fmt.Errorf("recognize audio: %w", err)
	}

	t.log.Debug("audio recognized", "text", text)
	return text, nil
}

func (t *Transcriber) tempPath(extension string) string {
	return filepath.Join(t.tempDir, fmt.Sprintf("%d.%s", rand.Intn(999)+1, extension))
}

func removeIfExists(path string) {
	if _, err := os.Stat(path); err == nil {
		os.Remove(path)
	}
}
