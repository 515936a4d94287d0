package speech

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
)

// Формат, який найкраще сприймають сервіси розпізнавання
const (
	WAV_SAMPLE_RATE = 16000
	WAV_BIT_DEPTH   = 16
)

// convertToWAV - decodes an MP3 clip and rewrites it as mono 16 kHz 16 bit
// PCM WAV.
func convertToWAV(mp3Path, wavPath string) error {
	source, err := os.Open(mp3Path)
	if err != nil {
		return err
	}
	defer source.Close()

	decoder, err := mp3.NewDecoder(source)
	if err != nil {
		return err
	}

	var raw bytes.Buffer
	if _, err := io.Copy(&raw, decoder); err != nil {
		return err
	}

	samples := make([]int16, raw.Len()/2)
	if err := binary.Read(bytes.NewReader(raw.Bytes()), binary.LittleEndian, &samples); err != nil {
		return err
	}
	if len(samples) == 0 {
		return errors.New("empty audio stream")
	}

	pcm := int16SliceToFloat32(samples)
	pcm = downmixInterleaved(pcm, 2) // mp3 decoder outputs stereo

	if rate := decoder.SampleRate(); rate != WAV_SAMPLE_RATE {
		pcm = resampleLinear(pcm, rate, WAV_SAMPLE_RATE)
	}

	return writeWAV(wavPath, pcm)
}

func writeWAV(path string, pcm []float32) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	data := make([]int, len(pcm))
	for i, sample := range pcm {
		data[i] = int(clamp(float64(sample)*32767, -32768, 32767))
	}

	encoder := wav.NewEncoder(out, WAV_SAMPLE_RATE, WAV_BIT_DEPTH, 1, 1)
	buffer := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  WAV_SAMPLE_RATE,
		},
		Data:           data,
		SourceBitDepth: WAV_BIT_DEPTH,
	}

	if err := encoder.Write(buffer); err != nil {
		return err
	}

	return encoder.Close()
}

// helpers

func int16SliceToFloat32(data []int16) []float32 {
	out := make([]float32, len(data))
	const scale = 1.0 / 32768.0
	for i, v := range data {
		out[i] = float32(float64(v) * scale)
	}
	return out
}

func downmixInterleaved(in []float32, channels int) []float32 {
	if channels <= 1 {
		return in
	}
	frames := len(in) / channels
	out := make([]float32, frames)
	for i := 0; i < frames; i++ {
		sum := 0.0
		base := i * channels
		for c := 0; c < channels; c++ {
			sum += float64(in[base+c])
		}
		out[i] = float32(sum / float64(channels))
	}
	return out
}

func resampleLinear(in []float32, inRate, outRate int) []float32 {
	if inRate == outRate || len(in) == 0 {
		return in
	}
	ratio := float64(outRate) / float64(inRate)
	total := int(math.Ceil(float64(len(in)) * ratio))
	out := make([]float32, total)
	for i := 0; i < total; i++ {
		src := float64(i) / ratio
		i0 := int(math.Floor(src))
		i1 := i0 + 1
		if i0 >= len(in) {
			out[i] = in[len(in)-1]
			continue
		}
		if i1 >= len(in) {
			out[i] = in[i0]
			continue
		}
		a := float32(src - float64(i0))
		out[i] = in[i0]*(1-a) + in[i1]*a
	}
	return out
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
