package pcm

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
)

// SampleRate is the sample rate of all PCM payloads the speech service returns.
const SampleRate = 24000

// DecodeBase64 decodes a base64 payload of 16-bit signed little-endian mono
// PCM into normalized float32 samples in [-1, 1].
func DecodeBase64(payload string) ([]float32, error) {
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode audio payload: %w", err)
	}
	return Samples(raw), nil
}

// Samples converts raw 16-bit signed little-endian PCM bytes into normalized
// float32 samples. A trailing odd byte is ignored.
func Samples(raw []byte) []float32 {
	n := len(raw) / 2
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		s := int16(binary.LittleEndian.Uint16(raw[2*i:]))
		out[i] = float32(s) / 32768.0
	}
	return out
}
