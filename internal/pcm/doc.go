// Package pcm converts the base64-encoded linear PCM payloads returned by
// the speech service into playable sample data. The service returns mono
// 16-bit signed little-endian samples at 24 kHz.
package pcm
