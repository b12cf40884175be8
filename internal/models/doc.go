// Package models provides functionality for listing the speech voices and
// models available to the application. It helps users discover which Gemini
// prebuilt voices exist and which OpenAI TTS models their API key can use.
package models
