// Package gateway is the single boundary to the generative-AI service.
// It exposes the five operations the application needs (definitions, extra
// meanings, image generation, practice stories, chat turns) plus speech
// synthesis, shapes the prompts, and validates the structured responses at
// the boundary before any other component sees them.
package gateway
