// Package language holds the fixed catalog of languages the application
// can explain words in. It is a constant lookup table consumed by the
// gateway prompts and the GUI language selectors.
package language
