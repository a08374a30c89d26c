// Package prompt collects one reply per template label from an interactive
// input source.
//
// Input is abstracted behind Driver so the collector and the game session can
// be exercised with scripted input in tests. Two drivers ship with the
// package: LineDriver, which reads newline-terminated lines from any
// io.Reader, and SurveyDriver, which renders prompts with survey on a real
// terminal.
package prompt
