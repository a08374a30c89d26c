// Package render turns a parsed template and the player's replies into the
// finished story, and frames that story for the terminal.
package render
