// Package library stores mad lib templates as plain text files in a single
// directory. Each regular file is one template and its file name is the
// template identifier shown to the player.
package library
