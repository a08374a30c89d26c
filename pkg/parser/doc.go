// Package parser extracts fill-in labels from raw mad lib templates.
//
// A template is plain text where every word the player must supply is wrapped
// in square brackets, for example "The [adjective] fox". Parse returns the
// bracketed labels in the order they appear so the prompt and render stages
// can line replies up with placeholder occurrences.
package parser
