// Package utils holds the text helpers shared by every note front end:
// right-to-left detection, Farsi digit conversion and plain-text link
// markup. All functions are pure and safe for concurrent use.
package utils
