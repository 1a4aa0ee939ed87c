package utils

import "strings"

// TrimOrEmpty normalizes user input.
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// FullName joins first and last name the way the chart displays them.
func FullName(first, last string) string {
	return NormalizeSpace(first + " " + last)
}
