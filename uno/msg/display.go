package msg

import (
	"fmt"
	"strings"
)

// Sprintfln formats a single message line.
func Sprintfln(format string, args ...interface{}) string {
	return Sprintln(fmt.Sprintf(format, args...))
}

// Sprintlns joins lines into one message ending in a newline.
func Sprintlns(lines []string) string {
	return Sprintln(strings.Join(lines, "\n"))
}

func Sprintln(args ...interface{}) string {
	return fmt.Sprintln(args...)
}
