package simpleio

import "strings"

// splitLines splits on "\n", dropping one "\r" right before it. A final
// terminator does not start another line.
func splitLines(s string) []string {
	var lines []string
	for len(s) > 0 {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			lines = append(lines, s)
			break
		}
		line := s[:i]
		line = strings.TrimSuffix(line, "\r")
		lines = append(lines, line)
		s = s[i+1:]
	}
	return lines
}
