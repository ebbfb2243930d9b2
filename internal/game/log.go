package game

// logMax bounds the saga log. Older entries fall off the far end.
const logMax = 120

// Log is the scrolling saga log shown beside the map.
type Log struct {
	lines []string
}

// NewLog creates an empty log.
func NewLog() *Log {
	return &Log{}
}

// Push appends a message, discarding the oldest entries past the cap.
func (l *Log) Push(msg string) {
	l.lines = append(l.lines, msg)
	if len(l.lines) > logMax {
		l.lines = l.lines[len(l.lines)-logMax:]
	}
}

// Recent returns up to n messages, newest first.
func (l *Log) Recent(n int) []string {
	if n > len(l.lines) {
		n = len(l.lines)
	}
	out := make([]string, 0, n)
	for i := len(l.lines) - 1; i >= len(l.lines)-n; i-- {
		out = append(out, l.lines[i])
	}
	return out
}

// Len returns the number of retained messages.
func (l *Log) Len() int {
	return len(l.lines)
}
