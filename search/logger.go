package search

import (
	"fmt"
	"os"
	"time"
)

// LogInfo is one telemetry record for a completed iteration or a book move.
// Grounded on blunext-chess/engine/logger.go's LogInfo, retargeted from
// chess FEN/UCI fields to the driver's own terms.
type LogInfo struct {
	Timestamp time.Time
	Board     string // board.SearchBoard.String() snapshot
	Move      string
	Source    string // "Book" or "Search"
	Score     int
	Depth     int
	Nodes     int64
	Duration  time.Duration
}

// Logger handles threaded logging to a file: a buffered channel drained by
// one background goroutine, so a slow disk never stalls the search loop.
// Grounded on blunext-chess/engine/logger.go.
type Logger struct {
	file  *os.File
	queue chan LogInfo
	done  chan bool
}

// NewLogger opens filename for append and starts the background writer.
func NewLogger(filename string) (*Logger, error) {
	file, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	l := &Logger{
		file:  file,
		queue: make(chan LogInfo, 100),
		done:  make(chan bool),
	}
	go l.writer()
	return l, nil
}

// Log enqueues a record. Non-blocking: if the queue is full the record is
// dropped rather than stalling the search loop.
func (l *Logger) Log(info LogInfo) {
	if l == nil {
		return
	}
	select {
	case l.queue <- info:
	default:
		fmt.Fprintln(os.Stderr, "search: log queue full, dropping entry")
	}
}

// Close drains the queue and closes the file.
func (l *Logger) Close() {
	if l == nil {
		return
	}
	close(l.queue)
	<-l.done
	l.file.Close()
}

func (l *Logger) writer() {
	for info := range l.queue {
		sourcePrefix := "S"
		if info.Source == "Book" {
			sourcePrefix = "B"
		}
		line := fmt.Sprintf("%s | %s | D: %-3d | Sc: %-6d | Ns: %-8d | T: %-8s | %s\n",
			info.Timestamp.Format("01-02 15:04:05"),
			sourcePrefix,
			info.Depth,
			info.Score,
			info.Nodes,
			info.Duration.Round(10*time.Millisecond),
			info.Move,
		)
		l.file.WriteString(line)
	}
	l.done <- true
}
