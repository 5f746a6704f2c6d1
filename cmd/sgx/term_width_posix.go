//go:build !windows

package main

import (
	"os"
	"strconv"

	"golang.org/x/sys/unix"
)

// detectTerminalWidth reports the terminal column count, or 0 when stdout is
// not a terminal and COLUMNS is unset.
func detectTerminalWidth() int {
	if ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ); err == nil && ws != nil && ws.Col > 0 {
		return int(ws.Col)
	}
	return widthFromEnv()
}

func widthFromEnv() int {
	cols, ok := os.LookupEnv("COLUMNS")
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(cols)
	if err != nil || n <= 0 {
		return 0
	}
	return n
}
