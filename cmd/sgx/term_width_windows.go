//go:build windows

package main

import (
	"os"
	"strconv"
)

// detectTerminalWidth reads COLUMNS; there is no ioctl path on Windows.
func detectTerminalWidth() int {
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
