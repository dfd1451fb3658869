package main

import (
	"os"
	"sync/atomic"

	"golang.org/x/term"
)

var (
	stdinTerminal  int32 = -1 // -1 = unchecked, 0 = no, 1 = yes
	stdoutTerminal int32 = -1
)

func isTerminal(fd int, cached *int32) bool {
	if v := atomic.LoadInt32(cached); v >= 0 {
		return v == 1
	}
	result := term.IsTerminal(fd)
	if result {
		atomic.StoreInt32(cached, 1)
	} else {
		atomic.StoreInt32(cached, 0)
	}
	return result
}

func stdinIsTerminal() bool {
	return isTerminal(int(os.Stdin.Fd()), &stdinTerminal)
}

func stdoutIsTerminal() bool {
	return isTerminal(int(os.Stdout.Fd()), &stdoutTerminal)
}
