package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// logger gates command output on the --verbose and --debug flags. Without
// flags only results and errors are shown.
type logger struct {
	verbose bool
	debug   bool
}

func (l logger) Infof(msg string, args ...any) {
	if l.verbose || l.debug {
		fmt.Fprintf(os.Stdout, color.GreenString("[info] ")+msg+"\n", args...)
	}
}

func (l logger) Debugf(msg string, args ...any) {
	if l.debug {
		fmt.Fprintf(os.Stdout, color.CyanString("[debug] ")+msg+"\n", args...)
	}
}

func (l logger) Errorf(msg string, args ...any) error {
	err := fmt.Errorf(msg, args...)
	if l.debug {
		fmt.Fprintf(os.Stderr, color.RedString("[error] ")+"%v\n", err)
	}

	return err
}
