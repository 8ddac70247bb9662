package ui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ANSI Color Codes
const (
	Reset   = "\033[0m"
	Cyan    = "\033[36m"
	Magenta = "\033[35m"
	Yellow  = "\033[33m"
	Red     = "\033[31m"
	Green   = "\033[32m"
)

// Out receives all console output.
var Out io.Writer = os.Stdout

// Color is off when stdout is redirected.
var Color = term.IsTerminal(int(os.Stdout.Fd())) && enableVT()

func paint(code string) string {
	if !Color {
		return ""
	}
	return code
}

func Info(msg string) {
	fmt.Fprintf(Out, "%s[INFO] %s%s\n", paint(Cyan), paint(Reset), msg)
}

func Success(msg string) {
	fmt.Fprintf(Out, "%s[SUCCESS] %s%s\n", paint(Green), paint(Reset), msg)
}

func Warning(msg string) {
	fmt.Fprintf(Out, "%s[WARNING] %s%s\n", paint(Yellow), paint(Reset), msg)
}

func Error(msg string) {
	fmt.Fprintf(Out, "%s[ERROR] %s%s\n", paint(Red), paint(Reset), msg)
}

func Header(title string) {
	fmt.Fprintf(Out, "\n%s=== %s ===%s\n", paint(Magenta), title, paint(Reset))
}

// Println writes a plain line.
func Println(msg string) {
	fmt.Fprintln(Out, msg)
}
