package dbg

import (
	"log"
	"os"
)

// Debug prints through the standard logger when DEBUG is set.
func Debug(output ...string) {
	if os.Getenv("DEBUG") != "" {
		log.Print(output)
	}
}

func Debugf(format string, v ...any) {
	if os.Getenv("DEBUG") != "" {
		log.Printf(format, v...)
	}
}
