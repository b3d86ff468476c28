// Command keirsey administers the Keirsey temperament questionnaire on the
// terminal and reports the resulting temperament code and family.
//
// Usage:
//
//	keirsey                 # interactive questionnaire
//	keirsey score ABBA...   # score a recorded answer string
//	keirsey classify ENFP   # classify a temperament code
package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd(&app{}).Execute(); err != nil {
		os.Exit(1)
	}
}
