// Package wordlist loads newline separated word lists used by tests and
// benchmarks.
package wordlist

import (
	"bufio"
	"os"
	"strings"
)

// LoadTestFile returns the non-empty lines of the file at path. It panics if
// the file cannot be read.
func LoadTestFile(path string) []string {
	file, err := os.Open(path)
	if err != nil {
		panic("couldn't open " + path + ": " + err.Error())
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			words = append(words, line)
		}
	}
	if err := scanner.Err(); err != nil {
		panic("couldn't read " + path + ": " + err.Error())
	}
	return words
}
