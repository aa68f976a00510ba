package testdata

import (
	"bufio"
	"os"
	"strings"
)

// Case represents a single line in a match test file: a template and a path to match against it.
type Case struct {
	Template string
	Path     string
}

// Cases loads all cases from a text file.
// Blank lines and lines starting with # are skipped.
func Cases(fileName string) []Case {
	var cases []Case

	for line := range Lines(fileName) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) != 2 {
			continue
		}

		cases = append(cases, Case{
			Template: parts[0],
			Path:     parts[1],
		})
	}

	return cases
}

// Lines is a utility function to easily read every line in a text file.
func Lines(fileName string) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)
		file, err := os.Open(fileName)

		if err != nil {
			return
		}

		defer file.Close()
		scanner := bufio.NewScanner(file)

		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	return lines
}
