package calc

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"
)

// Run reads input line by line, evaluating each one in the session.
// Results are printed to stdout as "= <result>", errors to stderr, and a failing
// line never stops the loop. prompt, if not empty, is written before each line.
//
// It returns the status of the last evaluated line (0 on success, 1 on failure)
// and the read error, if any.
func Run(s *Session, input io.Reader, stdout, stderr io.Writer, prompt string) (int, error) {
	scanner := bufio.NewScanner(input)
	// Lines are only bounded by memory.
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)

	exitCode := 0
	for {
		if prompt != "" {
			fmt.Fprint(stdout, prompt)
		}
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		// Nothing to evaluate, don't report an error for it.
		if strings.TrimSpace(line) == "" {
			continue
		}

		result, err := s.Eval(line)
		if err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
			exitCode = 1
			continue
		}
		exitCode = 0
		fmt.Fprintf(stdout, "= %s\n", FormatResult(result))
	}
	if prompt != "" {
		// Leave the terminal on a fresh line after ^D.
		fmt.Fprintln(stdout)
	}

	if err := scanner.Err(); err != nil {
		return exitCode, fmt.Errorf("read input: %w", err)
	}
	return exitCode, nil
}
