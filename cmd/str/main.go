package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/strkit/str"
)

func main() {
	var (
		script      = flag.String("c", "", "Commands to run, separated by ';'")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		debug       = flag.Bool("debug", false, "Log storage transitions")
	)
	flag.Parse()

	if *debug {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		str.SetLogger(logger)
	}

	switch {
	case *script != "":
		if err := runScript(*script); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case *interactive || term.IsTerminal(int(os.Stdin.Fd())):
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	default:
		// Piped input: one command per line.
		if err := runStream(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

func runScript(script string) error {
	s := newSession()
	for _, line := range strings.Split(script, ";") {
		out, err := s.eval(line)
		if err != nil {
			return fmt.Errorf("%s: %w", strings.TrimSpace(line), err)
		}
		if out != "" {
			fmt.Println(out)
		}
	}
	return nil
}

func runStream() error {
	s := newSession()
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		out, err := s.eval(scanner.Text())
		if err != nil {
			return fmt.Errorf("%s: %w", strings.TrimSpace(scanner.Text()), err)
		}
		if out != "" {
			fmt.Println(out)
		}
	}
	return scanner.Err()
}
