package workflow

import (
	"context"
	"strconv"
	"strings"
)

// Prompter is the interactive surface the workflows talk to.
type Prompter interface {
	ReadLine(ctx context.Context, prompt string) (string, error)
	Printf(format string, args ...any)
}

var divider = strings.Repeat("-", 70) //nolint:gochecknoglobals

// promptNonEmpty re-prompts until a non-empty line is entered.
func promptNonEmpty(ctx context.Context, term Prompter, prompt string) (string, error) {
	for {
		line, err := term.ReadLine(ctx, prompt)
		if err != nil {
			return "", err
		}
		if line != "" {
			return line, nil
		}
		term.Printf("Error: Input cannot be empty. Please try again.\n\n")
	}
}

// promptChoice re-prompts until a number within [1, max] is entered.
func promptChoice(ctx context.Context, term Prompter, prompt string, max int) (int, error) {
	for {
		line, err := term.ReadLine(ctx, prompt)
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(line)
		if convErr != nil || n < 1 || n > max {
			term.Printf("Error: Please enter a number between 1 and %d.\n\n", max)
			continue
		}
		return n, nil
	}
}

// promptPositiveInt re-prompts until a positive whole number is entered.
func promptPositiveInt(ctx context.Context, term Prompter, prompt string) (int, error) {
	for {
		line, err := term.ReadLine(ctx, prompt)
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(line)
		if convErr != nil || n <= 0 {
			term.Printf("Error: Please enter a positive whole number.\n\n")
			continue
		}
		return n, nil
	}
}

// promptYesNo accepts y/yes/n/no case-insensitively.
func promptYesNo(ctx context.Context, term Prompter, prompt string) (bool, error) {
	for {
		line, err := term.ReadLine(ctx, prompt)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		term.Printf("Error: Please answer y or n.\n\n")
	}
}
