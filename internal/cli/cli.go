package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Request describes one operation the tool should run.
type Request struct {
	Operation string
	Input     string
	Lang      string
	LogFormat string
	LogLevel  string
}

// Operations lists the operation names the tool accepts, in help order.
var Operations = []string{
	"pronounce",
	"nice-number",
	"nice-time",
	"nice-ordinal",
	"nice-duration",
	"part-of-day",
	"extract-number",
	"extract-numbers",
	"extract-duration",
	"extract-datetime",
	"normalize",
}

// Parse processes command-line arguments. It returns a populated Request,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*Request, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("lingua", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprintf(output, `
lingua - natural language number and time handling for spoken interfaces.

Usage:
  lingua [options] OPERATION INPUT

Operations:
  %s

Options:
`, strings.Join(Operations, ", "))
		flagSet.PrintDefaults()
	}

	langFlag := flagSet.String("lang", "", "Locale to use, e.g. 'en-US' or 'de'. Empty uses the active default.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() == 0 {
		slog.Debug("No operation provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	op := strings.ToLower(flagSet.Arg(0))
	known := false
	for _, name := range Operations {
		if op == name {
			known = true
			break
		}
	}
	if !known {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unknown operation %q: expected one of %s", op, strings.Join(Operations, ", "))}
	}

	if flagSet.NArg() < 2 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("operation %q needs an input argument", op)}
	}
	input := strings.Join(flagSet.Args()[1:], " ")

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	request := &Request{
		Operation: op,
		Input:     input,
		Lang:      *langFlag,
		LogFormat: logFormat,
		LogLevel:  logLevel,
	}
	slog.Debug("CLI parser finished successfully.", "operation", op, "lang", request.Lang)
	return request, false, nil
}
