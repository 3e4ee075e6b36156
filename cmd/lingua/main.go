package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/ChanceNCounter/lingua-franca/format"
	"github.com/ChanceNCounter/lingua-franca/internal/cli"
	"github.com/ChanceNCounter/lingua-franca/parse"

	_ "github.com/ChanceNCounter/lingua-franca/lang/de"
	_ "github.com/ChanceNCounter/lingua-franca/lang/en"
)

// main is the entrypoint for the lingua tool.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the tool's logic for easier testing and error handling.
func run(outW io.Writer, args []string) error {
	request, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	configureLogger(request)

	result, err := execute(context.Background(), request)
	if err != nil {
		return err
	}
	fmt.Fprintln(outW, result)
	return nil
}

func configureLogger(request *cli.Request) {
	var level slog.Level
	switch request.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if request.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// execute dispatches the request to the matching library operation and
// renders its result as one line of output.
func execute(ctx context.Context, request *cli.Request) (string, error) {
	switch request.Operation {
	case "pronounce":
		n, err := parseNumber(request.Input)
		if err != nil {
			return "", err
		}
		opts := format.DefaultPronounceOptions()
		opts.Lang = request.Lang
		return format.PronounceNumber(ctx, n, opts)

	case "nice-number":
		n, err := parseNumber(request.Input)
		if err != nil {
			return "", err
		}
		opts := format.DefaultNiceNumberOptions()
		opts.Lang = request.Lang
		return format.NiceNumber(ctx, n, opts)

	case "nice-time":
		t, err := parseClock(request.Input)
		if err != nil {
			return "", err
		}
		opts := format.DefaultNiceTimeOptions()
		opts.Lang = request.Lang
		return format.NiceTime(ctx, t, opts)

	case "nice-ordinal":
		n, err := strconv.Atoi(request.Input)
		if err != nil {
			return "", &cli.ExitError{Code: 2, Message: fmt.Sprintf("nice-ordinal needs an integer, got %q", request.Input)}
		}
		opts := format.DefaultOrdinalOptions()
		opts.Lang = request.Lang
		return format.NiceOrdinal(ctx, n, opts)

	case "nice-duration":
		secs, err := parseNumber(request.Input)
		if err != nil {
			return "", err
		}
		opts := format.DefaultNiceDurationOptions()
		opts.Lang = request.Lang
		return format.NiceDuration(ctx, time.Duration(secs*float64(time.Second)), opts)

	case "part-of-day":
		t, err := parseClock(request.Input)
		if err != nil {
			return "", err
		}
		return format.NicePartOfDay(ctx, t, &format.PartOfDayOptions{Lang: request.Lang})

	case "extract-number":
		n, ok, err := parse.ExtractNumber(ctx, request.Input, &parse.ExtractNumberOptions{Lang: request.Lang})
		if err != nil {
			return "", err
		}
		if !ok {
			return "", &cli.ExitError{Code: 1, Message: "no number found"}
		}
		return formatFloat(n), nil

	case "extract-numbers":
		ns, err := parse.ExtractNumbers(ctx, request.Input, &parse.ExtractNumberOptions{Lang: request.Lang})
		if err != nil {
			return "", err
		}
		if len(ns) == 0 {
			return "", &cli.ExitError{Code: 1, Message: "no numbers found"}
		}
		out := ""
		for i, n := range ns {
			if i > 0 {
				out += " "
			}
			out += formatFloat(n)
		}
		return out, nil

	case "extract-duration":
		extracted, ok, err := parse.ExtractDuration(ctx, request.Input, &parse.DurationOptions{Lang: request.Lang})
		if err != nil {
			return "", err
		}
		if !ok {
			return "", &cli.ExitError{Code: 1, Message: "no duration found"}
		}
		return fmt.Sprintf("%s (remainder: %q)", extracted.Duration, extracted.Remainder), nil

	case "extract-datetime":
		extracted, ok, err := parse.ExtractDateTime(ctx, request.Input, &parse.DateTimeOptions{Lang: request.Lang})
		if err != nil {
			return "", err
		}
		if !ok {
			return "", &cli.ExitError{Code: 1, Message: "no date or time found"}
		}
		return fmt.Sprintf("%s (remainder: %q)", extracted.When.Format(time.RFC3339), extracted.Remainder), nil

	case "normalize":
		return parse.Normalize(ctx, request.Input, &parse.NormalizeOptions{Lang: request.Lang})
	}

	return "", &cli.ExitError{Code: 2, Message: fmt.Sprintf("unknown operation %q", request.Operation)}
}

func parseNumber(input string) (float64, error) {
	n, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return 0, &cli.ExitError{Code: 2, Message: fmt.Sprintf("expected a number, got %q", input)}
	}
	return n, nil
}

// parseClock accepts "15:04" or "15:04:05" wall-clock input.
func parseClock(input string) (time.Time, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, input); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &cli.ExitError{Code: 2, Message: fmt.Sprintf("expected a clock time like 13:45, got %q", input)}
}

func formatFloat(n float64) string {
	return strconv.FormatFloat(n, 'g', -1, 64)
}
