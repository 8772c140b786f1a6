package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/katalvlaran/tally"
	"github.com/kr/pretty"
	"github.com/sirupsen/logrus"
)

const (
	exitOK    = 0
	exitCount = 1
	exitUsage = 2
)

var errUsage = errors.New("usage error")

// cliConfig holds the global flags.
type cliConfig struct {
	logLevel string
	workers  int
	human    bool
	debug    bool
}

// run parses args, executes one subcommand and returns the exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cfg cliConfig
	fs := flag.NewFlagSet("tally", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	fs.IntVar(&cfg.workers, "workers", runtime.GOMAXPROCS(0), "parallel requests in batch mode")
	fs.BoolVar(&cfg.human, "human", false, "print counts with thousands separators")
	fs.BoolVar(&cfg.debug, "debug", false, "dump decoded requests to stderr")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: tally [flags] anagrams|rectangles|triangles|gp|batch ...")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	log := logrus.New()
	log.SetOutput(stderr)
	level, err := logrus.ParseLevel(cfg.logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "tally: %v\n", err)

		return exitUsage
	}
	log.SetLevel(level)
	if cfg.workers < 1 {
		fmt.Fprintln(stderr, "tally: -workers must be at least 1")

		return exitUsage
	}

	if fs.NArg() == 0 {
		fs.Usage()

		return exitUsage
	}

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	if cmd == "batch" {
		return runBatch(cfg, log, stdin, stdout, stderr)
	}

	req, err := parseRequest(cmd, rest, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "tally: %v\n", err)

		return exitUsage
	}
	if cfg.debug {
		pretty.Fprintf(stderr, "%# v\n", req)
	}

	n, err := tally.Count(req)
	if err != nil {
		log.WithFields(logrus.Fields{"kind": req.Kind}).WithError(err).Error("count failed")

		return exitCount
	}
	fmt.Fprintln(stdout, formatCount(n, cfg.human))

	return exitOK
}

// parseRequest builds a Request from a subcommand and its arguments.
func parseRequest(cmd string, args []string, stderr io.Writer) (tally.Request, error) {
	switch tally.Kind(cmd) {
	case tally.Anagrams:
		if len(args) != 1 {
			return tally.Request{}, fmt.Errorf("anagrams takes one argument: %w", errUsage)
		}

		return tally.Request{Kind: tally.Anagrams, Text: args[0]}, nil

	case tally.Rectangles, tally.Triangles:
		if len(args) != 1 {
			return tally.Request{}, fmt.Errorf("%s takes one JSON argument: %w", cmd, errUsage)
		}
		var raw [][]int64
		if err := json.Unmarshal([]byte(args[0]), &raw); err != nil {
			return tally.Request{}, fmt.Errorf("decoding points: %w", err)
		}
		pts, err := tally.ParsePoints(raw)
		if err != nil {
			return tally.Request{}, err
		}

		return tally.Request{Kind: tally.Kind(cmd), Points: pts}, nil

	case tally.GPTriplets:
		gfs := flag.NewFlagSet("gp", flag.ContinueOnError)
		gfs.SetOutput(stderr)
		ratio := gfs.String("r", "", "common ratio (non-zero integer)")
		if err := gfs.Parse(args); err != nil {
			return tally.Request{}, fmt.Errorf("gp flags: %w", errUsage)
		}
		if gfs.NArg() != 1 || *ratio == "" {
			return tally.Request{}, fmt.Errorf("gp takes -r <ratio> and one JSON argument: %w", errUsage)
		}
		r, err := strconv.ParseInt(*ratio, 10, 64)
		if err != nil {
			return tally.Request{}, fmt.Errorf("ratio %q: %w", *ratio, err)
		}
		var values []int64
		if err := json.Unmarshal([]byte(gfs.Arg(0)), &values); err != nil {
			return tally.Request{}, fmt.Errorf("decoding values: %w", err)
		}

		return tally.Request{Kind: tally.GPTriplets, Values: values, Ratio: r}, nil

	default:
		return tally.Request{}, fmt.Errorf("unknown command %q: %w", cmd, errUsage)
	}
}

// batchLine is one line of batch output.
type batchLine struct {
	Index int        `json:"index"`
	Kind  tally.Kind `json:"kind"`
	Count string     `json:"count,omitempty"`
	Error string     `json:"error,omitempty"`
}

// runBatch decodes a JSON array of requests from stdin, counts them in
// parallel and writes one JSON object per request to stdout.
func runBatch(cfg cliConfig, log *logrus.Logger, stdin io.Reader, stdout, stderr io.Writer) int {
	var reqs []tally.Request
	if err := json.NewDecoder(stdin).Decode(&reqs); err != nil {
		fmt.Fprintf(stderr, "tally: decoding batch: %v\n", err)

		return exitUsage
	}
	if cfg.debug {
		pretty.Fprintf(stderr, "%# v\n", reqs)
	}

	res, err := tally.CountAll(context.Background(), reqs,
		tally.WithWorkers(cfg.workers), tally.WithLogger(log))
	if err != nil {
		log.WithError(err).Error("batch aborted")

		return exitCount
	}

	status := exitOK
	enc := json.NewEncoder(stdout)
	for _, r := range res {
		line := batchLine{Index: r.Index, Kind: r.Kind}
		if r.Err != nil {
			line.Error = r.Err.Error()
			status = exitCount
		} else {
			line.Count = formatCount(r.Count, cfg.human)
		}
		if err := enc.Encode(line); err != nil {
			log.WithError(err).Error("writing result")

			return exitCount
		}
	}
	log.WithField("requests", humanize.Comma(int64(len(reqs)))).Info("batch done")

	return status
}

// formatCount renders n plainly or with thousands separators.
func formatCount(n int64, human bool) string {
	if human {
		return humanize.Comma(n)
	}

	return strconv.FormatInt(n, 10)
}
