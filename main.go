package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pborman/getopt/v2"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"

	"github.com/vleiciu/clawcost/internal/clawmachine"
)

var log = logrus.New()

// Inputs, read from the input directory.
const (
	input1 = "input_1" // sample machines
	input2 = "input_2" // full puzzle input, also solved complexified
	input3 = "input_3"
)

// ----------------------------
// Options
// ----------------------------

type options struct {
	dir      string // directory holding the input files
	verbose  bool   // debug logging of every machine
	progress bool   // progress bar on stderr while evaluating
	help     bool
}

func parseOptions(args []string) (options, *getopt.Set, error) {
	opts := options{dir: "."}
	set := getopt.New()
	set.SetProgram("clawcost")
	set.FlagLong(&opts.dir, "dir", 'd', "directory containing input_1, input_2 and input_3")
	set.FlagLong(&opts.verbose, "verbose", 'v', "log every machine")
	set.FlagLong(&opts.progress, "progress", 'p', "show a progress bar per input")
	set.FlagLong(&opts.help, "help", 'h', "display help")
	if err := set.Getopt(args, nil); err != nil {
		return opts, set, err
	}
	if set.NArgs() > 0 {
		return opts, set, fmt.Errorf("unexpected arguments: %v", set.Args())
	}
	return opts, set, nil
}

// ----------------------------
// Evaluation
// ----------------------------

func load(opts options, name string) ([]clawmachine.Machine, error) {
	ms, err := clawmachine.ParseFile(filepath.Join(opts.dir, name))
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{"input": name, "machines": len(ms)}).Debug("parsed input")
	return ms, nil
}

// evaluate sums the cheapest cost of every winnable machine in ms.
func evaluate(opts options, name string, ms []clawmachine.Machine) clawmachine.Total {
	var w io.Writer = io.Discard
	if opts.progress {
		w = log.Out
	}
	bar := progressbar.NewOptions64(int64(len(ms)),
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(name),
		progressbar.OptionClearOnFinish(),
	)

	var t clawmachine.Total
	for i, m := range ms {
		cost, ok := t.Add(m) // unwinnable machines add nothing
		log.WithFields(logrus.Fields{"input": name, "machine": i, "cost": cost, "winnable": ok}).Debug("evaluated machine")
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	log.WithFields(logrus.Fields{
		"input":    name,
		"cost":     t.Cost,
		"solved":   t.Solved,
		"unsolved": t.Unsolved,
	}).Debug("input total")
	return t
}

// run prints, one per line: the cost of input_1, of input_3, of input_2, and
// of input_2 once complexified.
func run(out io.Writer, opts options) error {
	level := logrus.InfoLevel
	if opts.verbose {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)

	var totals []int64
	for _, name := range []string{input1, input3, input2} {
		ms, err := load(opts, name)
		if err != nil {
			return err
		}
		totals = append(totals, evaluate(opts, name, ms).Cost)

		if name == input2 {
			clawmachine.Complexify(ms) // prizes move in place
			totals = append(totals, evaluate(opts, name+" (complexified)", ms).Cost)
		}
	}

	for _, c := range totals {
		if _, err := fmt.Fprintln(out, c); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	opts, set, err := parseOptions(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		set.PrintUsage(os.Stderr)
		os.Exit(2)
	}
	if opts.help {
		set.PrintUsage(os.Stderr)
		return
	}

	if err := run(os.Stdout, opts); err != nil {
		log.WithError(err).Error("failed to compute claw machine costs")
		os.Exit(1)
	}
}
