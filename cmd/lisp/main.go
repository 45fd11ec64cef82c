package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/peterh/liner"

	"github.com/xiam/lisp"
	"github.com/xiam/lisp/internal/config"
	"github.com/xiam/lisp/internal/repl"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("lisp", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: lisp [flags] [file.lisp]\n")
		fs.PrintDefaults()
	}

	configFile := fs.String("config", "", "path to a YAML config file (default ~/"+config.DefaultFile+")")
	trace := fs.Bool("trace", false, "log definitions, calls and loads to stderr")
	maxDepth := fs.Int("max-depth", -1, "maximum nesting of calls and loads, 0 disables the limit")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	conf, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "trace":
			conf.Trace = *trace
		case "max-depth":
			conf.MaxDepth = *maxDepth
		}
	})
	if conf.MaxDepth < 0 {
		fmt.Fprintf(stderr, "invalid -max-depth %d\n", conf.MaxDepth)
		return 2
	}

	opts := []lisp.Option{
		lisp.WithOutput(stdout),
		lisp.WithMaxDepth(conf.MaxDepth),
	}
	if conf.Trace {
		opts = append(opts, lisp.WithLogger(log.New(stderr, "lisp: ", 0)))
	}

	session := repl.NewSession(lisp.New(opts...), stdout, conf.Prompt)
	if err := session.Preload(conf.Preload); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if fs.NArg() > 0 {
		if err := session.Exec(fs.Arg(0)); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	return interactive(session, conf, stderr)
}

// loadConfig reads path, or the default file in the home directory when path
// is empty. A missing default file is not an error.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return config.Default(), nil
	}

	conf, err := config.Load(filepath.Join(home, config.DefaultFile))
	if errors.Is(err, os.ErrNotExist) {
		return config.Default(), nil
	}
	return conf, err
}

func interactive(session *repl.Session, conf *config.Config, stderr io.Writer) int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if conf.HistoryFile != "" {
		if f, err := os.Open(conf.HistoryFile); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(conf.HistoryFile); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	if err := session.Run(ln); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}
