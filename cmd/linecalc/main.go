package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/zephyrtronium/linecalc"
)

func main() {
	log.SetFlags(0)
	var (
		inname      string
		echo, trace bool
	)
	flag.StringVar(&inname, "in", "", "input file, one expression per line (default stdin if no args given)")
	flag.BoolVar(&echo, "echo", false, "print expression trees")
	flag.BoolVar(&trace, "v", false, "trace reduction steps to stderr")
	flag.Parse()

	c := calculator{echo: echo}
	if trace {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		c.log = slog.New(h)
	}

	if flag.NArg() > 0 {
		// Arguments are pieces of one expression, as split by the shell.
		fmt.Println(c.calc(strings.Join(flag.Args(), "")))
		return
	}
	f, prompt, err := infile(inname)
	if err != nil {
		log.Fatal(err)
	}
	err = c.lines(f, os.Stdout, prompt)
	f.Close()
	if err != nil {
		log.Fatal(err)
	}
}

type calculator struct {
	// log receives traces, or is nil.
	log  *slog.Logger
	echo bool
}

// calc evaluates one expression and formats the output line.
func (c *calculator) calc(src string) string {
	a, err := linecalc.Parse(src)
	if err != nil {
		if c.log != nil {
			c.log.Debug("parse failed", slog.String("src", src), slog.Any("err", err))
		}
		return linecalc.Sentinel
	}
	tree := a.String()
	ctx := linecalc.NewContext(linecalc.Trace(c.log))
	out := linecalc.Sentinel
	if r := ctx.Eval(a); r != nil {
		out = linecalc.Format(r)
	}
	if c.echo {
		out = tree + " : " + out
	}
	return out
}

// lines evaluates each line of in as an expression. Blank lines are skipped.
func (c *calculator) lines(in io.Reader, out io.Writer, prompt bool) error {
	sc := bufio.NewScanner(in)
	for {
		if prompt {
			fmt.Fprint(out, "> ")
		}
		if !sc.Scan() {
			break
		}
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		fmt.Fprintln(out, c.calc(sc.Text()))
	}
	if prompt {
		fmt.Fprintln(out)
	}
	return sc.Err()
}

// infile opens the input. The second result is whether the input is an
// interactive terminal. Closing the result does not close stdin.
func infile(inname string) (io.ReadCloser, bool, error) {
	if inname != "" && inname != "-" {
		f, err := os.Open(inname)
		if err != nil {
			return nil, false, err
		}
		return f, false, nil
	}
	return io.NopCloser(os.Stdin), term.IsTerminal(int(os.Stdin.Fd())), nil
}
