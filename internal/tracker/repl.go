package tracker

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"
)

const replBanner = `CryptoTrack interactive mode. Type "help" for commands, "quit" to leave.`

const replHelp = `Commands:
  top [n]          list the n largest assets (default 10)
  price <asset>    show the current quote for one asset
  search <query>   find assets by name or symbol
  watch <asset>    poll one asset until Ctrl-C
  news             show latest headlines
  help             show this help
  quit             exit`

const replPrompt = "crypto> "

// REPL drives the interactive shell over a Tracker.
type REPL struct {
	tracker  *Tracker
	news     *News
	interval time.Duration
	newsLim  int

	in  io.Reader
	out io.Writer

	// watchCtx yields the context a watch command runs under. The default
	// binds to SIGINT so Ctrl-C stops the watch but not the shell.
	watchCtx func(parent context.Context) (context.Context, context.CancelFunc)
}

// NewREPL builds an interactive shell on stdin/stdout.
func NewREPL(t *Tracker, n *News, interval time.Duration, newsLimit int) *REPL {
	r := NewREPLWithIO(t, n, interval, newsLimit, os.Stdin, os.Stdout)
	r.watchCtx = func(parent context.Context) (context.Context, context.CancelFunc) {
		return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	}
	return r
}

// NewREPLWithIO builds a shell reading commands from in and writing to out.
func NewREPLWithIO(t *Tracker, n *News, interval time.Duration, newsLimit int, in io.Reader, out io.Writer) *REPL {
	return &REPL{
		tracker:  t,
		news:     n,
		interval: interval,
		newsLim:  newsLimit,
		in:       in,
		out:      out,
		watchCtx: func(parent context.Context) (context.Context, context.CancelFunc) {
			return context.WithCancel(parent)
		},
	}
}

// Run reads commands until EOF or quit.
func (r *REPL) Run(ctx context.Context) error {
	fmt.Fprintln(r.out, replBanner)
	scanner := bufio.NewScanner(r.in)
	for {
		fmt.Fprint(r.out, replPrompt)
		if !scanner.Scan() {
			fmt.Fprintln(r.out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if quit := r.dispatch(ctx, line); quit {
			return nil
		}
	}
}

// dispatch runs one command line and reports whether the shell should exit.
func (r *REPL) dispatch(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "quit", "exit", "q":
		return true
	case "help", "?":
		fmt.Fprintln(r.out, replHelp)
	case "top":
		r.cmdTop(ctx, args)
	case "price":
		r.cmdPrice(ctx, args)
	case "search":
		r.cmdSearch(ctx, args)
	case "watch":
		r.cmdWatch(ctx, args)
	case "news":
		r.cmdNews(ctx)
	default:
		fmt.Fprintf(r.out, "Unknown command %q. Type \"help\" for commands.\n", cmd)
	}
	return false
}

func (r *REPL) cmdTop(ctx context.Context, args []string) {
	n := 10
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v <= 0 {
			fmt.Fprintf(r.out, "Invalid count %q, expected a positive number.\n", args[0])
			return
		}
		n = v
	}
	quotes, err := r.tracker.TopAssets(ctx, n)
	if err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
		return
	}
	RenderTable(r.out, quotes)
}

func (r *REPL) cmdPrice(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(r.out, "Usage: price <asset>")
		return
	}
	quote, err := r.tracker.Price(ctx, strings.Join(args, " "))
	if err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
		return
	}
	RenderQuote(r.out, quote)
}

func (r *REPL) cmdSearch(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(r.out, "Usage: search <query>")
		return
	}
	query := strings.Join(args, " ")
	results, err := r.tracker.Search(ctx, query)
	if err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
		return
	}
	RenderSearchResults(r.out, query, results)
}

func (r *REPL) cmdWatch(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(r.out, "Usage: watch <asset>")
		return
	}
	wctx, cancel := r.watchCtx(ctx)
	defer cancel()
	fmt.Fprintf(r.out, "Watching %s every %s. Press Ctrl-C to stop.\n", args[0], r.interval)
	w := NewWatcher(r.tracker, args[0], r.interval, r.out)
	if err := w.Run(wctx); err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
	}
}

func (r *REPL) cmdNews(ctx context.Context) {
	if r.news == nil {
		fmt.Fprintln(r.out, "News is not configured.")
		return
	}
	articles, err := r.news.Headlines(ctx, r.newsLim)
	if err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
		return
	}
	RenderNews(r.out, articles)
}
