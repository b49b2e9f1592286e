// Command talkrender renders stored forum text from files or stdin.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/stefanreuther/c2ng-sub017/bbcode"
	db "github.com/stefanreuther/c2ng-sub017/db/sqlc"
	"github.com/stefanreuther/c2ng-sub017/linkresolver"
	"github.com/stefanreuther/c2ng-sub017/render"
	"golang.org/x/term"
)

const (
	defaultFormat  = "html"
	defaultBaseURL = "/"
	defaultDomain  = "localhost"
)

type options struct {
	format   string
	baseURL  string
	source   string
	warnings bool
	userID   int64
	dbSource string
	domain   string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	var opts options

	flags := pflag.NewFlagSet("talkrender", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&opts.format, "format", "f", defaultFormat, "Output format, e.g. html, mail, news, text, forum, quote:mail")
	flags.StringVar(&opts.baseURL, "base-url", defaultBaseURL, "Prefix of site-relative links")
	flags.StringVarP(&opts.source, "source", "s", "", "Source format for input without one (text, code, forumLS, ...)")
	flags.BoolVarP(&opts.warnings, "warnings", "w", false, "Report markup problems of forum input")
	flags.Int64Var(&opts.userID, "user", 0, "Acting user id")
	flags.StringVar(&opts.dbSource, "db", "", "Postgres connection string used to resolve forum links")
	flags.StringVar(&opts.domain, "domain", defaultDomain, "Domain of synthesized message ids")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: talkrender [flags] [inputs...]\n")
		fmt.Fprintln(stderr, "\nIf no input is provided, stored text is read from stdin.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return 2
	}

	logger := newLogger(stderr)

	if _, ok := render.ParseFormat(opts.format); !ok && opts.format != render.FormatRaw && opts.format != render.FormatSource {
		logger.Error().Str("format", opts.format).Msg("unknown output format")
		return 2
	}

	ctx := context.Background()

	var links *linkresolver.Resolver
	if opts.dbSource != "" {
		store, err := connect(ctx, opts.dbSource)
		if err != nil {
			logger.Error().Err(err).Msg("cannot connect to the database")
			return 1
		}
		defer store.Shutdown()
		links = linkresolver.New(ctx, store, opts.userID, opts.domain)
	}

	inputs, err := readInputs(flags.Args(), stdin)
	if err != nil {
		logger.Error().Err(err).Msg("cannot read input")
		return 1
	}

	for _, in := range inputs {
		stored := in.text
		if opts.source != "" && !hasSourceFormat(stored) {
			stored = opts.source + ":" + stored
		}

		if opts.warnings {
			reportWarnings(logger, in.name, stored, links)
		}

		renderCtx := &render.Context{
			Highlighter: render.SimpleHighlighter{},
			UserID:      opts.userID,
		}
		if links != nil {
			renderCtx.Links = links
			renderCtx.News = links
		}

		out := render.Render(stored, renderCtx, render.Options{BaseURL: opts.baseURL, Format: opts.format})
		if _, err := io.WriteString(stdout, out); err != nil {
			logger.Error().Err(err).Msg("cannot write output")
			return 1
		}
	}

	return 0
}

// newLogger writes human-readable logs to terminals and JSON otherwise.
func newLogger(w io.Writer) zerolog.Logger {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		w = zerolog.ConsoleWriter{Out: f, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).With().Timestamp().Logger()
}

func connect(ctx context.Context, dbSource string) (db.Store, error) {
	connCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(connCtx, dbSource)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(connCtx); err != nil {
		pool.Close()
		return nil, err
	}
	return db.NewStore(pool), nil
}

// hasSourceFormat reports whether stored text starts with a known source format.
func hasSourceFormat(stored string) bool {
	source, _, found := strings.Cut(stored, ":")
	if !found {
		return false
	}
	return source == "text" || source == "code" || strings.HasPrefix(source, "forum")
}

func reportWarnings(logger zerolog.Logger, name string, stored string, links *linkresolver.Resolver) {
	source, payload := render.SplitStored(stored)
	if !strings.HasPrefix(source, "forum") {
		return
	}

	var parser bbcode.LinkParser
	if links != nil {
		parser = links
	}

	var warns bbcode.Warnings
	render.ParseWithLinks(source, payload, parser, &warns)
	for _, w := range warns.Serialize() {
		logger.Warn().
			Str("input", name).
			Int("byte_idx", w.ByteIdx).
			Str("issue", w.Issue).
			Msg(w.Description)
	}
}

type input struct {
	name string
	text string
}

func readInputs(paths []string, stdin io.Reader) ([]input, error) {
	if len(paths) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, err
		}
		return []input{{name: "-", text: string(data)}}, nil
	}

	inputs := make([]input, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, input{name: path, text: string(data)})
	}
	return inputs, nil
}
