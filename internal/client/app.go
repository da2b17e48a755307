package client

import (
	"context"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/MKhiriev/go-post-board/internal/adapter"
	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/models"
)

// Usage describes the accepted commands.
const Usage = `usage: client <command> [flags]

commands:
  register  -name NAME -email EMAIL -password PASSWORD
  login     -email EMAIL -password PASSWORD
  post      [-token TOKEN] -title TITLE -description TEXT
  posts     [-token TOKEN]
  version
`

type command func(ctx context.Context, args []string) error

type App struct {
	adapter  adapter.ServerAdapter
	out      io.Writer
	logger   *logger.Logger
	commands map[string]command
}

func NewApp(serverAdapter adapter.ServerAdapter, out io.Writer, logger *logger.Logger) (*App, error) {
	if serverAdapter == nil {
		return nil, ErrNilAdapter
	}
	if out == nil {
		out = io.Discard
	}

	a := &App{adapter: serverAdapter, out: out, logger: logger}
	a.commands = map[string]command{
		"register": a.register,
		"login":    a.login,
		"post":     a.createPost,
		"posts":    a.listPosts,
		"version":  a.version,
	}

	return a, nil
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}

	a.logger.Debug().Str("command", args[0]).Msg("running command")
	return cmd(ctx, args[1:])
}

func (a *App) register(ctx context.Context, args []string) error {
	var req models.RegisterRequest

	fs := newFlagSet("register")
	fs.StringVar(&req.Name, "name", "", "display name (3 to 30 characters)")
	fs.StringVar(&req.Email, "email", "", "email address")
	fs.StringVar(&req.Password, "password", "", "password (at least 6 characters)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	msg, err := a.adapter.Register(ctx, req)
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}

	_, err = fmt.Fprintln(a.out, msg)
	return err
}

func (a *App) login(ctx context.Context, args []string) error {
	var req models.LoginRequest

	fs := newFlagSet("login")
	fs.StringVar(&req.Email, "email", "", "email address")
	fs.StringVar(&req.Password, "password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	token, err := a.adapter.Login(ctx, req)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	_, err = fmt.Fprintf(a.out, "%s %s\n", token.TokenType, token.AccessToken)
	return err
}

func (a *App) createPost(ctx context.Context, args []string) error {
	var (
		req   models.CreatePostRequest
		token string
	)

	fs := newFlagSet("post")
	fs.StringVar(&token, "token", "", "bearer token returned by login")
	fs.StringVar(&req.Title, "title", "", "post title (up to 30 characters)")
	fs.StringVar(&req.Description, "description", "", "post text (up to 300 characters)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.useToken(token); err != nil {
		return err
	}

	msg, err := a.adapter.CreatePost(ctx, req)
	if err != nil {
		return fmt.Errorf("create post: %w", err)
	}

	_, err = fmt.Fprintln(a.out, msg)
	return err
}

func (a *App) listPosts(ctx context.Context, args []string) error {
	var token string

	fs := newFlagSet("posts")
	fs.StringVar(&token, "token", "", "bearer token returned by login")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.useToken(token); err != nil {
		return err
	}

	posts, err := a.adapter.ListPosts(ctx)
	if err != nil {
		return fmt.Errorf("list posts: %w", err)
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tDESCRIPTION")
	for _, p := range posts {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", p.PostID, p.Title, p.Description)
	}
	return tw.Flush()
}

func (a *App) version(ctx context.Context, _ []string) error {
	v, err := a.adapter.Version(ctx)
	if err != nil {
		return fmt.Errorf("version: %w", err)
	}

	_, err = fmt.Fprintln(a.out, v)
	return err
}

// useToken prefers an explicit -token flag over the configured token.
func (a *App) useToken(token string) error {
	if token != "" {
		a.adapter.SetToken(token)
		return nil
	}
	if a.adapter.Token() == "" {
		return ErrMissingToken
	}
	return nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}
