// Copyright (c) 2026 Tenufa. All rights reserved.
// Author: dev@zfatbt.com

// Command newsctl is a terminal client for the Tenufa news API.
//
// It keeps a signed-in session on disk between invocations, the same
// record the web client keeps in browser storage:
//
//	newsctl login -email dana@zfatbt.com
//	newsctl posts -page 2 -category sport
//	newsctl front
//	newsctl whoami
//	newsctl logout
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/term"

	"github.com/zfatbt/tenufa/pkg/client"
	"github.com/zfatbt/tenufa/pkg/session"
)

const defaultBaseURL = "https://zfatbt.com"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) < 2 {
		usage()
		return errors.New("missing command")
	}

	app, err := newApp()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	command, args := os.Args[1], os.Args[2:]
	switch command {
	case "login":
		return app.login(ctx, args)
	case "register":
		return app.register(ctx, args)
	case "logout":
		app.sessions.Logout()
		fmt.Println("Signed out.")
		return nil
	case "whoami":
		return app.whoami()
	case "posts":
		return app.posts(ctx, args)
	case "front":
		return app.front(ctx)
	case "subscribe":
		return app.subscribe(ctx, args)
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: newsctl <command> [flags]

commands:
  login      sign in and persist the session
  register   create an account and sign in
  logout     sign out and remove the persisted session
  whoami     show the current session
  posts      list articles
  front      load the front page (public + protected collections)
  subscribe  join the newsletter

The API base URL is taken from TENUFA_URL (default `+defaultBaseURL+`).`)
}

type app struct {
	api      *client.Client
	sessions *session.Store
	logger   *slog.Logger
}

func newApp() (*app, error) {
	baseURL := os.Getenv("TENUFA_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("get home dir: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	api := client.New(baseURL)
	storage := session.NewFileStorage(filepath.Join(home, ".config", "tenufa"))
	sessions := session.NewStore(storage, client.NewAuthenticator(api), api, logger)

	// Reconcile the persisted session before anything decides whether
	// protected requests may be attempted.
	sessions.Initialize()

	return &app{api: api, sessions: sessions, logger: logger}, nil
}

func (app *app) login(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("login", flag.ExitOnError)
	email := flags.String("email", "", "account email")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		return errors.New("login: -email is required")
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return err
	}

	established, err := app.sessions.Login(ctx, *email, password)
	if errors.Is(err, session.ErrAuthFailed) {
		return errors.New("login rejected: check your email and password")
	}
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	fmt.Printf("Signed in as %s (%s).\n", established.Identity.Name, established.Identity.Role)
	return nil
}

func (app *app) register(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("register", flag.ExitOnError)
	name := flags.String("name", "", "display name")
	email := flags.String("email", "", "account email")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *name == "" || *email == "" {
		return errors.New("register: -name and -email are required")
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return err
	}

	established, err := app.sessions.Register(ctx, *name, *email, password)
	if errors.Is(err, session.ErrAuthFailed) {
		return errors.New("registration rejected: the email may already be in use")
	}
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}

	fmt.Printf("Welcome, %s.\n", established.Identity.Name)
	return nil
}

func (app *app) whoami() error {
	current := app.sessions.Current()
	if current == nil {
		fmt.Println("Not signed in.")
		return nil
	}
	fmt.Printf("%s <%s> role=%s\n", current.Identity.Name, current.Identity.ID, current.Identity.Role)
	return nil
}

func (app *app) posts(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("posts", flag.ExitOnError)
	page := flags.Int("page", 1, "page number")
	category := flags.String("category", "", "filter by category")
	if err := flags.Parse(args); err != nil {
		return err
	}

	result, err := app.api.ListPosts(ctx, *page, *category, nil)
	if err != nil {
		return fmt.Errorf("list posts: %w", err)
	}

	for _, post := range result.Posts {
		fmt.Printf("%s  %-10s  %s\n", post.PublishedAt.Format("2006-01-02"), post.Category, post.Title)
	}
	fmt.Printf("page %d of %d\n", result.CurrentPage, result.TotalPages)
	return nil
}

func (app *app) front(ctx context.Context) error {
	loader := client.NewLoader(app.api, app.sessions, app.logger)
	snapshot := loader.Load(ctx)

	fmt.Printf("posts: %d, ads: %d, alerts: %d, newspapers: %d\n",
		len(snapshot.Posts), len(snapshot.Ads), len(snapshot.Alerts), len(snapshot.Newspapers))
	if app.sessions.Current() != nil {
		fmt.Printf("users: %d, messages: %d, subscribers: %d\n",
			len(snapshot.Users), len(snapshot.Messages), len(snapshot.Subscribers))
	}
	return nil
}

func (app *app) subscribe(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("subscribe", flag.ExitOnError)
	email := flags.String("email", "", "address to subscribe")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		return errors.New("subscribe: -email is required")
	}

	if err := app.api.Subscribe(ctx, *email); err != nil {
		if client.IsStatus(err, 409) {
			fmt.Println("Already subscribed.")
			return nil
		}
		return fmt.Errorf("subscribe: %w", err)
	}
	fmt.Println("Subscribed.")
	return nil
}

func readPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(raw), nil
}
