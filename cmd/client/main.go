package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/MKhiriev/go-rest-kit/internal/adapter"
	"github.com/MKhiriev/go-rest-kit/internal/fault"
	"github.com/MKhiriev/go-rest-kit/internal/logger"
	"github.com/MKhiriev/go-rest-kit/models"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

const usage = `usage: go-rest-kit-client [flags] <command> [args]

commands:
  version              print the server build info
  me                   print the logged in user
  list                 list published articles
  get <id>             print one article
  create <title> <body>
  publish <id>
  delete <id>

flags:
`

func main() {
	flags := pflag.NewFlagSet("go-rest-kit-client", pflag.ExitOnError)
	serverURL := flags.StringP("server", "s", "localhost:8080", "API base URL")
	login := flags.StringP("login", "l", os.Getenv("REST_KIT_LOGIN"), "login used for authenticated commands")
	password := flags.StringP("password", "p", os.Getenv("REST_KIT_PASSWORD"), "password used for authenticated commands")
	timeout := flags.Duration("timeout", 15*time.Second, "request timeout")
	verbose := flags.BoolP("verbose", "v", false, "log requests to stderr")
	flags.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flags.PrintDefaults()
	}
	_ = flags.Parse(os.Args[1:])

	log := logger.Nop()
	if *verbose {
		log = logger.New(os.Stderr, "go-rest-kit-client")
	}

	client, err := adapter.NewAPIClient(adapter.Options{BaseURL: *serverURL, Timeout: *timeout}, log)
	if err != nil {
		exit(err)
	}

	ctx := context.Background()
	if *login != "" {
		if _, err = client.Login(ctx, models.Credentials{Login: *login, Password: *password}); err != nil {
			exit(err)
		}
	}

	result, err := run(ctx, client, flags.Args())
	if err != nil {
		if errors.Is(err, errUsage) {
			flags.Usage()
			os.Exit(2)
		}
		exit(err)
	}
	if result != nil {
		_ = yaml.NewEncoder(os.Stdout).Encode(result)
	}
}

var errUsage = errors.New("usage")

func run(ctx context.Context, client adapter.APIClient, args []string) (any, error) {
	if len(args) == 0 {
		return nil, errUsage
	}

	switch cmd, rest := args[0], args[1:]; {
	case cmd == "version":
		return client.Version(ctx)
	case cmd == "me":
		return client.Me(ctx)
	case cmd == "list":
		return client.ListArticles(ctx, adapter.ArticleQuery{})
	case cmd == "get" && len(rest) == 1:
		id, err := parseID(rest[0])
		if err != nil {
			return nil, err
		}
		return client.GetArticle(ctx, id)
	case cmd == "create" && len(rest) == 2:
		return client.CreateArticle(ctx, models.ArticleInput{Title: &rest[0], Body: &rest[1]})
	case cmd == "publish" && len(rest) == 1:
		id, err := parseID(rest[0])
		if err != nil {
			return nil, err
		}
		status := models.ArticlePublished
		return client.UpdateArticle(ctx, id, models.ArticleInput{Status: &status})
	case cmd == "delete" && len(rest) == 1:
		id, err := parseID(rest[0])
		if err != nil {
			return nil, err
		}
		return nil, client.DeleteArticle(ctx, id)
	}
	return nil, errUsage
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid article id %q", s)
	}
	return id, nil
}

func exit(err error) {
	var f *fault.Fault
	if errors.As(err, &f) {
		fmt.Fprintf(os.Stderr, "%d %s\n", f.Status, f.Message)
		for _, field := range f.Fields {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", field.Field, field.Message)
		}
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
