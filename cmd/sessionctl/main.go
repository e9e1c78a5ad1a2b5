// sessionctl manages QuickJot session tokens directly against the backing
// store. QuickJot deliberately has no password login; an operator issues a
// token for a user and hands it over out of band.
//
// Usage:
//
//	sessionctl issue -u alice     print a fresh session token for alice
//	sessionctl revoke -t <token>  end the session for the given token
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/quickjot/quickjot/internal/logging"
	"github.com/quickjot/quickjot/internal/server/auth"
	"github.com/quickjot/quickjot/internal/server/config"
	"github.com/quickjot/quickjot/internal/server/kv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		return fmt.Errorf("usage: sessionctl issue -u <username> | sessionctl revoke -t <token>")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	pool, err := kv.NewRedisPool(cfg.RedisURL, cfg.RedisPoolSize, cfg.RedisPoolTimeout)
	if err != nil {
		return err
	}
	defer pool.Close()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	sessions := auth.NewService(pool, logger, cfg.SessionTTL)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch os.Args[1] {
	case "issue":
		fs := flag.NewFlagSet("issue", flag.ExitOnError)
		username := fs.String("u", "", "username to issue a session for")
		if err := fs.Parse(os.Args[2:]); err != nil {
			return err
		}
		if *username == "" {
			return fmt.Errorf("issue: -u <username> is required")
		}

		token, err := sessions.Issue(ctx, *username)
		if err != nil {
			return err
		}

		// The plaintext token is shown exactly once; only its digest is stored.
		fmt.Println(token)
		return nil

	case "revoke":
		fs := flag.NewFlagSet("revoke", flag.ExitOnError)
		token := fs.String("t", "", "session token to revoke")
		if err := fs.Parse(os.Args[2:]); err != nil {
			return err
		}
		if *token == "" {
			return fmt.Errorf("revoke: -t <token> is required")
		}

		return sessions.Revoke(ctx, *token)

	default:
		return fmt.Errorf("unknown command %q", os.Args[1])
	}
}
