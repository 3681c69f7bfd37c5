// Command zielarnia runs the herbal shop back-office console: log in against
// the credential file, then work the role-gated menus against the shop
// database.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"zielarnia/internal/auth"
	"zielarnia/internal/config"
	"zielarnia/internal/console"
	"zielarnia/internal/logging"
	"zielarnia/internal/menu"
	"zielarnia/internal/store"
)

// maxLoginAttempts bounds the interactive login loop before the program
// gives up and exits.
const maxLoginAttempts = 3

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()
	ui := console.New(os.Stdin, os.Stdout)

	cfg, err := config.Load(config.DefaultFile)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	log, err := logging.New(cfg.LogsFilePath)
	if err != nil {
		return fmt.Errorf("initialize log file: %w", err)
	}
	log.Info("application started")

	st, err := store.Open(cfg.ConnectionString, log)
	if err != nil {
		log.Error("cannot open the shop database", err)
		return err
	}
	defer st.Close()
	if err := st.Ping(ctx); err != nil {
		log.Error("shop database is unreachable", err)
		return err
	}

	authenticator := auth.New(cfg.UsersFilePath, log)
	authenticator.OnLoginAttempt(func(e auth.Event) error {
		log.Info(fmt.Sprintf("login attempt recorded for user %q at %s", e.Login, e.Timestamp.Format("2006-01-02 15:04:05")))
		return nil
	})
	authenticator.OnLoginSucceeded(func(e auth.Event) error {
		ui.Println(fmt.Sprintf("Welcome back, %s.", e.Login))
		return nil
	})

	ui.Header("Zielarnia")
	user, err := login(authenticator, ui)
	if err != nil {
		log.Warn("no successful login, shutting down")
		return err
	}
	ui.Success(fmt.Sprintf("Logged in as %s (%s).", user.Login, user.Role))

	menu.New(st, log, ui).Run(ctx, user)

	log.Info("application shutting down")
	ui.Println("Goodbye.")
	return nil
}

// login prompts until the credentials check out or the attempts run out.
// Every failure class from the authenticator is recoverable here; the
// distinction only changes the message shown.
func login(authenticator *auth.Authenticator, ui *console.Console) (*auth.Identity, error) {
	for attempt := 1; attempt <= maxLoginAttempts; attempt++ {
		loginName := ui.ReadString("Login:", false)
		password := ui.ReadPassword("Password:")

		user, err := authenticator.Login(loginName, password)
		if err == nil {
			return user, nil
		}
		switch {
		case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, auth.ErrInvalidPassword):
			ui.Warn("Invalid login or password.")
		case errors.Is(err, auth.ErrStoreUnavailable):
			ui.Error("The credential store cannot be read. Contact the administrator.")
		case errors.Is(err, auth.ErrCorruptCredential), errors.Is(err, auth.ErrInvalidRole):
			ui.Error("Your account record is damaged. Contact the administrator.")
		default:
			ui.Error("Login failed unexpectedly. Try again.")
		}
		if ui.EOF() {
			break
		}
	}
	return nil, errors.New("too many failed login attempts")
}
