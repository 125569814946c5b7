package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/TryLovingMichael/jellyflix-home/internal/config"
	"github.com/TryLovingMichael/jellyflix-home/internal/domain"
	"github.com/TryLovingMichael/jellyflix-home/internal/jellyfin"
	"github.com/TryLovingMichael/jellyflix-home/internal/log"
	"github.com/TryLovingMichael/jellyflix-home/internal/session"
	"github.com/TryLovingMichael/jellyflix-home/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var showVersion bool
	var doLogin bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.BoolVar(&doLogin, "login", false, "re-authenticate from the terminal and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("jellyflix %s\n", Version)
		return
	}

	if err := run(doLogin); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(doLogin bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := log.Setup(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting jellyflix", "version", Version)

	store, err := session.NewStore(config.DataDir())
	if err != nil {
		return fmt.Errorf("failed to open session store: %w", err)
	}
	defer store.Close()

	if doLogin {
		return runLoginPrompt(store, logger)
	}

	sess, err := store.Load()
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}

	model := tui.NewModel(store, cfg, logger, sess)

	p := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// runLoginPrompt authenticates from the terminal and persists the
// session without entering the TUI
func runLoginPrompt(store *session.Store, logger *slog.Logger) error {
	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Server URL (e.g., http://192.168.1.100:8096): ")
	serverURL, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read server URL: %w", err)
	}

	fmt.Print("Username: ")
	username, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	fmt.Print("Password: ")
	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	fmt.Println()

	sess := domain.Session{
		ServerURL: strings.TrimSpace(serverURL),
		Username:  strings.TrimSpace(username),
		Password:  string(passwordBytes),
	}

	client := jellyfin.NewClient(sess, logger)
	auth, err := client.Authenticate(context.Background())
	if err != nil {
		return err
	}

	sess.UserID = auth.UserID
	sess.AccessToken = auth.AccessToken
	if err := store.Save(sess); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	fmt.Println("Authentication successful.")
	return nil
}
