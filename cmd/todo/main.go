package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tidylist/tidylist/internal/tui"
	"github.com/tidylist/tidylist/pkg/todosdk"
)

func main() {
	configPath := tui.DefaultConfigPath()
	cfg, err := tui.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if url := os.Getenv("TODO_SERVER_URL"); url != "" {
		cfg.ServerURL = url
	}

	// A stored token lets the user skip the sign-in dialog. Any keyring
	// error just means we start signed out.
	token, _ := tui.GetCredential(tui.TokenKey)

	client := todosdk.New(cfg.ServerURL)
	backend := tui.NewBackend(client, token)

	model := tui.New(backend, tui.ThemeByName(cfg.Theme), token)
	model.PersistToken = func(token string) {
		if token == "" {
			_ = tui.DeleteCredential(tui.TokenKey)
			return
		}
		_ = tui.SetCredential(tui.TokenKey, token)
	}
	model.PersistTheme = func(name string) {
		cfg.Theme = name
		_ = tui.SaveConfig(configPath, cfg)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error running program: %v\n", err)
		os.Exit(1)
	}
}
