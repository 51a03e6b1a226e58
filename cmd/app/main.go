package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/akyairhashvil/tempo/internal/config"
	"github.com/akyairhashvil/tempo/internal/storage"
	"github.com/akyairhashvil/tempo/internal/tui"
	"github.com/akyairhashvil/tempo/internal/util"
)

func main() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "tempo needs an interactive terminal")
		os.Exit(1)
	}

	dataRoot := util.DataDir(config.AppName)
	if err := os.MkdirAll(dataRoot, 0o755); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	util.InitLogging(dataRoot)

	cfgPath := config.DefaultPath()
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Printf("Config file is malformed: %v\n", err)
		os.Exit(1)
	}
	// Seed a config file on first run so the knobs are discoverable.
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		if err := config.Save(cfgPath, cfg); err != nil {
			util.LogError("seed config file", err)
		}
	}

	ctx := context.Background()
	db, err := storage.Open(ctx, filepath.Join(dataRoot, config.DBFileName))
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	model := tui.NewMainModel(ctx, db, cfg)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}
