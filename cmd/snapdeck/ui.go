package main

import (
	"context"
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"snapdeck/internal/backend"
	"snapdeck/internal/capture"
	"snapdeck/internal/hotkey"
	"snapdeck/internal/progress"
	"snapdeck/internal/ui"
)

func newUICmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the capture window",
		Long: `Open the terminal capture window. Pick a mode and a selection type, then
press c to capture. The global hotkey (default ctrl+shift+s) triggers a
capture while another window has focus.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd.Context(), flags)
		},
	}
}

func runUI(ctx context.Context, flags *rootFlags) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	// The TUI owns the terminal; logs go to a file or nowhere.
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "snapdeck")
		if err != nil {
			return fmt.Errorf("log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	events := make(chan progress.Event, 64)
	router, err := backend.New(cfg, backend.Options{Progress: &progress.ChanEmitter{Ch: events}})
	if err != nil {
		return err
	}
	exec := ui.NewCommandExecutor(router)
	ctrl := capture.NewController(exec)
	ctrl.SetMode(cfg.Mode)
	ctrl.SetSelectionType(cfg.Selection)

	app := ui.NewAppModel(ctrl, exec, events)
	p := tea.NewProgram(app.AsTeaModel(), tea.WithAltScreen(), tea.WithContext(ctx))

	if cfg.Hotkey != "" {
		stop, err := startHotkey(cfg.Hotkey, func() { p.Send(ui.HotkeyMsg{}) })
		if err != nil {
			log.Printf("main.runUI: hotkey disabled: %v", err)
		} else {
			defer stop()
		}
	}

	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func startHotkey(combo string, fn func()) (func(), error) {
	c, err := hotkey.ParseCombo(combo)
	if err != nil {
		return nil, err
	}
	return hotkey.Listen(c, fn)
}
