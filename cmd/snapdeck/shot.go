package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"snapdeck/internal/backend"
	"snapdeck/internal/capture"
	"snapdeck/internal/config"
	"snapdeck/internal/progress"
)

type shotFlags struct {
	mode        capture.Mode
	selection   capture.SelectionType
	region      config.Region
	out         string
	duration    time.Duration
	fps         int
	clipboard   string
	interactive bool
}

func newShotCmd(root *rootFlags) *cobra.Command {
	return shotCommand(root, &shotFlags{})
}

func shotCommand(root *rootFlags, flags *shotFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shot",
		Short: "Capture once without the capture window",
		Long: `Capture once and print the saved file path.

Screenshots return immediately. Recordings run until Ctrl+C or until the
maximum duration elapses.`,
		Example: `  snapdeck shot --selection fullscreen
  snapdeck shot --mode recording --selection window --duration 10s
  snapdeck shot --selection region --region 0,0,800,600 --clipboard image
  snapdeck shot --interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShot(cmd, root, flags)
		},
	}
	cmd.Flags().Var(&flags.mode, "mode", "capture mode: screenshot or recording")
	cmd.Flags().Var(&flags.selection, "selection", "selection type: region, window or fullscreen")
	cmd.Flags().Var(&flags.region, "region", "capture rectangle for region selection")
	cmd.Flags().StringVar(&flags.out, "out", "", "output directory")
	cmd.Flags().DurationVar(&flags.duration, "duration", 0, "maximum recording length")
	cmd.Flags().IntVar(&flags.fps, "fps", 0, "recording frame rate")
	cmd.Flags().StringVar(&flags.clipboard, "clipboard", "", "copy after capture: none, path or image")
	cmd.Flags().BoolVarP(&flags.interactive, "interactive", "i", false, "choose mode and selection with prompts")
	return cmd
}

func runShot(cmd *cobra.Command, root *rootFlags, flags *shotFlags) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}
	applyShotFlags(cmd, cfg, flags)
	if err := cfg.Validate(); err != nil {
		return err
	}

	router, err := backend.New(cfg, backend.Options{Progress: stderrEmitter{}})
	if err != nil {
		return err
	}

	var result capture.Result
	ctrl := capture.NewController(capture.ExecutorFunc(func(ctx context.Context, c capture.Configuration) capture.Result {
		result = router.Execute(ctx, c)
		return result
	}))
	ctrl.SetMode(cfg.Mode)
	ctrl.SetSelectionType(cfg.Selection)

	if flags.interactive {
		mode, sel := ctrl.Mode(), ctrl.SelectionType()
		if err := promptConfiguration(&mode, &sel); err != nil {
			return err
		}
		ctrl.SetMode(mode)
		ctrl.SetSelectionType(sel)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if ctrl.Mode() == capture.ModeRecording {
		fmt.Fprintf(os.Stderr, "Recording %s for up to %s, press Ctrl+C to stop\n",
			ctrl.SelectionType().Label(), cfg.Recording.MaxDuration)
	}
	ctrl.Trigger(ctx)

	if !result.OK() {
		return result.Err
	}
	if result.Note != "" {
		fmt.Fprintf(os.Stderr, "note: %s\n", result.Note)
	}
	fmt.Fprintln(os.Stdout, result.Path)
	return nil
}

// applyShotFlags overrides cfg with the flags the user actually set.
func applyShotFlags(cmd *cobra.Command, cfg *config.Config, flags *shotFlags) {
	changed := cmd.Flags().Changed
	if changed("mode") {
		cfg.Mode = flags.mode
	}
	if changed("selection") {
		cfg.Selection = flags.selection
	}
	if changed("region") {
		cfg.Region = flags.region
	}
	if changed("out") {
		cfg.OutputDir = flags.out
	}
	if changed("duration") {
		cfg.Recording.MaxDuration = flags.duration
	}
	if changed("fps") {
		cfg.Recording.FPS = flags.fps
	}
	if changed("clipboard") {
		cfg.Clipboard = config.ClipboardMode(flags.clipboard)
	}
}

// promptConfiguration asks for mode and selection, starting from the current values.
func promptConfiguration(mode *capture.Mode, sel *capture.SelectionType) error {
	modeOpts := make([]huh.Option[capture.Mode], 0, len(capture.Modes()))
	for _, m := range capture.Modes() {
		modeOpts = append(modeOpts, huh.NewOption(m.Label(), m))
	}
	selOpts := make([]huh.Option[capture.SelectionType], 0, len(capture.SelectionTypes()))
	for _, s := range capture.SelectionTypes() {
		selOpts = append(selOpts, huh.NewOption(s.Label(), s))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[capture.Mode]().
				Title("Capture mode").
				Options(modeOpts...).
				Value(mode),
			huh.NewSelect[capture.SelectionType]().
				Title("Selection").
				Description("What part of the screen to capture.").
				Options(selOpts...).
				Value(sel),
		),
	)
	return form.Run()
}

// stderrEmitter prints progress for headless captures.
type stderrEmitter struct{}

func (stderrEmitter) Emit(ev progress.Event) {
	if ev.Status == progress.StatusRunning {
		fmt.Fprintf(os.Stderr, "%s\n", ev.Message)
	}
}
