package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/ledcube/app"
	"github.com/lixenwraith/ledcube/audio"
	"github.com/lixenwraith/ledcube/config"
)

type options struct {
	configPath  string
	writeConfig string
	size        int
	fps         int
	audio       bool
	debug       bool
}

func newRootCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledcube",
		Short: "Edit the colors of an N×N×N LED cube in the terminal",
		Long: `ledcube renders a cube of LEDs and lets you pick one with the mouse
or by typing its coordinates, then set its color as a hex value.

Drag to orbit, click to pick, Tab between fields, Enter to apply.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         opts.run,
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	f.IntVarP(&opts.size, "size", "n", 0, "LEDs per cube side (overrides config)")
	f.IntVar(&opts.fps, "fps", 0, "redraw rate (overrides config)")
	f.BoolVar(&opts.audio, "audio", false, "play selection cues")
	f.BoolVar(&opts.debug, "debug", false, "write JSON logs to the log directory")
	f.StringVar(&opts.writeConfig, "write-config", "", "write the resolved config as YAML to this file and exit")
	return cmd
}

func main() {
	if err := newRootCmd(&options{}).Execute(); err != nil {
		os.Exit(1)
	}
}

// resolve loads the config file, if any, and applies flags the user set
func (o *options) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Cube.Size = o.size
	}
	if flags.Changed("fps") {
		cfg.Render.FPS = o.fps
	}
	if flags.Changed("audio") {
		cfg.Audio.Enabled = o.audio
	}
	if flags.Changed("debug") {
		cfg.Logging.Debug = o.debug
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (o *options) run(cmd *cobra.Command, _ []string) error {
	cfg, err := o.resolve(cmd)
	if err != nil {
		return err
	}

	if o.writeConfig != "" {
		if err := cfg.Save(o.writeConfig); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", o.writeConfig)
		return nil
	}

	log, logFile, err := setupLogging(cfg.Logging)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}
	defer log.Sync()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()

	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			log.Error("Crashed", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
			fmt.Fprintf(os.Stderr, "\n\x1b[31mLEDCUBE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	cue := setupAudio(cfg.Audio, log)
	defer cue.Close()

	a, err := app.New(screen, cfg, log, cue)
	if err != nil {
		screen.Fini()
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// setupAudio returns a silent cue when audio is off or the device is unavailable
func setupAudio(cfg config.AudioConfig, log *zap.Logger) app.Cue {
	if !cfg.Enabled {
		return audio.Silent{}
	}
	p := audio.NewPlayer(cfg.Volume)
	if err := p.Init(); err != nil {
		log.Warn("Audio unavailable, continuing without cues", zap.Error(err))
		return audio.Silent{}
	}
	return p
}
