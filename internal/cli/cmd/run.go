package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/wui/internal/application/port"
	"github.com/bnema/wui/internal/cli/styles"
	"github.com/bnema/wui/internal/infrastructure/config"
	"github.com/bnema/wui/internal/infrastructure/headless"
	"github.com/bnema/wui/internal/infrastructure/host"
	"github.com/bnema/wui/internal/infrastructure/webkit"
	"github.com/bnema/wui/internal/logging"
	"github.com/bnema/wui/internal/mainloop"
	"github.com/bnema/wui/pkg/wui"
)

const (
	engineHeadless = "headless"
	engineWebKit   = "webkit"
)

var (
	runEngine string
	runWatch  bool
	runDemo   bool
	runFrames int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the frame loop for the configured windows",
	Long: `Spawn the configured windows, attach their webviews and run the frame loop
until interrupted. Input translated from webview content is printed as it
reaches the host.

The headless engine runs content in an embedded JavaScript runtime and needs
no display. The webkit engine requires a binary built with -tags webkit_cgo.

Examples:
  wui run --engine headless --demo     # synthetic input through the bridge
  wui run --engine webkit --watch      # reapply config edits live`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&runEngine, "engine", engineHeadless, "webview engine: headless or webkit")
	runCmd.Flags().BoolVar(&runWatch, "watch", false, "reload windows when the config file changes")
	runCmd.Flags().BoolVar(&runDemo, "demo", false, "drive headless webviews with synthetic input")
	runCmd.Flags().IntVar(&runFrames, "frames", 0, "stop after this many frames (0 runs until interrupted)")
}

// engineSetup is the chosen engine plus the per-frame work it needs.
type engineSetup struct {
	engine   port.WebviewEngine
	headless *headless.Engine
	pump     func()
}

func selectEngine(name string) (engineSetup, error) {
	switch name {
	case engineHeadless:
		e := headless.NewEngine()
		return engineSetup{engine: e, headless: e, pump: func() {}}, nil
	case engineWebKit:
		if !webkit.Available() {
			return engineSetup{}, fmt.Errorf("webkit engine: %w (rebuild with -tags webkit_cgo)", port.ErrEngineUnavailable)
		}
		if err := webkit.Init(); err != nil {
			return engineSetup{}, fmt.Errorf("init webkit: %w", err)
		}
		e := webkit.NewEngine()
		return engineSetup{engine: e, pump: e.Pump}, nil
	default:
		return engineSetup{}, fmt.Errorf("unknown engine %q (want %s or %s)", name, engineHeadless, engineWebKit)
	}
}

func runRun(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	if runDemo && runEngine != engineHeadless {
		return fmt.Errorf("--demo needs the %s engine", engineHeadless)
	}

	cfg, err := app.LoadConfig()
	if err != nil {
		return err
	}
	setup, err := selectEngine(runEngine)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	log := logging.FromContext(ctx)

	world := host.NewWorld()
	if err := applyWindows(world, cfg); err != nil {
		return err
	}

	renderer := styles.NewFrameRenderer(app.Theme)
	out := cmd.OutOrStdout()
	frames := 0
	plugin := wui.New(world, setup.engine, wui.WithFrameHook(func(_ context.Context, r wui.FrameReport) {
		setup.pump()
		printFrame(out, renderer, world, r)
		frames++
		if runFrames > 0 && frames >= runFrames {
			cancel()
		}
	}))

	if runWatch {
		reloads := mainloop.NewCoalescer[string](plugin.Post)
		defer reloads.Stop()
		app.Config.OnConfigChange(func(next *config.Config) {
			reloads.Post("windows", func() {
				if err := applyWindows(world, next); err != nil {
					log.Warn().Err(err).Msg("config reload not fully applied")
					return
				}
				log.Info().Msg("config reloaded")
			})
		})
		if err := app.Config.Watch(); err != nil {
			return fmt.Errorf("watch config: %w", err)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	if runDemo {
		g.Go(func() error {
			return runDemoInput(gctx, plugin, setup.headless)
		})
	}

	runErr := plugin.Run(gctx, cfg.Frame.Interval())
	cancel()
	if err := g.Wait(); err != nil {
		return err
	}
	return runErr
}

// applyWindows reconciles the world with the windows declared in cfg. It
// must run on the frame goroutine once the loop started.
func applyWindows(world *host.World, cfg *config.Config) error {
	specs, err := cfg.WindowSpecs()
	if err != nil {
		return err
	}
	_, err = world.Reconcile(specs)
	return err
}

func printFrame(out io.Writer, renderer *styles.FrameRenderer, world *host.World, r wui.FrameReport) {
	for _, line := range renderer.RenderWindows(r.Create.Created, r.Remove.Removed) {
		fmt.Fprintln(out, line)
	}
	for _, ev := range world.DrainInput() {
		fmt.Fprintln(out, renderer.RenderInput(ev))
	}
}

// demoStep is one synthetic interaction dispatched into every headless view.
type demoStep func(v *headless.View) error

var demoSteps = []demoStep{
	func(v *headless.View) error { return v.KeyDown("a", "KeyA") },
	func(v *headless.View) error { return v.KeyDown("a", "KeyA") },
	func(v *headless.View) error { return v.KeyUp("a", "KeyA") },
	func(v *headless.View) error { return v.MouseMove(4, -2) },
	func(v *headless.View) error { return v.MouseDown(0) },
	func(v *headless.View) error { return v.MouseUp(0) },
	func(v *headless.View) error { return v.KeyDown("Enter", "Enter") },
	func(v *headless.View) error { return v.KeyUp("Enter", "Enter") },
}

const demoInterval = 250 * time.Millisecond

// runDemoInput cycles through demoSteps until ctx is done. Steps run on the
// frame goroutine through plugin.Post.
func runDemoInput(ctx context.Context, plugin *wui.Plugin, engine *headless.Engine) error {
	log := logging.FromContext(ctx).With().Str("component", "demo").Logger()
	ticker := time.NewTicker(demoInterval)
	defer ticker.Stop()

	for i := 0; ; i++ {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		step := demoSteps[i%len(demoSteps)]
		plugin.Post(func() {
			for _, v := range engine.Views() {
				if v.Closed() {
					continue
				}
				if err := step(v); err != nil {
					log.Debug().Err(err).Msg("demo step failed")
				}
			}
		})
	}
}
