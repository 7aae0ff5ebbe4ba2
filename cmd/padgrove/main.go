package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/padgrove/padgrove/engine/colors"
	"github.com/padgrove/padgrove/engine/core"
	glbackend "github.com/padgrove/padgrove/engine/gfx/gl"
	"github.com/padgrove/padgrove/engine/platform"
	"github.com/padgrove/padgrove/searchview"
	"github.com/padgrove/padgrove/theme"
)

type App struct {
	cfg   appConfig
	theme *theme.Theme
}

func (a *App) OnStart(e *core.Engine) {
	if a.cfg.NotePath != "" {
		e.PushLayer(&NoteLayer{path: a.cfg.NotePath, fontPath: a.cfg.FontPath})
		return
	}
	e.PushLayer(&SearchLayer{
		theme:    a.theme,
		iconDir:  a.cfg.IconDir,
		fontPath: a.cfg.FontPath,
	})
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {
	if e.Input.IsKeyDown(core.KeyEscape) {
		e.Window.RequestClose()
	}
}

func (a *App) OnRender(e *core.Engine, alpha float64) {}
func (a *App) OnEvent(e *core.Engine, ev core.Event)  {}
func (a *App) OnShutdown(e *core.Engine)              {}

// dispatch logs resolved pointer actions. Opening URLs and invoking
// item menus belong to the surrounding application shell; the secret
// value never reaches the log.
func dispatch(act searchview.Action) {
	switch v := act.(type) {
	case searchview.OpenLink:
		log.Info().Str("url", v.URL).Msg("open link")
	case searchview.RevealSecret:
		log.Info().Int("len", len(v.Value)).Msg("reveal secret")
	case searchview.InvokeItemAction:
		k := v.Item.Key()
		log.Info().Int("kind", int(k.Kind)).Int32("id", k.ID).Msg("item action")
	}
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg, err := loadConfig("padgrove.toml")
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	th := theme.Default()
	if cfg.ThemePath != "" {
		th, err = theme.Load(cfg.ThemePath)
		if err != nil {
			log.Warn().Err(err).Str("path", cfg.ThemePath).Msg("theme load failed, using defaults")
			th = theme.Default()
		}
	}

	app := &App{cfg: cfg, theme: th}

	runCfg := core.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		VSync:      cfg.Window.VSync,
		ClearColor: colors.White,
	}

	newWindow := func(c core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(c, nil)
	}
	newRenderer := func(win core.Window, c core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, c)
	}

	if err := core.Run(app, runCfg, newWindow, newRenderer); err != nil {
		log.Fatal().Err(err).Msg("engine run")
	}
}
