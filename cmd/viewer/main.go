package main

import (
	"context"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"campus-viewer/internal/assets"
	"campus-viewer/internal/campus"
	"campus-viewer/internal/commands"
	"campus-viewer/internal/console"
	"campus-viewer/internal/debug"
	"campus-viewer/internal/engineconfig"
	"campus-viewer/internal/fonts"
	"campus-viewer/internal/graphics"
	"campus-viewer/internal/logger"
	"campus-viewer/internal/orbit"
	"campus-viewer/internal/scene"
	"campus-viewer/internal/scenegraph"
	"campus-viewer/internal/terminal"
	"campus-viewer/internal/ui"
	"campus-viewer/internal/viewer"
)

func main() {
	log := logger.New()
	if err := run(log); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(log *logger.Logger) error {
	prefs, err := engineconfig.Load()
	if err != nil {
		return err
	}

	cfg, err := campus.Load(prefs.CampusConfig)
	if err != nil {
		return err
	}

	graph := scenegraph.New()
	camera := orbit.New(cfg.Start.Pose(), cfg.Camera.MinDistance, cfg.Camera.MaxDistance, cfg.Camera.Damping)
	v := viewer.New(viewer.Options{
		Graph:      graph,
		Rooms:      cfg.Registry(),
		Camera:     camera,
		Lens:       cfg.Lens(),
		Shell:      cfg.Shell,
		Home:       cfg.Home.Pose(),
		Transition: cfg.TransitionDuration(),
		Log:        log,
	})

	scn := scene.New(graph, scene.LightFrom(cfg.Lights))
	defer scn.Unload()
	overlay := ui.NewOverlay(ui.ThemeFrom(cfg.Theme))
	dbg := debug.New()
	dbg.SetShowFPS(prefs.ShowFPS)
	dbg.SetShowPose(prefs.ShowPose)

	reg := commands.NewRegistry(log.Writer())
	console.Register(reg, console.Deps{
		Viewer:    v,
		Log:       log,
		Overlays:  dbg,
		Prefs:     &prefs,
		SavePrefs: engineconfig.Save,
	})
	term := terminal.New(log, reg)
	in := newInput(v, overlay, term)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	loader := assets.NewLoader(assets.NewFetcher(prefs.AssetCache).Fetch, log, assets.DefaultParallelism)

	background, ok := ui.ParseHexColor(cfg.Background)
	if !ok {
		background = rl.SkyBlue
	}

	setup := func() error {
		loadFont(log, cfg.Theme.Font, overlay, term, dbg)
		loader.Start(ctx, cfg.AssetURIs())
		log.Logf("Loading %d models", loader.Pending())
		return nil
	}
	update := func() {
		loader.Poll(graph, scn)
		term.Update()
		in.Update()
		v.Tick()
		scn.SyncCamera(camera.Pose(), v.Lens())
	}
	draw := func() {
		scn.Draw()
		overlay.Draw(v.EditLabel(), v.Panel(), loader.Pending())
		dbg.Draw(camera.Pose())
		term.Draw()
	}

	return graphics.Run(graphics.Window{
		Title:      "Campus Map",
		Width:      prefs.WindowWidth,
		Height:     prefs.WindowHeight,
		TargetFPS:  prefs.TargetFPS,
		Background: background,
	}, setup, update, draw)
}

// loadFont applies the theme font to every overlay. Any failure keeps raylib's default font.
func loadFont(log *logger.Logger, family string, overlay *ui.Overlay, term *terminal.Terminal, dbg *debug.Debug) {
	if family == "" {
		return
	}
	path, err := fonts.Find(family, fonts.BaseDirs())
	if err != nil {
		log.Logf("Font %q not found, using default", family)
		return
	}
	f := rl.LoadFont(path)
	if f.Texture.ID == 0 {
		log.Logf("Font %s could not be loaded, using default", path)
		return
	}
	overlay.SetFont(f)
	term.SetFont(f)
	dbg.SetFont(f)
}
