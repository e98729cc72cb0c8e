package main

import (
	"context"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/pkg/errors"
	"github.com/solarlune/skatescene"
	"github.com/solarlune/skatescene/config"
	"github.com/solarlune/skatescene/demo"
	"github.com/solarlune/skatescene/ebitenrender"
	"github.com/solarlune/skatescene/logging"
	"github.com/solarlune/skatescene/raster"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/image/font/basicfont"
)

func newRunCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open a window and show the scene",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ebiten.SetWindowTitle(opts.cfg.Window.Title)
			ebiten.SetWindowSize(opts.cfg.Window.Width, opts.cfg.Window.Height)
			ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

			game := newGame(cmd.Context(), opts.cfg)
			defer game.scene.Destroy()

			if err := ebiten.RunGame(game); err != nil {
				return errors.Wrap(err, "running game")
			}
			return cmd.Context().Err()
		},
	}
}

type game struct {
	ctx    context.Context
	logger *zap.Logger
	cfg    config.Config

	camera   *raster.Camera
	frame    *raster.Frame
	renderer *ebitenrender.Renderer
	scene    *demo.Scene

	paused  bool
	drawHUD bool
}

func newGame(ctx context.Context, cfg config.Config) *game {

	logger, ctx := logging.SubFrom(ctx, "run")

	camera := raster.NewCamera(cfg.Window.Width, cfg.Window.Height)
	camera.SetLocalPositionVec(cfg.Camera.Eye)
	camera.Target = cfg.Camera.Target
	camera.SetFieldOfView(cfg.Camera.FOV)
	camera.SetClipPlanes(cfg.Camera.Near, cfg.Camera.Far)

	frame := raster.NewFrame(camera)
	renderer := ebitenrender.New(frame, logger)

	checker := renderer.NewCheckerTexture(64, 8, color.White, color.RGBA{170, 170, 170, 255})

	g := &game{
		ctx:      ctx,
		logger:   logger,
		cfg:      cfg,
		camera:   camera,
		frame:    frame,
		renderer: renderer,
		scene:    demo.Build(cfg.Scene, frame, checker),
	}

	logger.Info("scene built",
		zap.String("word", cfg.Scene.Word),
		zap.String("rider", cfg.Scene.Rider),
		zap.Int("children", len(g.scene.Root.Children())),
	)

	return g

}

func (g *game) Update() error {

	if g.ctx.Err() != nil || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.drawHUD = !g.drawHUD
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF4) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	if !g.paused {
		g.scene.Update(1 / float32(ebiten.TPS()))
	}

	return nil

}

func (g *game) Draw(screen *ebiten.Image) {

	screen.Fill(color.RGBA{60, 70, 80, 255})

	g.frame.Begin()
	g.scene.Root.Render(g.frame)
	g.renderer.Present(screen)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f  Tris: %d  Draws: %d\nF1: hierarchy  Space: pause  ESC: quit",
		ebiten.ActualFPS(), g.renderer.DrawnTris, g.frame.DrawCalls()))

	if g.drawHUD {
		text.Draw(screen, skatescene.HierarchyAsString(g.scene.Root), basicfont.Face7x13, 4, 48, color.RGBA{255, 220, 120, 255})
	}

}

func (g *game) Layout(w, h int) (int, int) {
	g.camera.Resize(w, h)
	return w, h
}
