package main

import (
	"image"
	"log"
	"os"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
	"github.com/automoto/ironsight/config"
	"github.com/automoto/ironsight/fonts"
	"github.com/automoto/ironsight/scenes"
	"github.com/automoto/ironsight/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Close()
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame() (*Game, error) {
	if err := fonts.LoadFont(fonts.HUD, goregular.TTF, config.HUD.FontSize); err != nil {
		return nil, err
	}
	if err := fonts.LoadFont(fonts.HUDSmall, goregular.TTF, config.HUD.SmallFontSize); err != nil {
		return nil, err
	}

	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewArenaScene(),
	}, nil
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	userCfg := config.FindUserConfig(os.Args[1:])
	jsonPaths, yamlPaths, tomlPaths := config.ConfigCandidatePaths(userCfg)

	var cli config.CLI
	kong.Parse(&cli,
		kong.Name("ironsight"),
		kong.Description("Top-down arena shooter"),
		kong.UsageOnError(),
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)
	config.Settings.Enabled = !cli.NoPersist

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("ironsight")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(saved)
	}
	cli.Apply()
	if cli.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	game, err := NewGame()
	if err != nil {
		log.Fatal(err)
	}

	err = ebiten.RunGame(game)
	game.scene.Close()
	if err != nil {
		log.Fatal(err)
	}
}
