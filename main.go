package main

import (
	"flag"
	"image"
	"log"

	"github.com/charlie-adam/slitherio/config"
	"github.com/charlie-adam/slitherio/fonts"
	"github.com/charlie-adam/slitherio/network"
	"github.com/charlie-adam/slitherio/scenes"
	"github.com/charlie-adam/slitherio/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	fonts.LoadFont(fonts.Sans, goregular.TTF)
	fonts.LoadFontWithSize(fonts.SansSmall, goregular.TTF, 11)
	fonts.LoadFontWithSize(fonts.SansTitle, goregular.TTF, 32)

	g := &Game{
		bounds: image.Rectangle{},
	}
	if config.Debug.SkipMenu {
		client := network.NewClient()
		client.Connect(config.Debug.Address)
		g.scene = scenes.NewGameScene(g, client)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}
	return g
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
	flag.StringVar(&config.Debug.Address, "address", config.Debug.Address, "default server address")
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", config.Debug.SkipMenu, "connect immediately, bypassing the menu")
	flag.Parse()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
