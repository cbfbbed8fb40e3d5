package scenes

import (
	"image/color"
	"sync"

	"github.com/charlie-adam/slitherio/network"
	"github.com/charlie-adam/slitherio/systems"
	"github.com/charlie-adam/slitherio/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene shows the connect screen and hands a live client to the game
// scene once the socket is up.
type MenuScene struct {
	sceneChanger SceneChanger
	menuUI       *ui.MenuUI
	netClient    *network.Client
	once         sync.Once
}

func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)

	ms.menuUI.Update()

	if ms.netClient == nil {
		return
	}
	switch ms.netClient.State() {
	case network.StateConnected:
		client := ms.netClient
		ms.netClient = nil
		ms.sceneChanger.ChangeScene(NewGameScene(ms.sceneChanger, client))

	case network.StateError:
		errMsg := "Connection failed"
		if err := ms.netClient.LastError(); err != nil {
			errMsg = err.Error()
		}
		ms.menuUI.SetStatus(errMsg)
		ms.menuUI.SetConnecting(false)
		ms.netClient.Disconnect()
		ms.netClient = nil

	case network.StateConnecting:
		ms.menuUI.SetStatus("Connecting...")
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ms.menuUI == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	defaultAddress := "localhost:5001"
	if profile, err := systems.LoadProfile(); err == nil && profile != nil && profile.Address != "" {
		defaultAddress = profile.Address
	}

	ms.menuUI = ui.NewMenuUI(defaultAddress, func(address string) {
		if ms.netClient != nil {
			return // already connecting
		}
		systems.SaveProfile(systems.SavedProfile{Address: address})
		ms.menuUI.SetConnecting(true)
		ms.netClient = network.NewClient()
		ms.netClient.Connect(address)
	})
}
