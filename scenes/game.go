package scenes

import (
	"log"
	"sync"

	cfg "github.com/charlie-adam/slitherio/config"
	"github.com/charlie-adam/slitherio/network"
	"github.com/charlie-adam/slitherio/systems"
	"github.com/charlie-adam/slitherio/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameScene owns the in-game world: it drains network events into the ECS
// state, advances the frame systems, and paints the layered scene. The frame
// loop never blocks on the network; with no fresh snapshot the previous
// authoritative state is reused and only interpolation and the camera keep
// advancing.
type GameScene struct {
	ecsWorld     *ecs.ECS
	sceneChanger SceneChanger
	netClient    *network.Client
	once         sync.Once
}

func NewGameScene(sc SceneChanger, client *network.Client) *GameScene {
	return &GameScene{
		sceneChanger: sc,
		netClient:    client,
	}
}

func (gs *GameScene) Update() {
	gs.once.Do(gs.configure)

	state := gs.netClient.State()
	if state == network.StateDisconnected || state == network.StateError {
		log.Println("[game] disconnected, returning to menu")
		gs.netClient.Disconnect()
		gs.sceneChanger.ChangeScene(NewMenuScene(gs.sceneChanger))
		return
	}

	gs.drainNetwork()
	gs.ecsWorld.Update()
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Background)

	if gs.ecsWorld == nil {
		return
	}
	gs.ecsWorld.Draw(screen)
}

// drainNetwork applies everything the reader goroutine queued since the last
// frame. All applications are last-write-wins mutations of ECS state.
func (gs *GameScene) drainNetwork() {
	if conf := gs.netClient.PollConfig(); conf != nil {
		systems.ApplyConfig(gs.ecsWorld, *conf)
	}
	if food := gs.netClient.PollFood(); food != nil {
		systems.ApplyInitFood(gs.ecsWorld, food)
	}
	for _, spawn := range gs.netClient.DrainSpawns() {
		systems.HandleSpawn(gs.ecsWorld, spawn)
	}
	for _, death := range gs.netClient.DrainDeaths() {
		systems.HandleDeath(gs.ecsWorld, death)
	}
	if tick := gs.netClient.LatestTick(); tick != nil {
		systems.ApplyTick(gs.ecsWorld, *tick)
	}
}

func (gs *GameScene) configure() {
	gs.ecsWorld = ecs.NewECS(donburi.NewWorld())

	factory.CreateClock(gs.ecsWorld)
	factory.CreateArena(gs.ecsWorld)
	factory.CreateSession(gs.ecsWorld)
	factory.CreateCamera(gs.ecsWorld)
	factory.CreateInput(gs.ecsWorld)

	gs.ecsWorld.AddSystem(systems.UpdateClock)
	gs.ecsWorld.AddSystem(systems.NewInputSystem(gs.netClient))
	gs.ecsWorld.AddSystem(systems.NewSessionSystem(gs.netClient))
	gs.ecsWorld.AddSystem(systems.UpdateInterpolation)
	gs.ecsWorld.AddSystem(systems.UpdateCamera)

	gs.ecsWorld.AddRenderer(cfg.Default, systems.DrawArena)
	gs.ecsWorld.AddRenderer(cfg.Default, systems.DrawFood)
	gs.ecsWorld.AddRenderer(cfg.Default, systems.DrawPlayers)
	gs.ecsWorld.AddRenderer(cfg.Default, systems.DrawMinimap)
	gs.ecsWorld.AddRenderer(cfg.Default, systems.DrawLeaderboard)
	gs.ecsWorld.AddRenderer(cfg.Default, systems.DrawStatus)
	gs.ecsWorld.AddRenderer(cfg.Default, systems.DrawDeathOverlay)
}
