package network

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/charlie-adam/slitherio/shared/messages"
	"github.com/gorilla/websocket"
)

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateConnected
	StateError
)

// Client manages the WebSocket connection to the game server. Inbound events
// are decoded on a reader goroutine and handed to the frame loop through
// channels; the frame loop drains them non-blocking, so it never stalls on a
// quiet network. All shared fields are protected by mu.
type Client struct {
	mu sync.RWMutex

	state     ClientState
	lastError error
	conn      *websocket.Conn

	writeMu sync.Mutex

	configCh chan messages.GameConfig           // size-1
	foodCh   chan map[string]messages.FoodItem  // size-1; full replacement
	spawnCh  chan messages.InitPlayer
	deathCh  chan messages.DeathNotice // size-1; a newer notice supersedes
	tickCh   chan messages.TickUpdate  // size-1 buffered; latest wins
}

func NewClient() *Client {
	return &Client{
		state:    StateDisconnected,
		configCh: make(chan messages.GameConfig, 1),
		foodCh:   make(chan map[string]messages.FoodItem, 1),
		spawnCh:  make(chan messages.InitPlayer, 4),
		deathCh:  make(chan messages.DeathNotice, 1),
		tickCh:   make(chan messages.TickUpdate, 1),
	}
}

// Connect dials the server in a background goroutine. Address is host:port;
// the event stream lives at /ws.
func (c *Client) Connect(address string) {
	c.mu.Lock()
	c.state = StateConnecting
	c.lastError = nil
	c.mu.Unlock()

	go func() {
		conn, _, err := websocket.DefaultDialer.Dial("ws://"+address+"/ws", nil)
		if err != nil {
			c.setError(fmt.Errorf("connection failed: %w", err))
			return
		}

		log.Println("[client] connected to server")
		c.mu.Lock()
		c.conn = conn
		c.state = StateConnected
		c.mu.Unlock()

		c.readLoop(conn)
	}()
}

func (c *Client) readLoop(conn *websocket.Conn) {
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			log.Printf("[client] disconnected: %v", err)
			c.mu.Lock()
			if c.state != StateError {
				c.state = StateDisconnected
			}
			c.conn = nil
			c.mu.Unlock()
			return
		}

		env, err := messages.Decode(raw)
		if err != nil {
			log.Printf("[client] bad envelope: %v", err)
			continue
		}
		c.dispatch(env)
	}
}

func (c *Client) dispatch(env messages.Envelope) {
	switch env.Event {
	case messages.EventInitConfig:
		var conf messages.GameConfig
		if json.Unmarshal(env.Data, &conf) == nil {
			conf.ApplyDefaults()
			replace(c.configCh, conf)
		}

	case messages.EventInitFood:
		var food map[string]messages.FoodItem
		if json.Unmarshal(env.Data, &food) == nil {
			replace(c.foodCh, food)
		}

	case messages.EventInitPlayer:
		var sp messages.InitPlayer
		if json.Unmarshal(env.Data, &sp) == nil {
			select {
			case c.spawnCh <- sp:
			default:
			}
		}

	case messages.EventDeath:
		var d messages.DeathNotice
		if json.Unmarshal(env.Data, &d) == nil {
			replace(c.deathCh, d)
		}

	case messages.EventGameTick:
		var tick messages.TickUpdate
		if json.Unmarshal(env.Data, &tick) == nil {
			replace(c.tickCh, tick)
		}

	default:
		log.Printf("[client] unknown event %q", env.Event)
	}
}

// replace drains a stale value and pushes the latest; last write wins.
func replace[T any](ch chan T, v T) {
	select {
	case <-ch:
	default:
	}
	ch <- v
}

func (c *Client) Disconnect() {
	c.mu.Lock()
	conn := c.conn
	c.state = StateDisconnected
	c.conn = nil
	c.mu.Unlock()

	if conn != nil {
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		_ = conn.Close()
	}
}

func (c *Client) State() ClientState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Client) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

// PollConfig returns the init_config payload once, or nil. Non-blocking.
func (c *Client) PollConfig() *messages.GameConfig {
	select {
	case conf := <-c.configCh:
		return &conf
	default:
		return nil
	}
}

// PollFood returns the init_food full load once, or nil. Non-blocking.
func (c *Client) PollFood() map[string]messages.FoodItem {
	select {
	case food := <-c.foodCh:
		return food
	default:
		return nil
	}
}

// LatestTick returns the most recent game_tick, or nil. Non-blocking.
func (c *Client) LatestTick() *messages.TickUpdate {
	select {
	case tick := <-c.tickCh:
		return &tick
	default:
		return nil
	}
}

// DrainSpawns returns all pending init_player events, non-blocking.
func (c *Client) DrainSpawns() []messages.InitPlayer {
	return drainChan(c.spawnCh)
}

// DrainDeaths returns the pending death notice, if any, non-blocking.
func (c *Client) DrainDeaths() []messages.DeathNotice {
	return drainChan(c.deathCh)
}

func (c *Client) send(event string, data any) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil {
		return fmt.Errorf("not connected")
	}

	payload, err := messages.Encode(event, data)
	if err != nil {
		return fmt.Errorf("serialize %s: %w", event, err)
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return conn.WriteMessage(websocket.TextMessage, payload)
}

func (c *Client) SendInputUpdate(angle float64) error {
	return c.send(messages.EventInputUpdate, messages.InputUpdate{Angle: angle})
}

func (c *Client) SendBoostUpdate(boosting bool) error {
	return c.send(messages.EventBoostUpdate, messages.BoostUpdate{Boosting: boosting})
}

func (c *Client) SendEnterSpectator() error {
	return c.send(messages.EventEnterSpectator, struct{}{})
}

func (c *Client) SendRequestRespawn() error {
	return c.send(messages.EventRequestRespawn, struct{}{})
}

func (c *Client) SendCheatBoost(mass float64) error {
	return c.send(messages.EventCheatBoost, messages.CheatBoost{Mass: mass})
}

func (c *Client) setError(err error) {
	log.Printf("[client] error: %v", err)
	c.mu.Lock()
	c.state = StateError
	c.lastError = err
	c.mu.Unlock()
}

func drainChan[T any](ch chan T) []T {
	var out []T
	for {
		select {
		case v := <-ch:
			out = append(out, v)
		default:
			return out
		}
	}
}
