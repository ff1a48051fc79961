package game

import (
	"log"
	"sync"
	"time"

	"mythduel/internal/combat"
	"mythduel/internal/config"
	"mythduel/internal/perf"

	"github.com/fsnotify/fsnotify"
	"github.com/hajimehoshi/ebiten/v2"
)

// simStep is the fixed simulation step. Ebiten ticks at 60 TPS; the
// simulation always advances by exactly this much per tick.
const simStep = 1.0 / 60.0

// Game is the ebiten shell around the combat director: it polls input,
// steps the simulation, plays audio cues and draws the snapshot.
type Game struct {
	cfg      *config.Config
	director *combat.Director
	input    *InputHandler
	renderer *Renderer
	audio    *AudioSystem
	perf     *perf.Monitor

	showPerf bool
	recorded bool

	configPath string
	watcher    *fsnotify.Watcher

	reloadMu   sync.Mutex
	pendingCfg *config.Config
}

// NewGame builds the shell and starts the config file watcher. configPath
// may be empty to disable hot reload.
func NewGame(cfg *config.Config, configPath string) *Game {
	g := &Game{
		cfg:        cfg,
		director:   combat.NewDirector(cfg),
		input:      NewInputHandler(),
		renderer:   NewRenderer(cfg),
		audio:      NewAudioSystem(),
		perf:       perf.NewMonitor(),
		configPath: configPath,
	}
	if configPath != "" {
		g.watchConfig()
	}
	return g
}

// watchConfig reloads the config file on change. The new config is staged
// and applied on the next reset so a live round is never retuned mid-fight.
func (g *Game) watchConfig() {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("Warning: config watcher unavailable: %v", err)
		return
	}
	if err := watcher.Add(g.configPath); err != nil {
		log.Printf("Warning: cannot watch %s: %v", g.configPath, err)
		watcher.Close()
		return
	}
	g.watcher = watcher

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				cfg, err := config.LoadConfig(g.configPath)
				if err != nil {
					log.Printf("Warning: config reload failed: %v", err)
					continue
				}
				g.reloadMu.Lock()
				g.pendingCfg = cfg
				g.reloadMu.Unlock()
				log.Printf("Config change staged; takes effect on next reset")
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("Warning: config watcher: %v", err)
			}
		}
	}()
}

// Update advances the game by one tick.
func (g *Game) Update() error {
	timer := g.perf.StartFrame()
	defer timer.EndFrame()

	in, ctl := g.input.Poll()
	if ctl.TogglePerf {
		g.showPerf = !g.showPerf
	}
	if ctl.Reset {
		g.reset()
	}

	g.director.Update(simStep, in)

	for _, event := range g.director.DrainEvents() {
		g.audio.Play(event)
		if event == combat.EventVictory {
			g.recordVictory()
		}
	}
	return nil
}

func (g *Game) reset() {
	g.reloadMu.Lock()
	pending := g.pendingCfg
	g.pendingCfg = nil
	g.reloadMu.Unlock()

	if pending != nil {
		g.cfg = pending
		g.director = combat.NewDirector(pending)
		g.renderer = NewRenderer(pending)
	} else {
		g.director.Reset()
	}
	g.recorded = false
}

func (g *Game) recordVictory() {
	if g.recorded {
		return
	}
	g.recorded = true

	records, err := LoadRecords()
	if err != nil {
		log.Printf("Warning: cannot load victory records: %v", err)
		records = &Records{}
	}
	healthLeft := int(g.director.Player().Health())
	entry := VictoryRecord{
		Score:      CalculateScore(healthLeft, g.director.MaxCombo(), g.director.Elapsed()),
		MaxCombo:   g.director.MaxCombo(),
		HealthLeft: healthLeft,
		Duration:   FormatDuration(g.director.Elapsed()),
		Date:       time.Now(),
	}
	if !IsRecord(records, entry.Score) {
		return
	}
	AddRecord(records, entry)
	if err := SaveRecords(records); err != nil {
		log.Printf("Warning: cannot save victory records: %v", err)
	}
}

// Draw renders the current snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.director.Snapshot())
	if g.showPerf {
		g.renderer.DrawPerf(screen, g.perf.Snapshot())
	}
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.GetScreenWidth(), g.cfg.GetScreenHeight()
}
