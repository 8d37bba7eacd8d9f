package main

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/jank/character"
	"github.com/milk9111/jank/common"
	"github.com/milk9111/jank/levels"
	"github.com/milk9111/jank/obj"
	"github.com/milk9111/jank/prefabs"
	"github.com/milk9111/jank/script"
	"github.com/milk9111/jank/stage"
	"golang.design/x/clipboard"
)

var backgroundColor = color.RGBA{R: 0x14, G: 0x16, B: 0x1c, A: 0xff}

type Game struct {
	frames int
	paused bool
	debug  bool

	input  *obj.Input
	camera *obj.Camera
	stage  *stage.Stage
	level  *obj.Level
	player *obj.Player
	char   *character.Character

	scriptName string
	runner     *script.Runner
	// scriptFrame counts frames since the script was (re)loaded
	scriptFrame int

	watcher   *prefabs.Watcher
	pauseUI   *ebitenui.UI
	tuning    *widget.Text
	clipboard bool
}

func NewGame(levelName, playerFile, scriptName string, debug bool) (*Game, error) {
	st, err := stage.Load(levelName, playerFile)
	if err != nil {
		return nil, err
	}

	g := &Game{
		debug:      debug,
		input:      obj.NewInput(),
		camera:     obj.NewCamera(common.BaseWidth, common.BaseHeight, 1),
		stage:      st,
		level:      obj.NewLevel(st.Level),
		player:     obj.NewPlayer(st.Spec.Animation),
		scriptName: scriptName,
	}
	if err := g.spawn(); err != nil {
		return nil, err
	}

	if scriptName != "" {
		if g.runner, err = script.Load(scriptName); err != nil {
			return nil, err
		}
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
	} else {
		g.clipboard = true
	}

	// hot reload is best effort; the embedded copies still work without it
	if w, err := prefabs.NewWatcher("prefabs", filepath.Join("prefabs", "scripts"), "levels"); err != nil {
		log.Printf("hot reload disabled: %v", err)
	} else {
		g.watcher = w
	}

	g.pauseUI = NewPauseUI(g)
	return g, nil
}

// spawn puts a fresh character at the level's spawn point.
func (g *Game) spawn() error {
	c, err := g.stage.NewCharacter(g.player.Animator)
	if err != nil {
		return err
	}
	c.Machine().Logf = log.Printf
	c.Controller().RecordRays = g.debug
	g.char = c

	g.camera.SetWorldBounds(g.stage.World.Bounds())
	g.camera.SnapTo(c.Position())
	return nil
}

// Reset moves the character back to spawn and restarts the script.
func (g *Game) Reset() {
	if err := g.spawn(); err != nil {
		log.Printf("reset: %v", err)
	}
	g.scriptFrame = 0
	if g.runner != nil {
		g.runner.Reset()
	}
}

func (g *Game) Update() error {
	g.input.Update()
	if g.input.PausePressed {
		g.paused = !g.paused
		g.tuning.Label = g.tuningSummary()
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.frames++
	g.reload()

	if g.input.DebugPressed {
		g.debug = !g.debug
		g.char.Controller().RecordRays = g.debug
	}
	if g.input.DumpPressed {
		g.dump()
	}

	in := g.input.Input
	if g.runner != nil {
		dt := 1 / float64(ebiten.TPS())
		next, err := g.runner.Next(script.FrameOf(g.scriptFrame, dt, g.char))
		if err != nil {
			log.Printf("%v; back to manual input", err)
			g.runner = nil
		} else {
			in = next
		}
		g.scriptFrame++
	}

	g.char.Update(1/float64(ebiten.TPS()), in)
	if g.stage.OutOfBounds(g.char.Position()) {
		log.Printf("fell out of %s, respawning", g.stage.LevelName)
		g.Reset()
	}
	g.player.Update()
	g.camera.Update(g.char.Position())
	return nil
}

// reload drains the file watcher without blocking.
func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reloadFile(path)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reloadFile(path string) {
	name := filepath.Base(path)
	switch prefabs.Kind(path) {
	case prefabs.KindSpec:
		if name != prefabs.PlayerFile && name != g.stage.Spec.Name+".yaml" {
			return
		}
		spec, err := prefabs.LoadPlayerSpec(name)
		if err != nil {
			log.Printf("reload %s: %v", name, err)
			return
		}
		if err := g.char.ApplyConfig(spec.Config()); err != nil {
			log.Printf("reload %s: %v", name, err)
			return
		}
		g.stage.Spec = spec
		g.player.Load(spec.Animation)
		g.player.Animator.Play(g.char.AnimationLabel())
		log.Printf("reloaded %s", name)
	case prefabs.KindScript:
		if g.scriptName == "" || strings.TrimSuffix(name, ".tengo") != strings.TrimSuffix(filepath.Base(g.scriptName), ".tengo") {
			return
		}
		r, err := script.Load(g.scriptName)
		if err != nil {
			log.Printf("reload %s: %v", name, err)
			return
		}
		g.runner = r
		g.scriptFrame = 0
		log.Printf("reloaded %s", name)
	case prefabs.KindLevel:
		current := g.stage.LevelName
		if current == "" {
			current = levels.DefaultLevel
		}
		if strings.TrimSuffix(name, ".json") != strings.TrimSuffix(filepath.Base(current), ".json") {
			return
		}
		lvl, err := levels.Load(name)
		if err != nil {
			log.Printf("reload %s: %v", name, err)
			return
		}
		pos := g.char.Position()
		g.stage.SetLevel(lvl)
		g.level = obj.NewLevel(lvl)
		if err := g.spawn(); err != nil {
			log.Printf("reload %s: %v", name, err)
			return
		}
		g.char.Teleport(pos)
		log.Printf("reloaded %s", name)
	}
}

// dump copies the character state to the clipboard for bug reports.
func (g *Game) dump() {
	s := fmt.Sprintf("frame=%d level=%s %s", g.frames, g.stage.LevelName, g.char)
	log.Print(s)
	if g.clipboard {
		clipboard.Write(clipboard.FmtText, []byte(s))
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	g.level.Draw(screen, g.camera)
	g.player.Draw(screen, g.camera, g.char.Bounds())

	if g.debug {
		obj.DebugDraw(screen, g.stage.World.Space(), g.camera)
		obj.DrawRays(screen, g.camera, g.char.Controller().Rays())
		obj.DrawBounds(screen, g.camera, g.char.Bounds())
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f\n%s\nslope=%.1f",
		g.frames, ebiten.ActualFPS(), g.char, g.char.Collisions().SlopeAngle))

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close stops the file watcher.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}
