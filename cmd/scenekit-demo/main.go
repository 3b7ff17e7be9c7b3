// scenekit-demo is a small terminal viewer for a scenekit world
// Move the cursor with the arrow keys or hjkl, press d to send a damage
// event to the entity under the cursor, r to repair it, q to quit
// Destruction cascades (blasts, respawns) play out through the normal
// event protocol and the view re-renders from scene queries only
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/veldware/scenekit/component"
	"github.com/veldware/scenekit/components"
	"github.com/veldware/scenekit/config"
	"github.com/veldware/scenekit/core"
	"github.com/veldware/scenekit/engine"
	"github.com/veldware/scenekit/event"
)

const defaultWorld = `
[[entity]]
name = "keep"
x = 10
y = 5
health = 10
respawn_health = 5

[[entity]]
name = "barrel"
x = 14
y = 5
health = 3
blast_radius = 3
blast_damage = 2

[[entity]]
name = "barrel2"
x = 17
y = 6
health = 3
blast_radius = 3
blast_damage = 2

[[entity]]
name = "watcher"
x = 22
y = 8
health = 6
mend = 2

[[entity]]
name = "brute"
x = 6
y = 9
health = 8
power = 4
`

func main() {
	worldPath := flag.String("world", "", "path to a TOML world file")
	verbose := flag.Bool("v", false, "log scene events to stderr")
	flag.Parse()

	world, err := loadWorld(*worldPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var opts []engine.Option
	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer logger.Sync()
		opts = append(opts, engine.WithLogger(logger))
	}

	scene, err := world.Build(opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(scene); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadWorld(path string) (*config.World, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.Parse(defaultWorld)
}

func run(scene *engine.Scene) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	cursor := core.Pt(10, 5)
	for {
		draw(screen, scene, cursor)

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
				return nil
			case ev.Key() == tcell.KeyLeft || ev.Rune() == 'h':
				cursor.X--
			case ev.Key() == tcell.KeyRight || ev.Rune() == 'l':
				cursor.X++
			case ev.Key() == tcell.KeyUp || ev.Rune() == 'k':
				cursor.Y--
			case ev.Key() == tcell.KeyDown || ev.Rune() == 'j':
				cursor.Y++
			case ev.Rune() == 'd':
				sendAt(scene, cursor, event.Damage(uuid.Nil, 3))
			case ev.Rune() == 'r':
				sendAt(scene, cursor, event.Repair(uuid.Nil, 2))
			}
		}
	}
}

// sendAt delivers ev to every entity on the cursor cell
func sendAt(scene *engine.Scene, at core.Point, ev event.Event) {
	for _, e := range scene.EntitiesIn(at, at) {
		e.SendEvent(ev)
	}
}

func draw(screen tcell.Screen, scene *engine.Scene, cursor core.Point) {
	screen.Clear()

	for _, e := range scene.Entities() {
		pos := e.Position()
		screen.SetContent(pos.X, pos.Y, glyph(e), nil, style(e))
	}
	screen.SetContent(cursor.X, cursor.Y, '+', nil,
		tcell.StyleDefault.Foreground(tcell.ColorYellow))

	status := fmt.Sprintf(" entities: %d | arrows/hjkl move, d damage, r repair, q quit ", scene.Len())
	for i, r := range status {
		screen.SetContent(i, 0, r, nil, tcell.StyleDefault.Reverse(true))
	}
	screen.Show()
}

func glyph(e *engine.Entity) rune {
	switch {
	case e.Component(component.KindBlast) != nil:
		return '*'
	case e.Component(component.KindSpawner) != nil:
		return '@'
	case e.Component(component.KindHealth) != nil:
		return 'o'
	default:
		return '.'
	}
}

func style(e *engine.Entity) tcell.Style {
	h, ok := e.Component(component.KindHealth).(*components.HealthComponent)
	if !ok {
		return tcell.StyleDefault
	}
	switch {
	case h.HP()*3 <= h.Max():
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	case h.HP()*3 <= h.Max()*2:
		return tcell.StyleDefault.Foreground(tcell.ColorOlive)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	}
}
