// Command simulate steps a scripted player through a level without a window
// and prints what the character did.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/milk9111/jank/controller"
	"github.com/milk9111/jank/script"
	"github.com/milk9111/jank/stage"
)

func main() {
	levelName := flag.String("level", "", "level name in levels/ (basename, .json optional)")
	playerFile := flag.String("player", "", "player prefab in prefabs/ (default player.yaml)")
	scriptName := flag.String("script", "demo", "tengo script in prefabs/scripts/")
	frames := flag.Int("frames", 600, "number of frames to simulate")
	dt := flag.Float64("dt", 1.0/60, "seconds per frame")
	verbose := flag.Bool("v", false, "print the character every frame")
	flag.Parse()

	log.SetFlags(0)
	if *frames <= 0 || *dt <= 0 {
		log.Fatal("simulate: -frames and -dt must be positive")
	}

	st, err := stage.Load(*levelName, *playerFile)
	if err != nil {
		log.Fatal(err)
	}
	runner, err := script.Load(*scriptName)
	if err != nil {
		log.Fatal(err)
	}
	c, err := st.NewCharacter(nil)
	if err != nil {
		log.Fatal(err)
	}

	frame := 0
	c.Machine().Logf = func(format string, args ...any) {
		fmt.Printf("%5d  %s\n", frame, fmt.Sprintf(format, args...))
	}

	var last controller.CollisionData
	for ; frame < *frames; frame++ {
		in, err := runner.Next(script.FrameOf(frame, *dt, c))
		if err != nil {
			log.Fatal(err)
		}
		c.Update(*dt, in)

		col := c.Collisions()
		if contacts(col) != contacts(last) {
			fmt.Printf("%5d  contacts %s\n", frame, col)
		}
		last = col
		if *verbose {
			fmt.Printf("%5d  %s\n", frame, c)
		}
		if st.OutOfBounds(c.Position()) {
			fmt.Printf("%5d  fell out of the level at %v\n", frame, c.Position())
			os.Exit(1)
		}
	}
	fmt.Printf("after %d frames (%.2fs): %s\n", *frames, float64(*frames)*(*dt), c)
}

// contacts drops the slope bookkeeping so only touching changes are printed.
func contacts(c controller.CollisionData) [6]bool {
	return [6]bool{c.Above, c.Below, c.Left, c.Right, c.ClimbingSlope, c.DescendingSlope}
}
