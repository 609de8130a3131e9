package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"time"

	"torus-life/internal/core"
	"torus-life/internal/sims/life"
)

func main() {
	width := flag.Int("w", 64, "grid width in cells")
	height := flag.Int("h", 64, "grid height in cells")
	steps := flag.Int("steps", 200, "generations to run (0 = run until interrupted)")
	seed := flag.Int64("seed", 0, "randomize with this seed instead of the default pattern")
	pattern := flag.String("pattern", "", "stamp this pattern on a cleared grid at startup")
	tps := flag.Int("tps", 0, "animate in the terminal at this rate (0 = benchmark mode)")
	showBoard := flag.Bool("render", false, "print the final board in benchmark mode")
	timing := flag.Bool("timing", false, "log per-step timing to stderr")
	flag.Parse()

	logger := log.New(os.Stderr, "life-term ", log.LstdFlags)

	u := life.Config{Width: uint32(*width), Height: uint32(*height)}.New()
	u.SetLogger(logger)
	if *timing {
		u.SetTimingLog(logger)
	}

	switch {
	case *pattern != "":
		if !slices.Contains(life.Patterns(), *pattern) {
			logger.Fatalf("unknown pattern %q (known: %v)", *pattern, life.Patterns())
		}
		u.Clear()
		u.SetPattern(*pattern, 0, 0)
	case *seed != 0:
		u.Reset(*seed)
	}

	if *tps > 0 {
		animate(u, *steps, *tps)
		return
	}

	start := time.Now()
	for i := 0; i < *steps; i++ {
		u.Step()
	}
	elapsed := time.Since(start)
	perStep := time.Duration(0)
	if *steps > 0 {
		perStep = elapsed / time.Duration(*steps)
	}
	fmt.Printf("%dx%d: %d generations in %s (%s/step), population %d\n",
		u.Width(), u.Height(), *steps, elapsed.Round(time.Microsecond), perStep, u.Population())
	if *showBoard {
		fmt.Print(u.Render())
	}
}

// animate redraws the board at a fixed rate until the generation budget is
// spent.
func animate(u *life.Universe, steps, tps int) {
	pacer := core.NewFixedStep(tps)
	for done := 0; steps == 0 || done < steps; {
		if pacer.ShouldStep() {
			fmt.Print("\x1b[H\x1b[2J")
			fmt.Print(u.Render())
			fmt.Printf("generation %d  population %d\n", u.Generation(), u.Population())
			u.Step()
			done++
			continue
		}
		time.Sleep(time.Millisecond)
	}
}
