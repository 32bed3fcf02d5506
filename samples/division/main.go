package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/urm/api"
	"github.com/sarchlab/urm/synth"
	valgen "github.com/sarchlab/urm/util"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr,
		&slog.HandlerOptions{Level: slog.LevelWarn})))

	engine := sim.NewSerialEngine()

	driver := api.DriverBuilder{}.
		WithEngine(engine).
		WithFreq(1 * sim.GHz).
		WithMaxSteps(50_000_000).
		Build("Driver")

	driver.MapProgram(synth.Div())

	rng := rand.New(rand.NewSource(1))
	dividends := valgen.Take(valgen.MakeRandomGen(rng, 0, 30), 4)
	divisors := valgen.Take(valgen.MakeIncreasingGen(0), 4)

	failed := false
	for i := range dividends {
		x, d := dividends[i], divisors[i]
		if err := driver.FeedIn([]int{x, d}); err != nil {
			fmt.Fprintln(os.Stderr, err)
			atexit.Exit(1)
		}

		got, err := driver.Run()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			atexit.Exit(1)
		}

		want := (x + d - 1) / d
		status := "ok"
		if got != want {
			status = fmt.Sprintf("expected %d", want)
			failed = true
		}
		fmt.Printf("ceil(%d / %d) = %d  %s\n", x, d, got, status)
	}

	if failed {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
