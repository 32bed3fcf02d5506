package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/urm/api"
	"github.com/sarchlab/urm/core"
	"github.com/sarchlab/urm/synth"
)

var (
	n    = flag.Int("n", 5, "compute n!")
	list = flag.Bool("list", false, "print the synthesized program")
)

func main() {
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	program := synth.Factorial()
	fmt.Printf("factorial: %d instructions, %d registers\n",
		program.Len(), program.Footprint())
	if *list {
		core.PrintProgram(program)
	}

	engine := sim.NewSerialEngine()

	driver := api.DriverBuilder{}.
		WithEngine(engine).
		WithFreq(1 * sim.GHz).
		Build("Driver")

	driver.MapProgram(program)
	if err := driver.FeedIn([]int{*n}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}

	result, err := driver.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}

	fmt.Printf("%d! = %d\n", *n, result)
	fmt.Printf("simulated time: %v s\n", float64(engine.CurrentTime()))

	if want := factorial(*n); result != want {
		fmt.Fprintf(os.Stderr, "expected %d\n", want)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}

func factorial(n int) int {
	if n == 0 {
		return 1
	}

	return n * factorial(n-1)
}
