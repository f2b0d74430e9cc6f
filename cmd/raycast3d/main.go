package main

import (
	"fmt"
	"os"
	"runtime/pprof"
	"strconv"

	"github.com/lukaszgryglicki/raycast3d/internal/raycast3d"
)

func main() {
	raycast3d.Debug = os.Getenv("DEBUG") != ""
	raycast3d.RAW = os.Getenv("RAW") != ""
	if w := os.Getenv("WORKERS"); w != "" {
		n, err := strconv.Atoi(w)
		if err != nil {
			fmt.Printf("Error: WORKERS=%q: %v\n", w, err)
			os.Exit(1)
		}
		raycast3d.Workers = n
	}
	profile := os.Getenv("PROFILE") != ""
	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	cfg := ""
	if len(os.Args) > 1 {
		cfg = os.Args[1]
	}
	if err := raycast3d.Run(cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
