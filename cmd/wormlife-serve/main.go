package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wormlife/internal/app"
	"wormlife/internal/core"
	"wormlife/internal/platform/logger"
	"wormlife/internal/server"
	"wormlife/pkg/engine"
)

func main() {
	log := logger.New("wormlife-serve")

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	ecfg, err := cfg.Engine()
	if err != nil {
		log.Fatal("%v", err)
	}
	sim, err := engine.New(ecfg)
	if err != nil {
		log.Fatal("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := server.NewHub(log)
	go hub.Run(ctx)
	go stepLoop(ctx, sim, hub, cfg.TPS, log)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", hub.ServeWS)

	srv := &http.Server{Addr: cfg.Addr, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Info("%dx%d %s grid, %d wormholes, %d steps/s, listening on %s",
		ecfg.Size.W, ecfg.Size.H, ecfg.Boundary, len(ecfg.Wormholes), cfg.TPS, cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("%v", err)
	}
}

// stepLoop advances the simulation at a fixed rate and broadcasts each new
// generation. It keeps broadcasting the final frame once halted so late
// clients still see the board.
func stepLoop(ctx context.Context, sim *engine.Simulation, hub *server.Hub, tps int, log *logger.Logger) {
	pacer := core.NewPacer(tps)
	announced := false
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		if !pacer.ShouldStep() {
			time.Sleep(time.Millisecond)
			continue
		}
		gen := sim.Step()
		hub.Broadcast(server.NewFrame(gen, sim.IsStable()))
		if sim.Halted() && !announced {
			announced = true
			log.Info("simulation halted at step %d, population %d", sim.Steps(), gen.Population())
		}
	}
}
