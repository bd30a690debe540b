package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/iamasit07/4-in-a-row/engine/internal/config"
	"github.com/iamasit07/4-in-a-row/engine/internal/event"
	"github.com/iamasit07/4-in-a-row/engine/internal/service/game"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found")
		}
	}

	cfg := config.LoadConfig()

	// flags override the environment
	flag.IntVar(&cfg.Rows, "rows", cfg.Rows, "number of board rows")
	flag.IntVar(&cfg.Columns, "cols", cfg.Columns, "number of board columns")
	flag.IntVar(&cfg.SearchDepth, "depth", cfg.SearchDepth, "search depth of the computer player")
	aiFirst := flag.Bool("ai-first", !cfg.HumanFirst, "let the computer make the first move")
	flag.Parse()
	cfg.HumanFirst = !*aiFirst

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	var publisher game.OutcomePublisher
	var producer *event.Producer
	if cfg.AnalyticsEnabled() {
		var err error
		producer, err = event.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			log.Printf("[KAFKA] Warning: %v. Game outcomes will not be published.", err)
		} else {
			defer producer.Close()
			publisher = producer
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	session := game.NewSession(game.SessionConfig{
		Rows:       cfg.Rows,
		Columns:    cfg.Columns,
		Depth:      cfg.SearchDepth,
		HumanFirst: cfg.HumanFirst,
	}, os.Stdin, os.Stdout, publisher)

	// reading a move blocks, so an interrupt has to end the process itself
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		cancel()
		log.Printf("[GAME] Game %s interrupted, exiting", session.GameID)
		if producer != nil {
			producer.Close()
		}
		os.Exit(130)
	}()

	if _, err := session.Run(ctx); err != nil {
		if errors.Is(err, game.ErrInputClosed) || errors.Is(err, context.Canceled) {
			log.Printf("[GAME] Game %s abandoned: %v", session.GameID, err)
			return
		}
		log.Fatalf("Game failed: %v", err)
	}
}
