package game

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
	"github.com/iamasit07/4-in-a-row/engine/internal/event"
	"github.com/iamasit07/4-in-a-row/engine/internal/render"
	"github.com/iamasit07/4-in-a-row/engine/internal/service/bot"
	"github.com/iamasit07/4-in-a-row/engine/pkg/uid"
)

const ErrInputClosed domain.Error = "input closed before the game finished"

type SessionConfig struct {
	Rows       int
	Columns    int
	Depth      int
	HumanFirst bool
}

// OutcomePublisher receives the result of every finished game.
type OutcomePublisher interface {
	PublishOutcome(ev event.GameFinishedEvent) error
}

// Session plays one human-vs-computer game over a text stream.
type Session struct {
	GameID    string
	Game      *domain.Game
	CreatedAt time.Time
	cfg       SessionConfig
	in        *bufio.Scanner
	out       io.Writer
	publisher OutcomePublisher
}

// NewSession prepares a fresh game. publisher may be nil.
func NewSession(cfg SessionConfig, in io.Reader, out io.Writer, publisher OutcomePublisher) *Session {
	first := domain.Human
	if !cfg.HumanFirst {
		first = domain.Computer
	}

	return &Session{
		GameID:    uid.GenerateGameID(),
		Game:      domain.NewGame(cfg.Rows, cfg.Columns, first),
		CreatedAt: time.Now(),
		cfg:       cfg,
		in:        bufio.NewScanner(in),
		out:       out,
		publisher: publisher,
	}
}

// Run alternates turns until the game ends. Cancellation is only
// observed between turns; a running search always completes.
func (s *Session) Run(ctx context.Context) (domain.Outcome, error) {
	log.Printf("[GAME] Started game %s (%dx%d, depth %d, first: %s)",
		s.GameID, s.cfg.Rows, s.cfg.Columns, s.cfg.Depth, s.Game.CurrentPlayer)

	if err := render.Board(s.out, s.Game.Board); err != nil {
		return s.Game.Outcome(), fmt.Errorf("failed to render board: %w", err)
	}

	for !s.Game.IsFinished() {
		if err := ctx.Err(); err != nil {
			log.Printf("[GAME] Game %s interrupted: %v", s.GameID, err)
			return s.Game.Outcome(), err
		}

		var err error
		if s.Game.CurrentPlayer == domain.Human {
			err = s.humanTurn()
		} else {
			err = s.computerTurn()
		}
		if err != nil {
			return s.Game.Outcome(), err
		}

		if err := render.Board(s.out, s.Game.Board); err != nil {
			return s.Game.Outcome(), fmt.Errorf("failed to render board: %w", err)
		}
	}

	outcome := s.Game.Outcome()
	s.announce(outcome)
	s.publish(outcome)
	return outcome, nil
}

func (s *Session) humanTurn() error {
	for {
		fmt.Fprintf(s.out, "Player's turn. Enter column (0-%d): ", s.cfg.Columns-1)

		if !s.in.Scan() {
			if err := s.in.Err(); err != nil {
				return fmt.Errorf("failed to read move: %w", err)
			}
			return ErrInputClosed
		}

		column, err := strconv.Atoi(strings.TrimSpace(s.in.Text()))
		if err == nil {
			err = s.Game.MakeMove(column)
		}
		if err != nil {
			fmt.Fprintln(s.out, "Invalid move. Try again.")
			continue
		}
		return nil
	}
}

func (s *Session) computerTurn() error {
	fmt.Fprintln(s.out, "AI's turn.")

	start := time.Now()
	result := bot.Analyze(s.Game.Board, s.cfg.Depth)
	log.Printf("[BOT] Game %s: column %d (score %d, %d nodes, %s)",
		s.GameID, result.Column, result.Score, result.Nodes, time.Since(start).Round(time.Millisecond))

	if err := s.Game.MakeMove(result.Column); err != nil {
		return fmt.Errorf("computer move %d rejected: %w", result.Column, err)
	}
	return nil
}

func (s *Session) announce(outcome domain.Outcome) {
	switch {
	case outcome.Status == domain.StatusWon && outcome.Winner == domain.Human:
		fmt.Fprintln(s.out, "Player wins!")
	case outcome.Status == domain.StatusWon:
		fmt.Fprintln(s.out, "AI wins!")
	default:
		fmt.Fprintln(s.out, "The game is a draw.")
	}
	log.Printf("[GAME] Game %s finished after %d moves: %s", s.GameID, s.Game.MoveCount, winnerName(outcome))
}

func (s *Session) publish(outcome domain.Outcome) {
	if s.publisher == nil {
		return
	}

	ev := event.GameFinishedEvent{
		Event:    event.EventGameOver,
		GameID:   s.GameID,
		Winner:   winnerName(outcome),
		Moves:    s.Game.MoveCount,
		Depth:    s.cfg.Depth,
		Duration: time.Since(s.CreatedAt).Seconds(),
	}
	if err := s.publisher.PublishOutcome(ev); err != nil {
		log.Printf("[GAME] Error publishing outcome of game %s: %v", s.GameID, err)
	}
}

func winnerName(outcome domain.Outcome) string {
	if outcome.Status == domain.StatusWon {
		return outcome.Winner.String()
	}
	return string(domain.StatusDraw)
}
