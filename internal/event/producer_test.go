package event

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/google/go-cmp/cmp"
)

func TestPublishOutcome(t *testing.T) {
	mock := mocks.NewSyncProducer(t, nil)
	want := GameFinishedEvent{
		Event:    EventGameOver,
		GameID:   "game-1",
		Winner:   "ai",
		Moves:    17,
		Depth:    7,
		Duration: 12.5,
	}

	mock.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var got GameFinishedEvent
		if err := json.Unmarshal(val, &got); err != nil {
			return err
		}
		if diff := cmp.Diff(want, got); diff != "" {
			return fmt.Errorf("unexpected event (-want +got):\n%s", diff)
		}
		return nil
	})

	p := NewProducerFromSync(mock, "game-events")
	ev := want
	ev.Event = ""
	if err := p.PublishOutcome(ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}
}

func TestPublishOutcomeFailure(t *testing.T) {
	mock := mocks.NewSyncProducer(t, nil)
	mock.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := NewProducerFromSync(mock, "game-events")
	err := p.PublishOutcome(GameFinishedEvent{GameID: "game-2", Winner: "draw"})
	if !errors.Is(err, sarama.ErrOutOfBrokers) {
		t.Fatalf("expected wrapped broker error, got %v", err)
	}
	p.Close()
}
