package event

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/IBM/sarama"
)

const EventGameOver = "GAME_OVER"

// GameFinishedEvent is emitted once per finished game.
type GameFinishedEvent struct {
	Event    string  `json:"event"`
	GameID   string  `json:"gameId"`
	Winner   string  `json:"winner"` // "player", "ai" or "draw"
	Moves    int     `json:"moves"`
	Depth    int     `json:"depth"`
	Duration float64 `json:"duration_seconds"`
}

type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

func NewProducer(brokers []string, topic string) (*Producer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5

	// SASL over TLS when credentials are provided
	if user := os.Getenv("KAFKA_USER"); user != "" {
		config.Net.SASL.Enable = true
		config.Net.SASL.User = user
		config.Net.SASL.Password = os.Getenv("KAFKA_PASSWORD")
		config.Net.SASL.Mechanism = sarama.SASLTypeSCRAMSHA256
		config.Net.TLS.Enable = true
		config.Net.TLS.Config = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	p, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	log.Printf("[KAFKA] Producer connected to %v (topic %s)", brokers, topic)
	return NewProducerFromSync(p, topic), nil
}

// NewProducerFromSync wraps an existing sync producer.
func NewProducerFromSync(p sarama.SyncProducer, topic string) *Producer {
	return &Producer{producer: p, topic: topic}
}

// PublishOutcome sends ev keyed by its game ID.
func (p *Producer) PublishOutcome(ev GameFinishedEvent) error {
	if ev.Event == "" {
		ev.Event = EventGameOver
	}

	val, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(ev.GameID),
		Value: sarama.ByteEncoder(val),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to send event for game %s: %w", ev.GameID, err)
	}

	log.Printf("[KAFKA] Event sent for game %s (partition %d, offset %d)", ev.GameID, partition, offset)
	return nil
}

func (p *Producer) Close() error {
	return p.producer.Close()
}
