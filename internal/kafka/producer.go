package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"

	"github.com/partshub/catalog-service/internal/config"
	"github.com/partshub/catalog-service/internal/models"
	"github.com/partshub/catalog-service/internal/usecase"
)

type publisher struct {
	writer *kafka.Writer
}

// NewPublisher returns the part-change event producer. With Kafka
// disabled it degrades to a logging noop so catalog writes keep working.
func NewPublisher(lc fx.Lifecycle, conf *config.Config) usecase.EventPublisher {
	if !conf.Kafka.Enabled {
		return &noopPublisher{}
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(conf.Kafka.Brokers...),
		Topic:    conf.Kafka.Topic,
		Balancer: &kafka.LeastBytes{},
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return writer.Close()
		},
	})

	return &publisher{writer: writer}
}

func (p *publisher) PublishPartChange(ctx context.Context, event models.PartChangeEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Data.PartID),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	return nil
}

type noopPublisher struct{}

func (noopPublisher) PublishPartChange(ctx context.Context, event models.PartChangeEvent) error {
	log.Debugw(ctx, "Kafka disabled, dropping part change event",
		"part_id", event.Data.PartID,
		"action", event.Data.Action,
	)
	return nil
}
