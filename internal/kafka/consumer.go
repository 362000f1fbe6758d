package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"runtime"
	"time"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"

	"github.com/partshub/catalog-service/internal/config"
	"github.com/partshub/catalog-service/internal/models"
	"github.com/partshub/catalog-service/internal/usecase"
	"github.com/partshub/catalog-service/pkg/util"
)

const consumeTimeout = 30 * time.Second

// StartConsumeEvents subscribes to part-change events and reloads live
// browse sessions when the catalog changes underneath them.
func StartConsumeEvents(
	sd fx.Shutdowner,
	lc fx.Lifecycle,
	conf *config.Config,
	browseUsecase usecase.BrowseUsecase,
) error {
	if !conf.Kafka.Enabled {
		log.Warnf(context.Background(), "Kafka consumer is disabled in configuration")
		return nil
	}

	metrics, err := util.GetHistogramVec("kafka_events_consumed", "status", "topic", "group")
	if err != nil {
		return fmt.Errorf("get histogram vec: %w", err)
	}

	c := &consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:     conf.Kafka.Brokers,
			GroupID:     conf.Kafka.GroupID,
			Topic:       conf.Kafka.Topic,
			StartOffset: kafka.LastOffset,
		}),
		metrics:       metrics,
		browseUsecase: browseUsecase,
		done:          make(chan struct{}),
	}

	runCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := c.run(runCtx); err != nil {
					log.Errorw(runCtx, "Kafka consumer stopped with error", "error", err)
					_ = sd.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			close(c.done)
			return c.reader.Close()
		},
	})
	return nil
}

type consumer struct {
	reader        *kafka.Reader
	metrics       *prometheus.HistogramVec
	browseUsecase usecase.BrowseUsecase
	done          chan struct{}
}

func (c *consumer) run(ctx context.Context) error {
	groupID := c.reader.Config().GroupID
	log.Infof(ctx, "Starting Kafka consumer for topic: %s", c.reader.Config().Topic)

	for ctx.Err() == nil {
		select {
		case <-c.done:
			return nil
		default:
		}

		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			log.Errorw(ctx, "Error fetching message", "error", err)
			continue
		}

		c.processMessage(ctx, msg, groupID)

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			log.Errorw(ctx, "Failed to commit message", "error", err)
		}
	}
	return nil
}

func (c *consumer) processMessage(ctx context.Context, msg kafka.Message, groupID string) {
	start := time.Now()
	err := c.handle(ctx, msg)
	duration := time.Since(start)

	status := "success"
	if err != nil {
		status = "error"
		log.Errorw(ctx, "Error processing event",
			"error", err,
			"topic", msg.Topic,
			"partition", msg.Partition,
			"offset", msg.Offset,
			"value", json.RawMessage(msg.Value),
		)
	}

	c.metrics.
		WithLabelValues(status, msg.Topic, groupID).
		Observe(duration.Seconds())
}

func (c *consumer) handle(msgCtx context.Context, msg kafka.Message) (err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			length := runtime.Stack(stack, false)
			err = fmt.Errorf("PANIC RECOVER: %+v / %s", r, string(stack[:length]))
		}
	}()

	var event models.PartChangeEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if event.Pattern != models.PartChangedPattern {
		log.Infow(msgCtx, "Ignoring unrelated event", "pattern", event.Pattern)
		return nil
	}

	log.Infow(msgCtx, "Processing part change event",
		"part_id", event.Data.PartID,
		"action", event.Data.Action)

	ctx, cancel := context.WithTimeout(msgCtx, consumeTimeout)
	defer cancel()

	return c.browseUsecase.RefreshAll(ctx)
}
