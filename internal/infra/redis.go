// README: Redis client initialization for the rate limiter, with optional New Relic segments.
package infra

import (
	"context"
	"fmt"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"
)

// NewRedis connects to addr and pings it. nrApp may be nil.
func NewRedis(ctx context.Context, addr string, nrApp *newrelic.Application) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if nrApp != nil {
		client.AddHook(nrRedisHook{})
	}
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

// nrRedisHook records each command as a datastore segment of the request's
// transaction, when there is one.
type nrRedisHook struct{}

func (nrRedisHook) DialHook(next redis.DialHook) redis.DialHook {
	return next
}

func (nrRedisHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		if txn := newrelic.FromContext(ctx); txn != nil {
			seg := newrelic.DatastoreSegment{
				StartTime: txn.StartSegmentNow(),
				Product:   newrelic.DatastoreRedis,
				Operation: cmd.Name(),
			}
			defer seg.End()
		}
		return next(ctx, cmd)
	}
}

func (nrRedisHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		if txn := newrelic.FromContext(ctx); txn != nil {
			seg := newrelic.DatastoreSegment{
				StartTime: txn.StartSegmentNow(),
				Product:   newrelic.DatastoreRedis,
				Operation: "pipeline",
			}
			defer seg.End()
		}
		return next(ctx, cmds)
	}
}
