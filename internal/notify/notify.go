// Package notify dispatches host notifications. Delivery is best effort: the
// kiosk must keep working when the queue is down, so failures are logged and
// swallowed rather than returned to the visitor.
package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// QueueKey is the Redis list a downstream worker consumes to send mail/SMS.
const QueueKey = "notifications:host"

type Notifier interface {
	NotifyHost(ctx context.Context, hostEmail, visitorName string) error
}

type hostEvent struct {
	HostEmail   string    `json:"host_email"`
	VisitorName string    `json:"visitor_name"`
	SentAt      time.Time `json:"sent_at"`
}

// RedisNotifier pushes notification events onto a Redis list.
type RedisNotifier struct {
	rdb *redis.Client
	log *zap.Logger
}

func NewRedisNotifier(rdb *redis.Client, log *zap.Logger) *RedisNotifier {
	return &RedisNotifier{rdb: rdb, log: log}
}

func (n *RedisNotifier) NotifyHost(ctx context.Context, hostEmail, visitorName string) error {
	ev := hostEvent{HostEmail: hostEmail, VisitorName: visitorName, SentAt: time.Now().UTC()}
	b, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	if err := n.rdb.LPush(ctx, QueueKey, b).Err(); err != nil {
		n.log.Sugar().Warnw("notification enqueue failed, dropping event",
			"host_email", hostEmail, "err", err)
		return nil
	}

	n.log.Sugar().Infow("host notification queued", "host_email", hostEmail)
	return nil
}

// LogNotifier is used when no Redis is configured; it only records the event.
type LogNotifier struct {
	log *zap.Logger
}

func NewLogNotifier(log *zap.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) NotifyHost(ctx context.Context, hostEmail, visitorName string) error {
	n.log.Sugar().Infow("host notification (no dispatcher configured)",
		"host_email", hostEmail, "visitor_name", visitorName)
	return nil
}
