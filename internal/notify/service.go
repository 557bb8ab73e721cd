package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Babismam/gym-frontend/internal/logger"
	"github.com/Babismam/gym-frontend/internal/metrics"
)

const (
	SeveritySuccess = "success"
	SeverityError   = "error"
)

// Notification is one snackbar-style message for a member: the outcome of a
// book/cancel action or a load failure.
type Notification struct {
	ID       string    `json:"id"`
	MemberID int       `json:"memberId"`
	Severity string    `json:"severity"`
	Message  string    `json:"message"`
	Created  time.Time `json:"created"`
}

// Service queues notifications per member in a redis list. The presentation
// layer drains its list on each render; anything older gets dropped with the
// list, there is no replay.
type Service struct {
	redis redis.Cmdable
	owned *redis.Client
}

func New(redisAddr string) *Service {
	client := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	return &Service{redis: client, owned: client}
}

// NewWithClient is used by tests to inject a mock redis client.
func NewWithClient(client redis.Cmdable) *Service {
	return &Service{redis: client}
}

func key(memberID int) string {
	return fmt.Sprintf("notifications:%d", memberID)
}

func (s *Service) Publish(ctx context.Context, memberID int, severity, message string) error {
	n := Notification{
		ID:       uuid.NewString(),
		MemberID: memberID,
		Severity: severity,
		Message:  message,
		Created:  time.Now(),
	}

	data, err := json.Marshal(n)
	if err != nil {
		logger.Errorf("Failed to marshal notification: %v", err)
		return err
	}

	if err := s.redis.RPush(ctx, key(memberID), data).Err(); err != nil {
		logger.Errorf("Failed to queue notification for member %d: %v", memberID, err)
		return err
	}

	metrics.NotificationQueueLength.Inc()
	logger.Info("Notification queued", "member_id", memberID, "severity", severity)
	return nil
}

// Drain pops every pending notification for the member, oldest first.
func (s *Service) Drain(ctx context.Context, memberID int) ([]Notification, error) {
	var out []Notification
	for {
		data, err := s.redis.LPop(ctx, key(memberID)).Result()
		if err == redis.Nil {
			return out, nil
		}
		if err != nil {
			return out, err
		}

		var n Notification
		if err := json.Unmarshal([]byte(data), &n); err != nil {
			logger.Errorf("Bad notification data: %v", err)
			continue
		}

		metrics.NotificationQueueLength.Dec()
		out = append(out, n)
	}
}

func (s *Service) QueueLength(ctx context.Context, memberID int) int64 {
	length, _ := s.redis.LLen(ctx, key(memberID)).Result()
	return length
}

func (s *Service) Close() error {
	if s.owned != nil {
		return s.owned.Close()
	}
	return nil
}
