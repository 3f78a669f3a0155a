package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

type Client struct {
	rdb *redis.Client
}

// NotificationEvent is the payload pushed on a customer's channel when a
// lifecycle transition touches one of their orders.
type NotificationEvent struct {
	NotificationID uint      `json:"notification_id"`
	CustomerID     uint      `json:"customer_id"`
	Message        string    `json:"message"`
	OrderID        *uint     `json:"order_id,omitempty"`
	DeliveryID     *uint     `json:"delivery_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

func notificationChannel(customerID uint) string {
	return fmt.Sprintf("notifications:%d", customerID)
}

// PublishNotification pushes an event on the customer's channel. A customer
// with no connected subscriber simply misses the push; the persisted row
// covers later polling.
func (c *Client) PublishNotification(ctx context.Context, event *NotificationEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal notification event: %w", err)
	}

	return c.rdb.Publish(ctx, notificationChannel(event.CustomerID), payload).Err()
}

// SubscribeNotifications returns the pub/sub handle for a customer's channel.
// Used by the SSE/websocket edge, which is outside this core.
func (c *Client) SubscribeNotifications(ctx context.Context, customerID uint) *redis.PubSub {
	return c.rdb.Subscribe(ctx, notificationChannel(customerID))
}

func riderChannel(riderID uint) string {
	return fmt.Sprintf("rider-alerts:%d", riderID)
}

// PublishRiderAlert pushes a plain-text alert on the rider's channel, e.g.
// a return-goods instruction after a mid-delivery cancellation.
func (c *Client) PublishRiderAlert(ctx context.Context, riderID uint, message string) error {
	return c.rdb.Publish(ctx, riderChannel(riderID), message).Err()
}

// SubscribeRiderAlerts returns the pub/sub handle for a rider's channel.
func (c *Client) SubscribeRiderAlerts(ctx context.Context, riderID uint) *redis.PubSub {
	return c.rdb.Subscribe(ctx, riderChannel(riderID))
}

// Quote preview caching

func quoteKey(customerID, cartID uint) string {
	return fmt.Sprintf("quote:%d:%d", customerID, cartID)
}

func (c *Client) SetQuote(ctx context.Context, customerID, cartID uint, quote interface{}, ttl time.Duration) error {
	payload, err := json.Marshal(quote)
	if err != nil {
		return fmt.Errorf("failed to marshal quote: %w", err)
	}

	return c.rdb.Set(ctx, quoteKey(customerID, cartID), payload, ttl).Err()
}

func (c *Client) GetQuote(ctx context.Context, customerID, cartID uint, dest interface{}) error {
	val, err := c.rdb.Get(ctx, quoteKey(customerID, cartID)).Result()
	if err != nil {
		if err == redis.Nil {
			return fmt.Errorf("quote not found")
		}
		return fmt.Errorf("failed to get quote: %w", err)
	}

	return json.Unmarshal([]byte(val), dest)
}

func (c *Client) DeleteQuote(ctx context.Context, customerID, cartID uint) error {
	return c.rdb.Del(ctx, quoteKey(customerID, cartID)).Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
