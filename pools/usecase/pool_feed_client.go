package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	deliveryhttp "github.com/predictmarkets/tqs/delivery/http"
	"github.com/predictmarkets/tqs/domain"
	"github.com/predictmarkets/tqs/domain/mvc"
	"github.com/predictmarkets/tqs/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	initialReconnectDelay = 1 * time.Second
	reconnectMaxDelay     = 120 * time.Second
	pingPeriod            = 30 * time.Second // How often to send pings
	pongWait              = 2 * pingPeriod   // Time allowed to read the next pong from the peer
	writeWait             = 10 * time.Second // Time allowed to write a message to the peer

	malformedMessageLabel = "malformed message"
)

// PoolFeedClient streams pool snapshots from the chain query collaborator into
// the pools usecase. Every websocket text message is a JSON encoded domain.Pool.
// On every (re)connect all pools are first bootstrapped over REST so that
// updates missed while disconnected are recovered.
type PoolFeedClient struct {
	wsURL   string
	restURL string

	poolsUsecase mvc.PoolsUsecase
	dialer       *websocket.Dialer

	initialReconnectDelay time.Duration
	reconnectDelay        time.Duration

	logger log.Logger
}

// NewPoolFeedClient creates a new pool feed client.
func NewPoolFeedClient(config *domain.PoolFeedConfig, poolsUsecase mvc.PoolsUsecase, logger log.Logger) *PoolFeedClient {
	return &PoolFeedClient{
		wsURL:                 config.WSURL,
		restURL:               strings.TrimSuffix(config.RESTURL, "/"),
		poolsUsecase:          poolsUsecase,
		dialer:                websocket.DefaultDialer,
		initialReconnectDelay: initialReconnectDelay,
		reconnectDelay:        initialReconnectDelay,
		logger:                logger,
	}
}

// Run maintains the feed until the context is cancelled.
// If no websocket URL is configured, pools are bootstrapped once and Run returns.
func (c *PoolFeedClient) Run(ctx context.Context) {
	if c.wsURL == "" {
		if err := c.Bootstrap(ctx); err != nil {
			c.logger.Error("failed to bootstrap pools", zap.Error(err))
		}
		return
	}

	for ctx.Err() == nil {
		conn, _, err := c.dialer.DialContext(ctx, c.wsURL, nil)
		if err != nil {
			c.logger.Warn("failed to connect to pool feed", zap.String("url", c.wsURL), zap.Duration("retry_in", c.reconnectDelay), zap.Error(err))
			c.backoff(ctx)
			continue
		}

		// Connection established, reset reconnect delay.
		c.reconnectDelay = c.initialReconnectDelay
		c.logger.Info("connected to pool feed", zap.String("url", c.wsURL))

		if err := c.Bootstrap(ctx); err != nil {
			c.logger.Error("failed to bootstrap pools", zap.Error(err))
		}

		c.consume(ctx, conn)

		// Wait before redialing a feed that dropped the connection.
		c.wait(ctx, c.initialReconnectDelay)
	}
}

// Bootstrap fetches all pools over REST and ingests them. No-op if no REST URL
// is configured.
func (c *PoolFeedClient) Bootstrap(ctx context.Context) error {
	if c.restURL == "" {
		return nil
	}

	body, err := deliveryhttp.Get(ctx, c.restURL+"/pools")
	if err != nil {
		return err
	}

	if len(body) == 0 {
		return fmt.Errorf("timed out fetching pools from %s", c.restURL)
	}

	var pools []domain.Pool
	if err := json.Unmarshal(body, &pools); err != nil {
		return fmt.Errorf("failed to unmarshal pools from %s: %w", c.restURL, err)
	}

	for _, pool := range pools {
		if err := c.poolsUsecase.IngestPool(ctx, pool); err != nil {
			c.logger.Warn("rejected bootstrapped pool", zap.Uint64("pool_id", pool.ID), zap.Error(err))
		}
	}

	c.logger.Info("bootstrapped pools", zap.Int("num_pools", len(pools)))

	return nil
}

// consume reads snapshots until the connection fails or the context is cancelled.
func (c *PoolFeedClient) consume(ctx context.Context, conn *websocket.Conn) {
	defer conn.Close()

	done := make(chan struct{})
	defer close(done)

	go c.keepAlive(ctx, conn, done)

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil {
				c.logger.Warn("pool feed connection lost", zap.Error(err))
			}
			return
		}

		if messageType != websocket.TextMessage {
			continue
		}

		c.handleMessage(ctx, data)
	}
}

// keepAlive sends pings at regular intervals and closes the connection when
// the context is cancelled.
func (c *PoolFeedClient) keepAlive(ctx context.Context, conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				c.logger.Debug("failed to ping pool feed", zap.Error(err))
				conn.Close()
				return
			}
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
			conn.Close()
			return
		case <-done:
			return
		}
	}
}

// handleMessage ingests one snapshot. Malformed or rejected snapshots are logged and skipped.
func (c *PoolFeedClient) handleMessage(ctx context.Context, data []byte) {
	var pool domain.Pool
	if err := json.Unmarshal(data, &pool); err != nil {
		domain.PoolIngestErrorCounter.WithLabelValues(malformedMessageLabel).Inc()
		c.logger.Warn("malformed pool feed message", zap.Error(err))
		return
	}

	if err := c.poolsUsecase.IngestPool(ctx, pool); err != nil {
		c.logger.Warn("rejected pool feed snapshot", zap.Uint64("pool_id", pool.ID), zap.Error(err))
	}
}

// backoff waits for the current reconnect delay and doubles it, up to reconnectMaxDelay.
func (c *PoolFeedClient) backoff(ctx context.Context) {
	c.wait(ctx, c.reconnectDelay)
	c.reconnectDelay = min(reconnectMaxDelay, 2*c.reconnectDelay)
}

func (c *PoolFeedClient) wait(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
