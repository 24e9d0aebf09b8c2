package usecase

import "time"

// SetReconnectDelay overrides the delay between reconnect attempts.
func (c *PoolFeedClient) SetReconnectDelay(d time.Duration) {
	c.initialReconnectDelay = d
	c.reconnectDelay = d
}

// ReconnectDelay returns the delay before the next reconnect attempt.
func (c *PoolFeedClient) ReconnectDelay() time.Duration {
	return c.reconnectDelay
}
