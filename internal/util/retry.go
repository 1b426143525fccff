// ABOUTME: Retry utilities for OpenAI API calls with exponential backoff
// ABOUTME: Shared by the embedding and chat completion paths
package util

import (
	"math/rand/v2"
	"time"
)

// maxBackoff caps the delay between retry attempts.
const maxBackoff = 30 * time.Second

// CalculateBackoff returns exponential backoff with jitter for the given
// attempt number. Attempt 0 (the first try) gets no delay.
func CalculateBackoff(baseDelay time.Duration, attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	// Cap the shift to keep 1<<attempt from overflowing
	if attempt > 30 {
		attempt = 30
	}
	backoff := baseDelay * time.Duration(1<<uint(attempt))
	if backoff > maxBackoff {
		backoff = maxBackoff
	}
	// Jitter in the range -25% to +25%
	jitter := time.Duration(rand.Int64N(int64(backoff)/2)) - backoff/4
	return backoff + jitter
}
