// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lifecycle

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/walteh/yap/pkg/config"
)

// 📋 Result reports the outcome of a lifecycle operation. Misuse (starting
// twice, stopping when idle) is a structured failure, never an error.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// 📋 StartResult is a Result carrying the merged configuration the bot
// started with.
type StartResult struct {
	Success bool           `json:"success"`
	Error   string         `json:"error,omitempty"`
	Config  *config.Config `json:"config,omitempty"`
}

// 🤖 Bot owns the running state and the heartbeat loop. There is no
// package-level singleton; callers hold the Bot and pass it where needed.
type Bot struct {
	base *config.Config

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}

	beats atomic.Int64
}

// NewBot creates a bot with the given base configuration.
func NewBot(base *config.Config) *Bot {
	if base == nil {
		base = &config.Config{}
	}
	return &Bot{base: base}
}

// Running reports whether the heartbeat loop is active.
func (b *Bot) Running() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.running
}

// Beats returns the number of heartbeats since the last Start.
func (b *Bot) Beats() int64 {
	return b.beats.Load()
}

// Start launches the heartbeat loop with overrides merged onto the base
// config. Starting an already-running bot is a structured failure.
func (b *Bot) Start(ctx context.Context, overrides *config.Config) StartResult {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.running {
		return StartResult{Success: false, Error: "already running"}
	}

	merged := b.base.Merge(overrides)
	interval := merged.EffectiveHeartbeat()

	// Child context so Stop is deterministic, the loop exits on cancellation
	// rather than on its next wake.
	loopCtx, cancel := context.WithCancel(ctx)
	b.running = true
	b.cancel = cancel
	b.done = make(chan struct{})
	b.beats.Store(0)

	go b.heartbeat(loopCtx, interval, b.done)

	zerolog.Ctx(ctx).Info().
		Dur("interval", interval).
		Msg("bot started")

	return StartResult{Success: true, Config: merged}
}

// Stop cancels the heartbeat loop and waits for it to exit. Stopping an idle
// bot is a structured failure.
func (b *Bot) Stop() Result {
	b.mu.Lock()
	if !b.running {
		b.mu.Unlock()
		return Result{Success: false, Error: "not running"}
	}

	b.running = false
	cancel := b.cancel
	done := b.done
	b.cancel = nil
	b.done = nil
	b.mu.Unlock()

	cancel()
	<-done

	return Result{Success: true}
}

// heartbeat ticks until the context is cancelled. Each beat is a no-op
// beyond a debug log and a counter bump.
func (b *Bot) heartbeat(ctx context.Context, interval time.Duration, done chan struct{}) {
	defer close(done)

	logger := zerolog.Ctx(ctx)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug().Int64("beats", b.beats.Load()).Msg("heartbeat stopped")
			return
		case <-ticker.C:
			n := b.beats.Add(1)
			logger.Debug().Int64("beat", n).Msg("heartbeat")
		}
	}
}
