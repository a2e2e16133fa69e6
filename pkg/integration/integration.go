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

package integration

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/walteh/yap/pkg/config"
)

// 📬 Result reports the outcome of a delivery attempt. Senders never return
// Go errors; failure is always encoded here so callers have a single path.
type Result struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
	Info    string `json:"info,omitempty"`
	Error   string `json:"error,omitempty"`
}

// 🔌 Sender delivers transformed text to an external service. Implementations
// must encode failure in the Result rather than panicking or returning an
// error, so the stub can be swapped for a real client without touching
// callers.
type Sender interface {
	Send(ctx context.Context, text string, cfg *config.Config) Result
}

// 🎭 Stub is a Sender that performs no network I/O. It waits the configured
// send delay and reports success with a simulation notice.
type Stub struct {
	delay time.Duration // overrides cfg when > 0
}

// NewStub creates a stub sender using the config's send delay.
func NewStub() *Stub {
	return &Stub{}
}

// NewStubWithDelay creates a stub sender with a fixed delay, ignoring the
// config. Tests use this to avoid waiting.
func NewStubWithDelay(d time.Duration) *Stub {
	return &Stub{delay: d}
}

// Send implements Sender.
func (s *Stub) Send(ctx context.Context, text string, cfg *config.Config) Result {
	if cfg == nil {
		cfg = &config.Config{}
	}
	delay := s.delay
	if delay <= 0 {
		delay = cfg.EffectiveSendDelay()
	}

	logger := zerolog.Ctx(ctx)
	logger.Debug().
		Dur("delay", delay).
		Int("chars", len(text)).
		Msg("simulating send")

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return Result{
			Success: false,
			Error:   "send cancelled",
		}
	case <-timer.C:
	}

	info := "simulated delivery only, no request was made"
	if cfg.APIURL != "" {
		info = fmt.Sprintf("simulated delivery to %s, no request was made", cfg.APIURL)
	}

	return Result{
		Success: true,
		ID:      uuid.NewString(),
		Info:    info,
	}
}
