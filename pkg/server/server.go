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

package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/walteh/yap/pkg/config"
	"github.com/walteh/yap/pkg/integration"
	"github.com/walteh/yap/pkg/lifecycle"
	"github.com/walteh/yap/pkg/transform"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 🌐 Server is the HTTP front-end. One route, two spellings: GET / and
// GET /yap.
type Server struct {
	cfg         *config.Config
	transformer *transform.Transformer
	sender      integration.Sender
	bot         *lifecycle.Bot
	engine      *gin.Engine
}

// Options configures a Server
type Options struct {
	Config      *config.Config
	Transformer *transform.Transformer
	Sender      integration.Sender
	Bot         *lifecycle.Bot
}

// 🏭 New creates a server with its routes registered
func New(opts Options) *Server {
	cfg := opts.Config
	if cfg == nil {
		cfg = &config.Config{}
	}
	tr := opts.Transformer
	if tr == nil {
		tr = transform.New()
	}
	sender := opts.Sender
	if sender == nil {
		sender = integration.NewStub()
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		cfg:         cfg,
		transformer: tr,
		sender:      sender,
		bot:         opts.Bot,
		engine:      engine,
	}

	engine.Handle(http.MethodGet, "/", s.handleYap)
	engine.Handle(http.MethodGet, "/yap", s.handleYap)
	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "not found"})
	})

	return s
}

// Handler exposes the gin engine, used by tests and embedders.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// handleYap parses query parameters (with their legacy aliases), runs the
// transformer and then the sender, and responds with the JSON envelope.
func (s *Server) handleYap(c *gin.Context) {
	msg := firstQuery(c, "msg", "message", "text")

	overrides := &config.Config{
		Separator: firstQuery(c, "sep", "separator"),
		Mode:      firstQuery(c, "mode"),
		Prefix:    firstQuery(c, "prefix"),
		Suffix:    firstQuery(c, "suffix"),
	}
	cfg := s.cfg.Merge(overrides)

	fallback := transform.DefaultHTTPCount
	if s.cfg.Count != 0 {
		fallback = s.cfg.Count
	}
	count := transform.ParseCount(firstQuery(c, "n", "count"), fallback)

	payload := s.transformer.Apply(msg, transform.Options{
		Count:     count,
		Separator: cfg.Separator,
		Mode:      transform.ParseMode(cfg.Mode),
		Prefix:    cfg.Prefix,
		Suffix:    cfg.Suffix,
	})

	sendRes := s.sender.Send(c.Request.Context(), payload, cfg)

	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"payload": payload,
		"sendRes": sendRes,
	})
}

// firstQuery returns the first non-empty query value among the given keys
func firstQuery(c *gin.Context, keys ...string) string {
	for _, key := range keys {
		if v := c.Query(key); v != "" {
			return v
		}
	}
	return ""
}

// Start serves HTTP on the configured port until ctx is cancelled, running
// the bot heartbeat alongside when a bot was provided. Shutdown is graceful.
func (s *Server) Start(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)
	addr := fmt.Sprintf(":%d", s.cfg.EffectivePort())

	srv := &http.Server{
		Addr:    addr,
		Handler: s.engine,
	}

	if s.bot != nil {
		res := s.bot.Start(ctx, nil)
		if !res.Success {
			return errors.Errorf("starting bot: %s", res.Error)
		}
		defer s.bot.Stop()
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info().Str("addr", addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return errors.Errorf("serving http: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return errors.Errorf("shutting down http server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
