package opts

import (
	"github.com/walteh/yap/pkg/config"
	"github.com/walteh/yap/pkg/integration"
	"github.com/walteh/yap/pkg/log"
	"github.com/walteh/yap/pkg/transform"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Config      *config.Config
	Transformer *transform.Transformer
	Sender      integration.Sender
	Console     *log.Logger
	UserLogger  *log.UserLogger
}
