package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/yap/pkg/config"
)

func TestStub_Send(t *testing.T) {
	stub := NewStubWithDelay(time.Millisecond)

	res := stub.Send(context.Background(), "hi hi", &config.Config{})
	require.True(t, res.Success)
	assert.NotEmpty(t, res.ID)
	assert.Contains(t, res.Info, "no request was made")
	assert.Empty(t, res.Error)
}

func TestStub_Send_NilConfig(t *testing.T) {
	stub := NewStubWithDelay(time.Millisecond)

	res := stub.Send(context.Background(), "hi", nil)
	assert.True(t, res.Success)
}

func TestStub_Send_MentionsAPIURL(t *testing.T) {
	stub := NewStubWithDelay(time.Millisecond)

	res := stub.Send(context.Background(), "hi", &config.Config{APIURL: "https://example.test/yap"})
	require.True(t, res.Success)
	assert.Contains(t, res.Info, "https://example.test/yap")
}

func TestStub_Send_Cancelled(t *testing.T) {
	stub := NewStubWithDelay(time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := stub.Send(ctx, "hi", &config.Config{})
	assert.False(t, res.Success)
	assert.Equal(t, "send cancelled", res.Error)
	assert.Empty(t, res.ID)
}

func TestStub_Send_UsesConfigDelay(t *testing.T) {
	stub := NewStub()
	cfg := &config.Config{SendDelay: "1ms"}

	start := time.Now()
	res := stub.Send(context.Background(), "hi", cfg)
	require.True(t, res.Success)
	assert.Less(t, time.Since(start), time.Second)
}
