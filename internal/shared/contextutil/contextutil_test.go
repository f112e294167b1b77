package contextutil_test

import (
	"context"
	"testing"

	"go-manpower/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestMetadataRoundTrip(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "rid-1")
	ctx = contextutil.WithUserID(ctx, "user-1")
	ctx = contextutil.WithActorID(ctx, "emp-1")

	md := contextutil.ExtractMetadata(ctx)
	assert.Equal(t, "rid-1", md.RequestID)
	assert.Equal(t, "user-1", md.UserID)
	assert.Equal(t, "emp-1", md.ActorID)
}

func TestGetLogger_Fallbacks(t *testing.T) {
	assert.NotNil(t, contextutil.GetLogger(context.Background(), nil))

	def := zap.NewExample()
	assert.Same(t, def, contextutil.GetLogger(context.Background(), def))

	scoped := zap.NewNop()
	ctx := contextutil.WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, contextutil.GetLogger(ctx, def))
}
