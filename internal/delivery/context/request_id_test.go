package context

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestWithCaller(t *testing.T) {
	t.Run("tags the request logger", func(t *testing.T) {
		var buf bytes.Buffer
		ctx := WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))
		userID := uuid.MustParse("0f8fad5b-d9cb-469f-a165-70867728950e")

		ctx = WithCaller(ctx, &userID, "+15145550000")
		GetLogger(ctx).Info("hello")

		assert.Contains(t, buf.String(), `"user_id":"0f8fad5b-d9cb-469f-a165-70867728950e"`)
		assert.Contains(t, buf.String(), `"guest":"****0000"`)
		assert.NotContains(t, buf.String(), "5145550000")
	})

	t.Run("without a request logger the context is unchanged", func(t *testing.T) {
		ctx := context.Background()

		assert.Equal(t, ctx, WithCaller(ctx, nil, "+15145550000"))
	})
}

func TestRequestIDFromContext(t *testing.T) {
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
	assert.Equal(t, "req-1", GetRequestIDFromContext(WithRequestID(context.Background(), "req-1")))
}
