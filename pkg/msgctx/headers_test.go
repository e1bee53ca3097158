package msgctx_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/tuanvumaihuynh/inventory-hub/pkg/correlationid"
	"github.com/tuanvumaihuynh/inventory-hub/pkg/msgctx"
)

func TestCorrelationIDRoundTrip(t *testing.T) {
	ctx := correlationid.NewContext(context.Background(), "corr-123")

	headers := msgctx.BuildHeaders(ctx)
	assert.Equal(t, "corr-123", headers[correlationid.Header])

	rec := &kgo.Record{}
	for k, v := range headers {
		rec.Headers = append(rec.Headers, kgo.RecordHeader{Key: k, Value: []byte(v)})
	}

	got, ok := correlationid.FromContext(msgctx.ContextFromRecord(context.Background(), rec))
	assert.True(t, ok)
	assert.Equal(t, "corr-123", got)
}

func TestContextFromRecordWithoutHeaders(t *testing.T) {
	_, ok := correlationid.FromContext(msgctx.ContextFromRecord(context.Background(), &kgo.Record{}))
	assert.False(t, ok)
}
