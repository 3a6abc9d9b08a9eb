package cmsapi

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCmsHelpers(t *testing.T) {
	t.Run(`ExtractAuditData from pure ctx check`, func(t *testing.T) {
		ctx := context.TODO()
		ctxData := ExtractAuditData(ctx)
		require.Equal(t, false, ctxData.WithAudit)
		require.Equal(t, "", ctxData.Uri)
	})

	t.Run(`ExtractAuditData from filled ctx check`, func(t *testing.T) {
		expectedRequestID := "someRequestID"
		expectedUri := "someUri"
		ctx := context.TODO()
		ctx = GetContextWithRequestID(ctx, expectedRequestID)
		ctxData := ExtractAuditData(ctx)
		require.Equal(t, false, ctxData.WithAudit)
		require.Equal(t, expectedRequestID, ctxData.RequestID)

		ctx = GetAuditContext(ctx, "POST", expectedUri)
		ctxData = ExtractAuditData(ctx)
		require.Equal(t, true, ctxData.WithAudit)
		require.Equal(t, expectedUri, ctxData.Uri)
		require.Equal(t, "POST", ctxData.Method)
		require.Equal(t, expectedRequestID, ctxData.RequestID)
	})
}
