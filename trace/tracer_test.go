// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package trace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDisabled(t *testing.T) {
	require := require.New(t)

	tracer, err := New(&Config{AppName: "cpmm"})
	require.NoError(err)
	_, span := tracer.Start(context.Background(), "test")
	require.False(span.SpanContext().IsSampled())
	span.End()
	require.NoError(tracer.Close())
}

func TestNewSampleRate(t *testing.T) {
	tests := []struct {
		name       string
		sampleRate float64
		sampled    bool
	}{
		{
			name:       "always",
			sampleRate: 1,
			sampled:    true,
		},
		{
			name:       "never",
			sampleRate: 0,
			sampled:    false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			tracer, err := New(&Config{
				Enabled:    true,
				SampleRate: tt.sampleRate,
				Endpoint:   "http://127.0.0.1:9411/api/v2/spans",
				AppName:    "cpmm",
				Version:    "v0.1.0",
			})
			require.NoError(err)
			// Unended spans are never queued for export
			_, span := tracer.Start(context.Background(), "test")
			require.Equal(tt.sampled, span.SpanContext().IsSampled())
			require.NoError(tracer.Close())
		})
	}
}
