package trace

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionID_IsUUID(t *testing.T) {
	id := NewSessionID()
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.NotEqual(t, id, NewSessionID())
}

func TestNewOTLPExporter_DisabledWithoutEndpoint(t *testing.T) {
	e, err := NewOTLPExporter(context.Background(), "", "tabsheet", true)
	require.NoError(t, err)
	assert.Nil(t, e)

	// A disabled exporter still hands out a working tracer.
	_, span := e.Tracer().Start(context.Background(), "noop")
	span.End()
	assert.NoError(t, e.Shutdown(context.Background()))
}
