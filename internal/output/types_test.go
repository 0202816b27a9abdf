package output

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopCloser struct {
	*bytes.Buffer
}

func (nc *nopCloser) Close() error {
	return nil
}

func (nc *nopCloser) Sync() error {
	return nil
}

func TestNewWriterAdapter_PassesThroughWriters(t *testing.T) {
	writer := &nopCloser{Buffer: &bytes.Buffer{}}

	assert.Same(t, writer, NewWriterAdapter(writer))
}

func TestNewWriterAdapter_StandardStreams(t *testing.T) {
	for _, stream := range []*os.File{os.Stdout, os.Stderr} {
		adapter := NewWriterAdapter(stream)

		assert.NotSame(t, stream, adapter)
		assert.NoError(t, adapter.Sync())
		assert.NoError(t, adapter.Close())

		_, err := stream.Stat()
		assert.NoError(t, err, "standard stream must stay open")
	}
}

func TestConsoleWriter_StandardStreamSurvivesClose(t *testing.T) {
	writer := NewConsoleWriter(os.Stdout, ColorModeNever)

	require.NoError(t, writer.Sync())
	require.NoError(t, writer.Close())

	_, err := os.Stdout.Stat()
	assert.NoError(t, err)

	streams := NewStandardStreams()
	assert.NoError(t, streams.Sync())
}
