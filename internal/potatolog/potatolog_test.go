package potatolog_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja-he/docnav/internal/potatolog"
)

func TestMemoryLogReaderWriter(t *testing.T) {
	w := potatolog.NewMemoryLogReaderWriter(2)
	logger := zerolog.New(w)

	logger.Info().Str("page", "overview").Msg("opened")
	logger.Warn().Msg("second")
	logger.Error().Msg("third")

	entries := w.Get()
	require.Len(t, entries, 2)
	assert.Equal(t, "warn", entries[0]["level"])
	assert.Equal(t, "third", entries[1]["message"])

	_, err := w.Write([]byte("not json"))
	assert.Error(t, err)
	assert.Len(t, w.Get(), 2)
}
