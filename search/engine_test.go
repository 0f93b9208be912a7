package search

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salon-verifier/config"
	"salon-verifier/utils"
)

func TestNewSelectsEngine(t *testing.T) {
	logger := utils.NewLoggerTo(io.Discard)

	tests := []struct {
		engine  string
		apiKey  string
		want    string
		wantErr bool
	}{
		{engine: "", want: "google"},
		{engine: "Google", want: "google"},
		{engine: "browser", want: "browser"},
		{engine: "tavily", apiKey: "k", want: "tavily"},
		{engine: "tavily", wantErr: true},
		{engine: "bing", wantErr: true},
	}

	for _, tt := range tests {
		e, err := New(&config.Config{SearchEngine: tt.engine, TavilyAPIKey: tt.apiKey}, logger)
		if tt.wantErr {
			assert.Error(t, err, "engine %q", tt.engine)
			continue
		}
		require.NoError(t, err, "engine %q", tt.engine)
		assert.Equal(t, tt.want, e.Name())
	}
}

func TestBrowserEngineCloseBeforeStart(t *testing.T) {
	e := NewBrowserEngine("", "ua", "", utils.NewLoggerTo(io.Discard))
	assert.NoError(t, e.Close())
}
