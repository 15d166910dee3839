package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/syllabify/internal/dictionary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDictionaryServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/wiki/teacher", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body>IPA: <span class="IPA">/ˈtiːtʃər/</span></body></html>`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestLookupCommand(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	server := newDictionaryServer(t)

	out, err := executeCommand(t, nil, "lookup", "teacher", "--dictionary-url", server.URL+"/wiki/%s")
	require.NoError(t, err)
	assert.Equal(t, "teacher\t/ˈtiːtʃər/\ttea·cher\n", out)
}

func TestLookupCommand_NotFound(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	server := newDictionaryServer(t)

	_, err := executeCommand(t, nil, "lookup", "zzyzx", "--dictionary-url", server.URL+"/wiki/%s")
	require.Error(t, err)

	var notFound *dictionary.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestLookupCommand_DictionaryURLFromConfig(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	server := newDictionaryServer(t)

	cfg, err := json.Marshal(map[string]any{"dictionary_url": server.URL + "/wiki/%s"})
	require.NoError(t, err)
	cfgPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(cfgPath, cfg, 0644))

	out, err := executeCommand(t, nil, "--config", cfgPath, "lookup", "teacher")
	require.NoError(t, err)
	assert.Contains(t, out, "tea·cher")
}

func TestLookupCommand_InvalidConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"workers": -1}`), 0644))

	_, err := executeCommand(t, nil, "--config", cfgPath, "lookup", "teacher")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'workers'")
}

func TestLookupCommand_InvalidDictionaryURLFlag(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	server := newDictionaryServer(t)

	for _, template := range []string{server.URL + "/wiki/teacher", server.URL + "/%s/%s"} {
		_, err := executeCommand(t, nil, "lookup", "teacher", "--dictionary-url", template)
		require.Error(t, err, template)
		assert.Contains(t, err.Error(), "invalid --dictionary-url")
	}
}
