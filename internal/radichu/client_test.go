package radichu

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAuthKey  = "0123456789abcdefghijklmnopqrstuvwxyz"
	testToken    = "tok-12345"
	testManifest = "#EXTM3U\n#EXT-X-VERSION:3\nchunklist.m3u8\n"
)

// newTestAPI serves the auth handshake plus live and timefree playlists for
// station QRR. The key window handed out by auth1 is [4:20].
func newTestAPI(t *testing.T, timefreeQueries *[]url.Values) *httptest.Server {
	t.Helper()

	wantPartial := base64.StdEncoding.EncodeToString([]byte(testAuthKey[4:20]))

	mux := http.NewServeMux()
	mux.HandleFunc("/auth1", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, defaultAppName, r.Header.Get(headerApp))
		assert.Equal(t, defaultAppVersion, r.Header.Get(headerAppVersion))
		assert.Equal(t, defaultUserID, r.Header.Get(headerUser))
		assert.Equal(t, defaultDevice, r.Header.Get(headerDevice))

		w.Header().Set(headerAuthToken, testToken)
		w.Header().Set(headerKeyOffset, "4")
		w.Header().Set(headerKeyLength, "16")
	})
	mux.HandleFunc("/auth2", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(headerAuthToken) != testToken || r.Header.Get(headerPartialKey) != wantPartial {
			w.WriteHeader(http.StatusUnauthorized)
		}
	})
	mux.HandleFunc("/QRR/_definst_/simul-stream.stream/playlist.m3u8", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(headerAuthToken) != testToken {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(testManifest))
	})
	mux.HandleFunc("/ts/playlist.m3u8", func(w http.ResponseWriter, r *http.Request) {
		if timefreeQueries != nil {
			*timefreeQueries = append(*timefreeQueries, r.URL.Query())
		}
		if r.URL.Query().Get("station_id") != "QRR" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(testManifest))
	})
	// Any other station's live stream is unknown.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(srv *httptest.Server) Config {
	return Config{
		Auth1Endpoint:    srv.URL + "/auth1",
		Auth2Endpoint:    srv.URL + "/auth2",
		TimefreeEndpoint: srv.URL + "/ts/playlist.m3u8",
		StreamBase:       srv.URL,
		AuthKey:          testAuthKey,
	}
}

func TestFetchPlaylistLive(t *testing.T) {
	srv := newTestAPI(t, nil)
	c := NewClient(testConfig(srv))

	manifest, err := c.FetchPlaylist(context.Background(), "QRR", "", "")
	require.NoError(t, err)
	assert.Equal(t, testManifest, manifest)
}

func TestFetchPlaylistTimefree(t *testing.T) {
	var queries []url.Values
	srv := newTestAPI(t, &queries)
	c := NewClient(testConfig(srv))

	manifest, err := c.FetchPlaylist(context.Background(), "QRR", "20240115050000", "20240115060000")
	require.NoError(t, err)
	assert.Equal(t, testManifest, manifest)

	require.Len(t, queries, 1)
	assert.Equal(t, "QRR", queries[0].Get("station_id"))
	assert.Equal(t, "20240115050000", queries[0].Get("ft"))
	assert.Equal(t, "20240115060000", queries[0].Get("to"))
}

func TestFetchPlaylistUnknownStation(t *testing.T) {
	srv := newTestAPI(t, nil)
	c := NewClient(testConfig(srv))

	_, err := c.FetchPlaylist(context.Background(), "NOPE", "", "")
	require.Error(t, err)
	assert.Equal(t, "station not found", err.Error())
}

func TestFetchPlaylistEmptyStation(t *testing.T) {
	srv := newTestAPI(t, nil)
	c := NewClient(testConfig(srv))

	_, err := c.FetchPlaylist(context.Background(), "", "", "")
	require.Error(t, err)
	assert.Equal(t, "station not found", err.Error())
}

func TestFetchPlaylistAuthFailure(t *testing.T) {
	srv := newTestAPI(t, nil)
	cfg := testConfig(srv)
	// A different key makes the derived partial key wrong, so auth2 rejects it.
	cfg.AuthKey = "zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz"
	c := NewClient(cfg)

	_, err := c.FetchPlaylist(context.Background(), "QRR", "", "")
	require.Error(t, err)
	assert.Equal(t, "playlist authentication failed", err.Error())
}

func TestFetchPlaylistRejectsNonManifestBody(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth1", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(headerAuthToken, testToken)
		w.Header().Set(headerKeyOffset, "0")
		w.Header().Set(headerKeyLength, "8")
	})
	mux.HandleFunc("/auth2", func(w http.ResponseWriter, r *http.Request) {})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>error page</html>"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewClient(testConfig(srv))
	_, err := c.FetchPlaylist(context.Background(), "QRR", "", "")
	require.Error(t, err)
	assert.Equal(t, "unexpected playlist response", err.Error())
}

func TestPartialKey(t *testing.T) {
	tests := []struct {
		name    string
		offset  int
		length  int
		want    string
		wantErr bool
	}{
		{name: "window at start", offset: 0, length: 4, want: base64.StdEncoding.EncodeToString([]byte("0123"))},
		{name: "window mid-key", offset: 10, length: 6, want: base64.StdEncoding.EncodeToString([]byte("abcdef"))},
		{name: "window at end", offset: len(testAuthKey) - 2, length: 2, want: base64.StdEncoding.EncodeToString([]byte("yz"))},
		{name: "negative offset", offset: -1, length: 4, wantErr: true},
		{name: "zero length", offset: 0, length: 0, wantErr: true},
		{name: "window past end", offset: len(testAuthKey) - 2, length: 4, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := partialKey(testAuthKey, tt.offset, tt.length)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()

	assert.Equal(t, defaultAuth1Endpoint, cfg.Auth1Endpoint)
	assert.Equal(t, defaultStreamBase, cfg.StreamBase)
	assert.Equal(t, defaultAuthKey, cfg.AuthKey)
	assert.Equal(t, defaultTimeoutSeconds, cfg.TimeoutSeconds)

	custom := Config{StreamBase: "http://example.test", TimeoutSeconds: 3}.withDefaults()
	assert.Equal(t, "http://example.test", custom.StreamBase)
	assert.Equal(t, 3, custom.TimeoutSeconds)
}
