package panels

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fetcher "github.com/spacemagneto/panel-fetcher"
)

func newBackend(t *testing.T) *fetcher.HTTPClient {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/me", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"name":"Alice Liddell","avatar_url":"/avatar.png","user":{"id":"u1","username":"alice"}}`))
	})
	mux.HandleFunc("/api/channels", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[
			{"name":"conda-forge","description":"community packages","private":false,"size_limit":null,"mirror_channel_url":"https://conda.anaconda.org/conda-forge","mirror_mode":"proxy"},
			{"name":"internal","description":"","private":true,"size_limit":1000,"mirror_channel_url":null,"mirror_mode":null}
		]`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return fetcher.NewHTTPClient(fetcher.WithHTTPClient(server.Client()), fetcher.WithSettings(fetcher.Settings{BaseURL: server.URL}))
}

func waitDone[T any](t *testing.T, s *fetcher.Session[T]) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, s.Wait(ctx))
}

func TestProfilePanel(t *testing.T) {
	panel := Profile()

	session, err := panel.NewSession(newBackend(t), zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, fetcher.LoadingView{Message: "Fetching user information"}, session.Render(panel.Renderer))

	require.NoError(t, session.Attach(context.Background()))
	defer session.Detach()
	waitDone(t, session)

	view := session.Render(panel.Renderer)
	assert.Equal(t, ProfileView{Username: "alice", Name: "Alice Liddell", AvatarURL: "/avatar.png"}, view)
	assert.Equal(t, "Username: alice\nName:     Alice Liddell\nAvatar:   /avatar.png", view.String())
}

func TestChannelsPanel(t *testing.T) {
	panel := Channels()

	session, err := panel.NewSession(newBackend(t), zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, session.Attach(context.Background()))
	defer session.Detach()
	waitDone(t, session)

	channels, ok := session.Payload()
	require.True(t, ok)
	require.Len(t, channels, 2)
	assert.Equal(t, "conda-forge", channels[0].Name)
	assert.Nil(t, channels[0].SizeLimit)
	require.NotNil(t, channels[1].SizeLimit)
	assert.Equal(t, int64(1000), *channels[1].SizeLimit)

	assert.Equal(t,
		"conda-forge [proxy of https://conda.anaconda.org/conda-forge]: community packages\ninternal (private)",
		session.Render(panel.Renderer).String())
}

func TestChannelsPanelFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := fetcher.NewHTTPClient(fetcher.WithHTTPClient(server.Client()), fetcher.WithSettings(fetcher.Settings{BaseURL: server.URL}))
	panel := Channels()

	var observed []fetcher.Transition
	session, err := panel.NewSession(client, zerolog.Nop(), fetcher.ObserverFunc(func(tr fetcher.Transition) {
		observed = append(observed, tr)
	}))
	require.NoError(t, err)
	require.NoError(t, session.Attach(context.Background()))
	waitDone(t, session)

	view, ok := session.Render(panel.Renderer).(fetcher.ErrorView)
	require.True(t, ok)
	assert.Equal(t, "Error fetching list of channels", view.Message)

	require.Len(t, observed, 1)
	assert.Equal(t, fetcher.Failed, observed[0].To)
}

func TestChannelListViewEmpty(t *testing.T) {
	assert.Equal(t, "No channels", ChannelListView{}.String())
}

func TestBreadcrumbText(t *testing.T) {
	cases := []struct {
		path     string
		expected string
	}{
		{path: "/user/api-keys", expected: "API keys"},
		{path: "/user/profile", expected: "Profile"},
		{path: "/user/CHANNELS", expected: "Channels"},
		{path: "/user/channels/", expected: ""},
		{path: "/user/éclair", expected: "Éclair"},
		{path: "/user/ÉCLAIR", expected: "Éclair"},
		{path: "profile", expected: "Profile"},
		{path: "/", expected: ""},
		{path: "", expected: ""},
	}

	for _, tt := range cases {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, BreadcrumbText(tt.path))
		})
	}
}
