package fetcher_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"ewintr.nl/ytchecklist/fetcher"
	"ewintr.nl/ytchecklist/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

type fakeAPI struct {
	mu       sync.Mutex
	requests []*http.Request
	handler  func(w http.ResponseWriter, r *http.Request)
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requests = append(f.requests, r)
	f.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")
	f.handler(w, r)
}

func (f *fakeAPI) Requests() []*http.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*http.Request(nil), f.requests...)
}

func newYoutube(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) (*fetcher.Youtube, *fakeAPI) {
	t.Helper()
	api := &fakeAPI{handler: handler}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	svc, err := youtube.NewService(context.Background(),
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)

	return fetcher.NewYoutube(svc), api
}

func TestYoutubeVideo(t *testing.T) {
	yt, api := newYoutube(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/youtube/v3/videos", r.URL.Path)
		if r.URL.Query().Get("id") != "abc" {
			fmt.Fprint(w, `{"items":[]}`)
			return
		}
		fmt.Fprint(w, `{"items":[{"id":"abc","snippet":{"title":"Intro","channelId":"UC1"},"contentDetails":{"duration":"PT5M3S"}}]}`)
	})

	t.Run("found", func(t *testing.T) {
		act, err := yt.Video(context.Background(), "abc")
		require.NoError(t, err)
		assert.Equal(t, model.VideoRecord{ID: "abc", Title: "Intro", ChannelID: "UC1", Duration: "PT5M3S"}, act)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := yt.Video(context.Background(), "missing")
		assert.ErrorIs(t, err, model.ErrNotFound)
		var nfErr *model.NotFoundError
		require.True(t, errors.As(err, &nfErr))
		assert.Equal(t, "video", nfErr.Kind)
	})

	assert.Len(t, api.Requests(), 2)
}

func TestYoutubeChannel(t *testing.T) {
	yt, _ := newYoutube(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/youtube/v3/channels", r.URL.Path)
		if r.URL.Query().Get("id") == "UC1" {
			fmt.Fprint(w, `{"items":[{"id":"UC1","snippet":{"title":"Teacher"}}]}`)
			return
		}
		fmt.Fprint(w, `{"items":[]}`)
	})

	act, err := yt.Channel(context.Background(), "UC1")
	require.NoError(t, err)
	assert.Equal(t, model.ChannelRecord{ID: "UC1", Title: "Teacher"}, act)

	_, err = yt.Channel(context.Background(), "UC2")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestYoutubePlaylist(t *testing.T) {
	yt, _ := newYoutube(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/youtube/v3/playlists", r.URL.Path)
		if r.URL.Query().Get("id") == "PL1" {
			fmt.Fprint(w, `{"items":[{"id":"PL1","snippet":{"title":"Course","channelId":"UC1"}}]}`)
			return
		}
		fmt.Fprint(w, `{"items":[]}`)
	})

	act, err := yt.Playlist(context.Background(), "PL1")
	require.NoError(t, err)
	assert.Equal(t, model.PlaylistRecord{ID: "PL1", Title: "Course", ChannelID: "UC1"}, act)

	_, err = yt.Playlist(context.Background(), "PL2")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestYoutubePlaylistItems(t *testing.T) {
	yt, api := newYoutube(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		switch {
		case q.Get("playlistId") == "gone":
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"error":{"code":404,"message":"playlist not found"}}`)
		case q.Get("pageToken") == "":
			fmt.Fprint(w, `{"nextPageToken":"p2","items":[{"contentDetails":{"videoId":"v1"}},{"contentDetails":{"videoId":"v2"}}]}`)
		default:
			fmt.Fprint(w, `{"items":[{"contentDetails":{"videoId":"v3"}},{"contentDetails":{}}]}`)
		}
	})

	first, err := yt.PlaylistItems(context.Background(), "PL1", "")
	require.NoError(t, err)
	assert.Equal(t, "p2", first.NextPageToken)
	assert.Equal(t, []model.PlaylistItemRef{{PlaylistID: "PL1", VideoID: "v1"}, {PlaylistID: "PL1", VideoID: "v2"}}, first.Items)

	second, err := yt.PlaylistItems(context.Background(), "PL1", "p2")
	require.NoError(t, err)
	assert.Empty(t, second.NextPageToken)
	assert.Equal(t, []model.PlaylistItemRef{{PlaylistID: "PL1", VideoID: "v3"}}, second.Items)

	_, err = yt.PlaylistItems(context.Background(), "gone", "")
	assert.ErrorIs(t, err, model.ErrNotFound)

	require.Len(t, api.Requests(), 3)
	assert.Equal(t, "50", api.Requests()[0].URL.Query().Get("maxResults"))
	assert.Equal(t, "p2", api.Requests()[1].URL.Query().Get("pageToken"))
}

func TestYoutubeVideosBatch(t *testing.T) {
	yt, api := newYoutube(t, func(w http.ResponseWriter, r *http.Request) {
		var items []string
		for _, id := range strings.Split(r.URL.Query().Get("id"), ",") {
			if id == "deleted" {
				continue
			}
			items = append(items, fmt.Sprintf(`{"id":%q,"snippet":{"title":"T %s","channelId":"UC1"},"contentDetails":{"duration":"PT1M"}}`, id, id))
		}
		fmt.Fprintf(w, `{"items":[%s]}`, strings.Join(items, ","))
	})

	t.Run("empty", func(t *testing.T) {
		act, err := yt.Videos(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, act)
		assert.Empty(t, api.Requests())
	})

	t.Run("missing ids left out", func(t *testing.T) {
		act, err := yt.Videos(context.Background(), []model.YoutubeVideoID{"a", "deleted", "b"})
		require.NoError(t, err)
		require.Len(t, act, 2)
		assert.Equal(t, model.YoutubeVideoID("a"), act[0].ID)
		assert.Equal(t, model.YoutubeVideoID("b"), act[1].ID)
		assert.Equal(t, "a,deleted,b", api.Requests()[len(api.Requests())-1].URL.Query().Get("id"))
	})

	t.Run("split in batches", func(t *testing.T) {
		before := len(api.Requests())
		ids := make([]model.YoutubeVideoID, 0, 120)
		for i := 0; i < 120; i++ {
			ids = append(ids, model.YoutubeVideoID(fmt.Sprintf("v%d", i)))
		}
		act, err := yt.Videos(context.Background(), ids)
		require.NoError(t, err)
		assert.Len(t, act, 120)
		assert.Equal(t, 3, len(api.Requests())-before)
	})
}

func TestYoutubeProviderError(t *testing.T) {
	yt, _ := newYoutube(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"error":{"code":403,"message":"quotaExceeded"}}`)
	})

	_, err := yt.Video(context.Background(), "abc")
	var pErr *model.ProviderError
	require.True(t, errors.As(err, &pErr))
	assert.Equal(t, "videos.list", pErr.Call)
	assert.NotErrorIs(t, err, model.ErrNotFound)
}
