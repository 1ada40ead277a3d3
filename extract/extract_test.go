package extract_test

import (
	"testing"

	"ewintr.nl/ytchecklist/extract"
	"ewintr.nl/ytchecklist/model"
	"github.com/stretchr/testify/assert"
)

func TestVideoID(t *testing.T) {
	for _, tc := range []struct {
		name  string
		url   string
		exp   model.YoutubeVideoID
		expOK bool
	}{
		{name: "watch", url: "https://www.youtube.com/watch?v=dQw4w9WgXcQ", exp: "dQw4w9WgXcQ", expOK: true},
		{name: "watch without www", url: "https://youtube.com/watch?v=abc", exp: "abc", expOK: true},
		{name: "mobile", url: "https://m.youtube.com/watch?v=abc&t=10s", exp: "abc", expOK: true},
		{name: "watch in playlist", url: "https://www.youtube.com/watch?v=abc&list=PL1&index=2", exp: "abc", expOK: true},
		{name: "short link", url: "https://youtu.be/dQw4w9WgXcQ", exp: "dQw4w9WgXcQ", expOK: true},
		{name: "short link with time", url: "https://youtu.be/abc?t=42", exp: "abc", expOK: true},
		{name: "missing v", url: "https://www.youtube.com/watch", expOK: false},
		{name: "empty v", url: "https://www.youtube.com/watch?v=", expOK: false},
		{name: "short link without path", url: "https://youtu.be/", expOK: false},
		{name: "other domain", url: "https://vimeo.com/12345", expOK: false},
		{name: "not a url", url: "bad", expOK: false},
		{name: "malformed", url: "https://www.youtube.com/watch?v=%zz", expOK: false},
		{name: "empty", url: "", expOK: false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			act, ok := extract.VideoID(tc.url)
			assert.Equal(t, tc.expOK, ok)
			assert.Equal(t, tc.exp, act)
		})
	}
}

func TestVideoIDRoundTrip(t *testing.T) {
	for _, id := range []string{"abc", "dQw4w9WgXcQ", "a-b_c123"} {
		watch, ok := extract.VideoID("https://www.youtube.com/watch?v=" + id)
		assert.True(t, ok)
		assert.Equal(t, model.YoutubeVideoID(id), watch)

		short, ok := extract.VideoID("https://youtu.be/" + id)
		assert.True(t, ok)
		assert.Equal(t, model.YoutubeVideoID(id), short)
	}
}

func TestPlaylistID(t *testing.T) {
	for _, tc := range []struct {
		name  string
		url   string
		exp   model.YoutubePlaylistID
		expOK bool
	}{
		{name: "playlist", url: "https://www.youtube.com/playlist?list=P", exp: "P", expOK: true},
		{name: "watch with list", url: "https://www.youtube.com/watch?v=abc&list=PLx", exp: "PLx", expOK: true},
		{name: "short link", url: "https://youtu.be/abc?list=PLx", expOK: false},
		{name: "missing list", url: "https://www.youtube.com/playlist", expOK: false},
		{name: "not a url", url: "bad", expOK: false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			act, ok := extract.PlaylistID(tc.url)
			assert.Equal(t, tc.expOK, ok)
			assert.Equal(t, tc.exp, act)
		})
	}
}
