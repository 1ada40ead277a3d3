// Package extract pulls YouTube video and playlist identifiers out of the
// URL forms users paste: youtube.com watch and playlist pages and youtu.be
// short links.
package extract

import (
	"net/url"
	"strings"

	"ewintr.nl/ytchecklist/model"
)

const (
	primaryDomain = "youtube.com"
	shortDomain   = "youtu.be"
)

// VideoID returns the video id of rawURL. On youtube.com it is the v query
// parameter, on youtu.be it is the path.
func VideoID(rawURL string) (model.YoutubeVideoID, bool) {
	u, ok := parse(rawURL)
	if !ok {
		return "", false
	}

	var id string
	switch {
	case strings.Contains(u.Hostname(), primaryDomain):
		id = u.Query().Get("v")
	case strings.Contains(u.Hostname(), shortDomain):
		id = strings.TrimPrefix(u.Path, "/")
	}
	if id == "" {
		return "", false
	}

	return model.YoutubeVideoID(id), true
}

// PlaylistID returns the list query parameter of a youtube.com URL. Short
// links never carry a playlist.
func PlaylistID(rawURL string) (model.YoutubePlaylistID, bool) {
	u, ok := parse(rawURL)
	if !ok || !strings.Contains(u.Hostname(), primaryDomain) {
		return "", false
	}

	id := u.Query().Get("list")
	if id == "" {
		return "", false
	}

	return model.YoutubePlaylistID(id), true
}

func parse(rawURL string) (*url.URL, bool) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, false
	}

	return u, true
}
