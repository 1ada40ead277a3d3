package model

import "fmt"

const (
	watchURL    = "https://www.youtube.com/watch?v="
	embedURL    = "https://www.youtube.com/embed/"
	channelURL  = "https://www.youtube.com/channel/"
	playlistURL = "https://youtube.com/playlist?list="
)

type VideoResult struct {
	Title        string `json:"title"`
	URL          string `json:"url"`
	EmbedURL     string `json:"embedUrl"`
	ChannelTitle string `json:"channelTitle"`
	ChannelURL   string `json:"channelUrl"`
	Duration     string `json:"duration"`
}

type PlaylistVideoEntry struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	EmbedURL string `json:"embedUrl"`
	Duration string `json:"duration"`
	Position int    `json:"position"`
}

type PlaylistResult struct {
	Title         string               `json:"title"`
	URL           string               `json:"url"`
	ChannelTitle  string               `json:"channelTitle"`
	ChannelURL    string               `json:"channelUrl"`
	Videos        []PlaylistVideoEntry `json:"videos"`
	TotalDuration string               `json:"totalDuration"`
	TotalVideos   int                  `json:"totalVideos"`
	TotalSeconds  int                  `json:"-"`
}

func WatchURL(id YoutubeVideoID) string {
	return watchURL + string(id)
}

func EmbedURL(id YoutubeVideoID) string {
	return embedURL + string(id)
}

func ChannelURL(id YoutubeChannelID) string {
	return channelURL + string(id)
}

func PlaylistURL(id YoutubePlaylistID) string {
	return playlistURL + string(id)
}

// PlaylistWatchURL and PlaylistEmbedURL take the 0-based index of the entry,
// while PlaylistVideoEntry.Position is 1-based.
func PlaylistWatchURL(id YoutubeVideoID, playlistID YoutubePlaylistID, index int) string {
	return fmt.Sprintf("%s%s&list=%s&index=%d", watchURL, id, playlistID, index)
}

func PlaylistEmbedURL(id YoutubeVideoID, playlistID YoutubePlaylistID, index int) string {
	return fmt.Sprintf("%s%s?list=%s&index=%d", embedURL, id, playlistID, index)
}
