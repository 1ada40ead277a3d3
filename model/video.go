package model

type YoutubeVideoID string

type YoutubeChannelID string

type YoutubePlaylistID string

// VideoRecord is a video as returned by the metadata provider. Duration is
// kept in the provider encoding, e.g. PT1H2M3S.
type VideoRecord struct {
	ID        YoutubeVideoID
	Title     string
	ChannelID YoutubeChannelID
	Duration  string
}

type ChannelRecord struct {
	ID    YoutubeChannelID
	Title string
}
