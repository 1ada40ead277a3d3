package model

type PlaylistRecord struct {
	ID        YoutubePlaylistID
	Title     string
	ChannelID YoutubeChannelID
}

// PlaylistItemRef points from a playlist to one of its videos. The position
// of an item is its index in the merged page order, not a provider field.
type PlaylistItemRef struct {
	PlaylistID YoutubePlaylistID
	VideoID    YoutubeVideoID
}

// PlaylistItemPage is one page of playlist items. An empty NextPageToken
// means this was the last page.
type PlaylistItemPage struct {
	Items         []PlaylistItemRef
	NextPageToken string
}
