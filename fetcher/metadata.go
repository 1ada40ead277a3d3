package fetcher

import (
	"context"

	"ewintr.nl/ytchecklist/model"
)

// MaxPageSize is the largest page the provider returns for playlist items
// and the largest id batch it accepts for videos.
const MaxPageSize = 50

// MetadataClient is the boundary to the video metadata provider. Lookups of
// single entities return an error matching model.ErrNotFound when the entity
// does not exist. Videos silently leaves out ids it could not resolve.
type MetadataClient interface {
	Video(ctx context.Context, id model.YoutubeVideoID) (model.VideoRecord, error)
	Channel(ctx context.Context, id model.YoutubeChannelID) (model.ChannelRecord, error)
	Playlist(ctx context.Context, id model.YoutubePlaylistID) (model.PlaylistRecord, error)
	PlaylistItems(ctx context.Context, id model.YoutubePlaylistID, pageToken string) (model.PlaylistItemPage, error)
	Videos(ctx context.Context, ids []model.YoutubeVideoID) ([]model.VideoRecord, error)
}
