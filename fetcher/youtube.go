package fetcher

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"ewintr.nl/ytchecklist/metrics"
	"ewintr.nl/ytchecklist/model"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/youtube/v3"
)

const (
	callVideos        = "videos.list"
	callChannels      = "channels.list"
	callPlaylists     = "playlists.list"
	callPlaylistItems = "playlistItems.list"
)

type Youtube struct {
	Client *youtube.Service
}

func NewYoutube(client *youtube.Service) *Youtube {
	return &Youtube{Client: client}
}

func (y *Youtube) Video(ctx context.Context, id model.YoutubeVideoID) (model.VideoRecord, error) {
	videos, err := y.Videos(ctx, []model.YoutubeVideoID{id})
	if err != nil {
		return model.VideoRecord{}, err
	}
	if len(videos) == 0 {
		return model.VideoRecord{}, &model.NotFoundError{Kind: "video", ID: string(id)}
	}

	return videos[0], nil
}

func (y *Youtube) Channel(ctx context.Context, id model.YoutubeChannelID) (model.ChannelRecord, error) {
	response, err := y.Client.Channels.
		List([]string{"snippet"}).
		Id(string(id)).
		Context(ctx).
		Do()
	if err != nil {
		return model.ChannelRecord{}, callErr(callChannels, err)
	}
	if len(response.Items) == 0 || response.Items[0].Snippet == nil {
		observe(callChannels, "not_found")
		return model.ChannelRecord{}, &model.NotFoundError{Kind: "channel", ID: string(id)}
	}
	observe(callChannels, "ok")

	item := response.Items[0]
	return model.ChannelRecord{
		ID:    model.YoutubeChannelID(item.Id),
		Title: item.Snippet.Title,
	}, nil
}

func (y *Youtube) Playlist(ctx context.Context, id model.YoutubePlaylistID) (model.PlaylistRecord, error) {
	response, err := y.Client.Playlists.
		List([]string{"snippet"}).
		Id(string(id)).
		Context(ctx).
		Do()
	if err != nil {
		return model.PlaylistRecord{}, callErr(callPlaylists, err)
	}
	if len(response.Items) == 0 || response.Items[0].Snippet == nil {
		observe(callPlaylists, "not_found")
		return model.PlaylistRecord{}, &model.NotFoundError{Kind: "playlist", ID: string(id)}
	}
	observe(callPlaylists, "ok")

	item := response.Items[0]
	return model.PlaylistRecord{
		ID:        model.YoutubePlaylistID(item.Id),
		Title:     item.Snippet.Title,
		ChannelID: model.YoutubeChannelID(item.Snippet.ChannelId),
	}, nil
}

func (y *Youtube) PlaylistItems(ctx context.Context, id model.YoutubePlaylistID, pageToken string) (model.PlaylistItemPage, error) {
	call := y.Client.PlaylistItems.
		List([]string{"contentDetails"}).
		PlaylistId(string(id)).
		MaxResults(MaxPageSize)

	if pageToken != "" {
		call.PageToken(pageToken)
	}

	response, err := call.Context(ctx).Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound {
			observe(callPlaylistItems, "not_found")
			return model.PlaylistItemPage{}, &model.NotFoundError{Kind: "playlist", ID: string(id)}
		}
		return model.PlaylistItemPage{}, callErr(callPlaylistItems, err)
	}
	observe(callPlaylistItems, "ok")

	page := model.PlaylistItemPage{
		Items:         make([]model.PlaylistItemRef, 0, len(response.Items)),
		NextPageToken: response.NextPageToken,
	}
	for _, item := range response.Items {
		if item.ContentDetails == nil || item.ContentDetails.VideoId == "" {
			continue
		}
		page.Items = append(page.Items, model.PlaylistItemRef{
			PlaylistID: id,
			VideoID:    model.YoutubeVideoID(item.ContentDetails.VideoId),
		})
	}

	return page, nil
}

// Videos looks up the ids in batches of at most MaxPageSize. Ids the provider
// does not return are left out of the result.
func (y *Youtube) Videos(ctx context.Context, ids []model.YoutubeVideoID) ([]model.VideoRecord, error) {
	videos := make([]model.VideoRecord, 0, len(ids))
	for start := 0; start < len(ids); start += MaxPageSize {
		end := start + MaxPageSize
		if end > len(ids) {
			end = len(ids)
		}
		strIDs := make([]string, 0, end-start)
		for _, id := range ids[start:end] {
			strIDs = append(strIDs, string(id))
		}

		response, err := y.Client.Videos.
			List([]string{"snippet", "contentDetails"}).
			Id(strings.Join(strIDs, ",")).
			Context(ctx).
			Do()
		if err != nil {
			return nil, callErr(callVideos, err)
		}
		observe(callVideos, "ok")

		for _, item := range response.Items {
			if item.Snippet == nil {
				continue
			}
			video := model.VideoRecord{
				ID:        model.YoutubeVideoID(item.Id),
				Title:     item.Snippet.Title,
				ChannelID: model.YoutubeChannelID(item.Snippet.ChannelId),
			}
			if item.ContentDetails != nil {
				video.Duration = item.ContentDetails.Duration
			}
			videos = append(videos, video)
		}
	}

	return videos, nil
}

func callErr(call string, err error) error {
	observe(call, "error")
	return &model.ProviderError{Call: call, Err: err}
}

func observe(call, outcome string) {
	metrics.ProviderCallsTotal.WithLabelValues(call, outcome).Inc()
}
