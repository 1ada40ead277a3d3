// Package aggregate builds the normalized video and playlist results from
// provider lookups.
package aggregate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"ewintr.nl/ytchecklist/duration"
	"ewintr.nl/ytchecklist/fetcher"
	"ewintr.nl/ytchecklist/metrics"
	"ewintr.nl/ytchecklist/model"
)

const (
	DefaultTimeout  = 30 * time.Second
	DefaultMaxPages = 200
)

type Config struct {
	// Timeout bounds one whole build, including all pages.
	Timeout time.Duration
	// MaxPages bounds the number of playlist item pages fetched.
	MaxPages int
}

func DefaultConfig() Config {
	return Config{
		Timeout:  DefaultTimeout,
		MaxPages: DefaultMaxPages,
	}
}

type Aggregator struct {
	client fetcher.MetadataClient
	config Config
	logger *slog.Logger
}

func New(client fetcher.MetadataClient, config Config, logger *slog.Logger) *Aggregator {
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	if config.MaxPages <= 0 {
		config.MaxPages = DefaultMaxPages
	}

	return &Aggregator{
		client: client,
		config: config,
		logger: logger,
	}
}

func (a *Aggregator) BuildVideoResult(ctx context.Context, videoID model.YoutubeVideoID) (model.VideoResult, error) {
	ctx, cancel := context.WithTimeout(ctx, a.config.Timeout)
	defer cancel()

	video, err := a.client.Video(ctx, videoID)
	if err != nil {
		return model.VideoResult{}, a.wrap(ctx, "video", string(videoID), err)
	}
	channel, err := a.client.Channel(ctx, video.ChannelID)
	if err != nil {
		return model.VideoResult{}, a.wrap(ctx, "channel", string(video.ChannelID), err)
	}

	return model.VideoResult{
		Title:        video.Title,
		URL:          model.WatchURL(videoID),
		EmbedURL:     model.EmbedURL(videoID),
		ChannelTitle: channel.Title,
		ChannelURL:   model.ChannelURL(video.ChannelID),
		Duration:     duration.DisplayShort(video.Duration),
	}, nil
}

func (a *Aggregator) BuildPlaylistResult(ctx context.Context, playlistID model.YoutubePlaylistID) (model.PlaylistResult, error) {
	ctx, cancel := context.WithTimeout(ctx, a.config.Timeout)
	defer cancel()

	playlist, err := a.client.Playlist(ctx, playlistID)
	if err != nil {
		return model.PlaylistResult{}, a.wrap(ctx, "playlist", string(playlistID), err)
	}
	channel, err := a.client.Channel(ctx, playlist.ChannelID)
	if err != nil {
		return model.PlaylistResult{}, a.wrap(ctx, "channel", string(playlist.ChannelID), err)
	}

	videos, totalSeconds, err := a.collect(ctx, playlistID)
	if err != nil {
		return model.PlaylistResult{}, err
	}

	return model.PlaylistResult{
		Title:         playlist.Title,
		URL:           model.PlaylistURL(playlistID),
		ChannelTitle:  channel.Title,
		ChannelURL:    model.ChannelURL(playlist.ChannelID),
		Videos:        videos,
		TotalDuration: duration.DisplayLong(totalSeconds),
		TotalVideos:   len(videos),
		TotalSeconds:  totalSeconds,
	}, nil
}

// collect walks all item pages in order. Items whose video is not returned
// by the batch lookup are dropped without an error.
func (a *Aggregator) collect(ctx context.Context, playlistID model.YoutubePlaylistID) ([]model.PlaylistVideoEntry, int, error) {
	videos := []model.PlaylistVideoEntry{}
	totalSeconds := 0
	pageToken := ""

	for pages := 0; ; pages++ {
		if pages == a.config.MaxPages {
			metrics.PlaylistPages.Observe(float64(pages))
			return nil, 0, fmt.Errorf("playlist %s: %w (%d)", playlistID, model.ErrTooManyPages, a.config.MaxPages)
		}

		page, err := a.client.PlaylistItems(ctx, playlistID, pageToken)
		if err != nil {
			return nil, 0, a.wrap(ctx, "playlist", string(playlistID), err)
		}
		ids := make([]model.YoutubeVideoID, 0, len(page.Items))
		for _, item := range page.Items {
			ids = append(ids, item.VideoID)
		}
		records, err := a.client.Videos(ctx, ids)
		if err != nil {
			return nil, 0, a.wrap(ctx, "videos", string(playlistID), err)
		}
		found := make(map[model.YoutubeVideoID]model.VideoRecord, len(records))
		for _, r := range records {
			found[r.ID] = r
		}

		dropped := 0
		for _, item := range page.Items {
			video, ok := found[item.VideoID]
			if !ok {
				dropped++
				continue
			}
			index := len(videos)
			totalSeconds += duration.Seconds(video.Duration)
			videos = append(videos, model.PlaylistVideoEntry{
				Title:    video.Title,
				URL:      model.PlaylistWatchURL(item.VideoID, playlistID, index),
				EmbedURL: model.PlaylistEmbedURL(item.VideoID, playlistID, index),
				Duration: duration.DisplayShort(video.Duration),
				Position: index + 1,
			})
		}
		if dropped > 0 {
			metrics.DroppedItemsTotal.Add(float64(dropped))
			a.logger.Info("dropped unavailable playlist items", slog.String("playlist", string(playlistID)), slog.Int("count", dropped))
		}

		pageToken = page.NextPageToken
		if pageToken == "" {
			metrics.PlaylistPages.Observe(float64(pages + 1))
			a.logger.Info("collected playlist", slog.String("playlist", string(playlistID)), slog.Int("pages", pages+1), slog.Int("count", len(videos)))
			return videos, totalSeconds, nil
		}
	}
}

// wrap normalizes lookup failures: a missing entity becomes a NotFoundError
// of the given kind and an expired deadline becomes model.ErrTimeout.
func (a *Aggregator) wrap(ctx context.Context, kind, id string, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%s %s: %w", kind, id, model.ErrTimeout)
	}
	if errors.Is(err, model.ErrNotFound) {
		var nfErr *model.NotFoundError
		if errors.As(err, &nfErr) && nfErr.Kind == kind {
			return err
		}
		return &model.NotFoundError{Kind: kind, ID: id}
	}

	return fmt.Errorf("%s %s: %w", kind, id, err)
}
