package aggregate_test

import (
	"context"
	"fmt"

	"ewintr.nl/ytchecklist/model"
)

// fakeClient serves records from memory. Pages are keyed by page token, the
// first page has the empty token.
type fakeClient struct {
	videos    map[model.YoutubeVideoID]model.VideoRecord
	channels  map[model.YoutubeChannelID]model.ChannelRecord
	playlists map[model.YoutubePlaylistID]model.PlaylistRecord
	pages     map[string]model.PlaylistItemPage
	err       error
	block     bool
	batches   [][]model.YoutubeVideoID
	tokens    []string
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		videos:    map[model.YoutubeVideoID]model.VideoRecord{},
		channels:  map[model.YoutubeChannelID]model.ChannelRecord{},
		playlists: map[model.YoutubePlaylistID]model.PlaylistRecord{},
		pages:     map[string]model.PlaylistItemPage{},
	}
}

func (f *fakeClient) wait(ctx context.Context) error {
	if f.block {
		<-ctx.Done()
		return ctx.Err()
	}
	return f.err
}

func (f *fakeClient) Video(ctx context.Context, id model.YoutubeVideoID) (model.VideoRecord, error) {
	if err := f.wait(ctx); err != nil {
		return model.VideoRecord{}, err
	}
	v, ok := f.videos[id]
	if !ok {
		return model.VideoRecord{}, &model.NotFoundError{Kind: "video", ID: string(id)}
	}
	return v, nil
}

func (f *fakeClient) Channel(ctx context.Context, id model.YoutubeChannelID) (model.ChannelRecord, error) {
	if err := f.wait(ctx); err != nil {
		return model.ChannelRecord{}, err
	}
	c, ok := f.channels[id]
	if !ok {
		return model.ChannelRecord{}, &model.NotFoundError{Kind: "channel", ID: string(id)}
	}
	return c, nil
}

func (f *fakeClient) Playlist(ctx context.Context, id model.YoutubePlaylistID) (model.PlaylistRecord, error) {
	if err := f.wait(ctx); err != nil {
		return model.PlaylistRecord{}, err
	}
	p, ok := f.playlists[id]
	if !ok {
		return model.PlaylistRecord{}, &model.NotFoundError{Kind: "playlist", ID: string(id)}
	}
	return p, nil
}

func (f *fakeClient) PlaylistItems(ctx context.Context, id model.YoutubePlaylistID, pageToken string) (model.PlaylistItemPage, error) {
	if err := f.wait(ctx); err != nil {
		return model.PlaylistItemPage{}, err
	}
	f.tokens = append(f.tokens, pageToken)
	page, ok := f.pages[pageToken]
	if !ok {
		return model.PlaylistItemPage{}, fmt.Errorf("unknown page token %q", pageToken)
	}
	return page, nil
}

func (f *fakeClient) Videos(ctx context.Context, ids []model.YoutubeVideoID) ([]model.VideoRecord, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	f.batches = append(f.batches, ids)
	var res []model.VideoRecord
	for _, id := range ids {
		if v, ok := f.videos[id]; ok {
			res = append(res, v)
		}
	}
	return res, nil
}
