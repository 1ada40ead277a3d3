package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"ewintr.nl/ytchecklist/extract"
	"ewintr.nl/ytchecklist/markdown"
	"ewintr.nl/ytchecklist/model"
	"ewintr.nl/ytchecklist/storage"
)

type Builder interface {
	BuildVideoResult(ctx context.Context, videoID model.YoutubeVideoID) (model.VideoResult, error)
	BuildPlaylistResult(ctx context.Context, playlistID model.YoutubePlaylistID) (model.PlaylistResult, error)
}

type ChecklistAPI struct {
	builder    Builder
	lookupRepo storage.LookupRepository
	logger     *slog.Logger
}

func NewChecklistAPI(builder Builder, lookupRepo storage.LookupRepository, logger *slog.Logger) *ChecklistAPI {
	return &ChecklistAPI{
		builder:    builder,
		lookupRepo: lookupRepo,
		logger:     logger,
	}
}

func (c *ChecklistAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resource, tail := ShiftPath(r.URL.Path)
	format, _ := ShiftPath(tail)

	switch {
	case resource != "youtube" || (format != "" && format != "markdown"):
		Error(w, http.StatusNotFound, "Not found")
	case r.Method != http.MethodGet:
		Error(w, http.StatusMethodNotAllowed, "Method not allowed")
	case format == "markdown":
		c.Markdown(w, r)
	default:
		c.Result(w, r)
	}
}

// Result responds with the normalized result as json.
func (c *ChecklistAPI) Result(w http.ResponseWriter, r *http.Request) {
	result, ok := c.build(w, r)
	if !ok {
		return
	}
	if err := JSON(w, http.StatusOK, result); err != nil {
		c.returnErr(w, http.StatusInternalServerError, "Internal server error", err)
	}
}

func (c *ChecklistAPI) Markdown(w http.ResponseWriter, r *http.Request) {
	result, ok := c.build(w, r)
	if !ok {
		return
	}

	var body string
	switch res := result.(type) {
	case model.VideoResult:
		body = markdown.Video(res)
	case model.PlaylistResult:
		body = markdown.Playlist(res)
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, body)
}

// build validates the query and runs the aggregation. If it returns false,
// the error response has already been written.
func (c *ChecklistAPI) build(w http.ResponseWriter, r *http.Request) (any, bool) {
	query := r.URL.Query()
	rawURL := query.Get("url")
	if rawURL == "" {
		Error(w, http.StatusBadRequest, "URL is required")
		return nil, false
	}

	switch model.LookupKind(query.Get("type")) {
	case model.KindVideo:
		videoID, ok := extract.VideoID(rawURL)
		if !ok {
			Error(w, http.StatusBadRequest, "Invalid YouTube URL")
			return nil, false
		}
		lookup := model.NewLookup(model.KindVideo, string(videoID))
		result, err := c.builder.BuildVideoResult(r.Context(), videoID)
		c.record(r.Context(), lookup, err)
		if err != nil {
			c.returnBuildErr(w, err)
			return nil, false
		}
		return result, true

	case model.KindPlaylist:
		playlistID, ok := extract.PlaylistID(rawURL)
		if !ok {
			Error(w, http.StatusBadRequest, "Invalid YouTube playlist URL")
			return nil, false
		}
		lookup := model.NewLookup(model.KindPlaylist, string(playlistID))
		result, err := c.builder.BuildPlaylistResult(r.Context(), playlistID)
		if err == nil {
			lookup.Items = result.TotalVideos
			lookup.TotalSeconds = result.TotalSeconds
		}
		c.record(r.Context(), lookup, err)
		if err != nil {
			c.returnBuildErr(w, err)
			return nil, false
		}
		return result, true

	default:
		Error(w, http.StatusBadRequest, "Invalid type parameter")
		return nil, false
	}
}

func (c *ChecklistAPI) record(ctx context.Context, lookup *model.Lookup, err error) {
	if c.lookupRepo == nil {
		return
	}
	switch {
	case err == nil:
		lookup.Status = model.LookupStatusOK
	case errors.Is(err, model.ErrNotFound):
		lookup.Status = model.LookupStatusNotFound
	case errors.Is(err, model.ErrTimeout):
		lookup.Status = model.LookupStatusTimeout
	default:
		lookup.Status = model.LookupStatusFailed
	}
	if saveErr := c.lookupRepo.Save(context.WithoutCancel(ctx), lookup); saveErr != nil {
		c.logger.Error("could not record lookup", slog.String("id", lookup.ID.String()), slog.String("err", saveErr.Error()))
	}
}

func (c *ChecklistAPI) returnBuildErr(w http.ResponseWriter, err error) {
	var nfErr *model.NotFoundError
	switch {
	case errors.As(err, &nfErr):
		kind := nfErr.Kind
		if kind != "" {
			kind = strings.ToUpper(kind[:1]) + kind[1:]
		}
		c.returnErr(w, http.StatusNotFound, fmt.Sprintf("%s not found", kind), err)
	case errors.Is(err, model.ErrTimeout):
		c.returnErr(w, http.StatusGatewayTimeout, "Request timed out", err)
	default:
		c.returnErr(w, http.StatusInternalServerError, "Internal server error", err)
	}
}

func (c *ChecklistAPI) returnErr(w http.ResponseWriter, status int, message string, err error) {
	c.logger.Error(message, slog.Int("status", status), slog.String("err", err.Error()))
	Error(w, status, message)
}
