// Package markdown renders normalized results as Markdown checklists.
package markdown

import (
	"fmt"
	"strings"

	"ewintr.nl/ytchecklist/model"
)

func Video(r model.VideoResult) string {
	return fmt.Sprintf("**[%s](%s)**\n\n**[%s](%s)**\n\n- [ ] **[%s](%s) (%s)**",
		r.Title, r.URL, r.ChannelTitle, r.ChannelURL, r.Title, r.EmbedURL, r.Duration)
}

// Playlist renders one checklist line per entry, numbered by position.
func Playlist(r model.PlaylistResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**[%s](%s)**\n\n**[%s](%s)**\n\n", r.Title, r.URL, r.ChannelTitle, r.ChannelURL)
	for _, v := range r.Videos {
		fmt.Fprintf(&b, "- [ ] **%02d. [%s](%s) (%s)**\n", v.Position, v.Title, v.EmbedURL, v.Duration)
	}
	fmt.Fprintf(&b, "\n**Total Playlist Duration: %s**", r.TotalDuration)
	fmt.Fprintf(&b, "\n**Total Videos: %d**", r.TotalVideos)

	return b.String()
}
