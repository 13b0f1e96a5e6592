package panels

import (
	"fmt"
	"strings"

	fetcher "github.com/spacemagneto/panel-fetcher"
)

// ChannelsURL is the resource listing the channels visible to the user.
const ChannelsURL = "/api/channels"

// Channel is one entry of the ChannelsURL payload.
type Channel struct {
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	Private          bool    `json:"private"`
	SizeLimit        *int64  `json:"size_limit"`
	MirrorChannelURL *string `json:"mirror_channel_url"`
	MirrorMode       *string `json:"mirror_mode"`
}

// ChannelListView lists channels one per line.
type ChannelListView struct {
	Channels []Channel
}

func (v ChannelListView) String() string {
	if len(v.Channels) == 0 {
		return "No channels"
	}

	lines := make([]string, 0, len(v.Channels))
	for _, ch := range v.Channels {
		line := ch.Name
		if ch.Private {
			line += " (private)"
		}
		if ch.MirrorChannelURL != nil && *ch.MirrorChannelURL != "" {
			mode := "mirror"
			if ch.MirrorMode != nil && *ch.MirrorMode != "" {
				mode = *ch.MirrorMode
			}
			line += fmt.Sprintf(" [%s of %s]", mode, *ch.MirrorChannelURL)
		}
		if ch.Description != "" {
			line += ": " + ch.Description
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// Channels returns the channel list panel.
func Channels() Panel[[]Channel] {
	return Panel[[]Channel]{
		Title:               "Channels",
		URL:                 ChannelsURL,
		LoadingMessage:      "Loading list of available channels",
		GenericErrorMessage: "Error fetching list of channels",
		Renderer: fetcher.RendererFunc[[]Channel](func(channels []Channel) fetcher.View {
			return ChannelListView{Channels: channels}
		}),
	}
}
