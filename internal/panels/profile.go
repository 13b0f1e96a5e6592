package panels

import (
	"strings"

	fetcher "github.com/spacemagneto/panel-fetcher"
)

// ProfileURL is the resource describing the logged-in user.
const ProfileURL = "/api/me"

// User identifies an account.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// UserInfo is the payload of ProfileURL.
type UserInfo struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
	User      User   `json:"user"`
}

// ProfileView shows the profile of the logged-in user.
type ProfileView struct {
	Username  string
	Name      string
	AvatarURL string
}

func (v ProfileView) String() string {
	var b strings.Builder

	b.WriteString("Username: " + v.Username)
	if v.Name != "" {
		b.WriteString("\nName:     " + v.Name)
	}
	if v.AvatarURL != "" {
		b.WriteString("\nAvatar:   " + v.AvatarURL)
	}

	return b.String()
}

// Profile returns the user profile panel.
func Profile() Panel[UserInfo] {
	return Panel[UserInfo]{
		Title:               "User details",
		URL:                 ProfileURL,
		LoadingMessage:      "Fetching user information",
		GenericErrorMessage: "Error fetching user information",
		Renderer: fetcher.RendererFunc[UserInfo](func(info UserInfo) fetcher.View {
			return ProfileView{
				Username:  info.User.Username,
				Name:      info.Name,
				AvatarURL: info.AvatarURL,
			}
		}),
	}
}
