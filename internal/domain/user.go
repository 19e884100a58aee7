package domain

import "strings"

// DefaultDisplayName is used when no other name source is present.
const DefaultDisplayName = "User"

// User is an authenticated identity as reported by the auth provider.
type User struct {
	ID    string
	Email string

	// provider metadata
	FullName  string
	AvatarURL string
	Picture   string
}

// FirstPresent returns the first candidate that is not blank, or "" if none is.
func FirstPresent(candidates ...string) string {
	for _, c := range candidates {
		if strings.TrimSpace(c) != "" {
			return c
		}
	}
	return ""
}

// DisplayName resolves, in order: provider name, email local part, "User".
func (u User) DisplayName() string {
	return FirstPresent(u.FullName, u.emailLocalPart(), DefaultDisplayName)
}

// Avatar resolves, in order: provider avatar, provider picture.
// An empty result means the caller renders initials instead.
func (u User) Avatar() string {
	return FirstPresent(u.AvatarURL, u.Picture)
}

func (u User) emailLocalPart() string {
	local, _, _ := strings.Cut(u.Email, "@")
	return local
}
