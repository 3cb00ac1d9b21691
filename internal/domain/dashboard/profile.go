package dashboard

import (
	"strings"

	"trading-dashboard/internal/domain/user"
)

// DefaultPlaceholderAvatar is used when neither source has an image.
const DefaultPlaceholderAvatar = "/images/placeholder-avatar.png"

// IdentityProfile holds the fields supplied by the external identity provider.
type IdentityProfile struct {
	FirstName string
	FullName  string
	Email     string
	ImageURL  string
}

// SidebarProfile is the merged profile shown in the header and sidebar.
type SidebarProfile struct {
	FirstName    string
	FullName     string
	Email        string
	ProfileImage string
}

// ReconcileProfile merges provider and lookup fields. A non-blank provider
// value wins, the lookup value is the fallback and placeholder is the final
// avatar fallback.
func ReconcileProfile(provider IdentityProfile, lookup user.Profile, placeholder string) SidebarProfile {
	if placeholder == "" {
		placeholder = DefaultPlaceholderAvatar
	}

	fullName := firstNonBlank(provider.FullName, lookup.FullName)
	firstName := firstNonBlank(provider.FirstName, firstWord(fullName))

	return SidebarProfile{
		FirstName:    firstName,
		FullName:     fullName,
		Email:        firstNonBlank(provider.Email, lookup.Email),
		ProfileImage: firstNonBlank(provider.ImageURL, lookup.ProfileImage, placeholder),
	}
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

func firstWord(s string) string {
	if fields := strings.Fields(s); len(fields) > 0 {
		return fields[0]
	}
	return ""
}
