package content

// Platform is a target social destination with its posting limit.
type Platform struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	MaxLength int    `json:"maxLength"`
}

// AllPlatforms is the sentinel used by the dashboard filter to mean
// "no platform restriction".
const AllPlatforms = "all"

// Platforms is the static platform catalog.
var Platforms = []Platform{
	{ID: "instagram", Name: "Instagram", Icon: "📷", MaxLength: 2200},
	{ID: "twitter", Name: "Twitter/X", Icon: "🐦", MaxLength: 280},
	{ID: "linkedin", Name: "LinkedIn", Icon: "💼", MaxLength: 3000},
	{ID: "facebook", Name: "Facebook", Icon: "👥", MaxLength: 63206},
	{ID: "tiktok", Name: "TikTok", Icon: "🎵", MaxLength: 300},
	{ID: "youtube", Name: "YouTube", Icon: "📺", MaxLength: 5000},
}

// PlatformByID looks up a platform in the catalog.
func PlatformByID(id string) (Platform, bool) {
	for _, p := range Platforms {
		if p.ID == id {
			return p, true
		}
	}
	return Platform{}, false
}
