package brand

import "time"

// Brand is a saved voice configuration: tone, audience, and offers used
// to flavor drafted content.
type Brand struct {
	// ID is a ULID that uniquely identifies this brand
	ID string `json:"id"`

	// Name is the display name, required non-empty by the setup workflow
	Name string `json:"name"`

	// CoreTones holds the selected core tone IDs from the catalog
	CoreTones []string `json:"coreTones"`

	// RefinedTone is the selected refined tone ID, drawn from the
	// catalog of one of the chosen core tones
	RefinedTone string `json:"refinedTone"`

	// RefinedToneName and ToneRules are denormalized from the catalog
	// at creation time and not re-derived later
	RefinedToneName string   `json:"refinedToneName"`
	ToneRules       []string `json:"toneRules"`

	// AudienceDescription is free text describing who the brand serves
	AudienceDescription string `json:"audienceDescription"`

	// AvatarValues maps a value-pair ID to the chosen side's key
	AvatarValues map[string]string `json:"avatarValues"`

	// Offers is the ordered list of things the brand sells
	Offers []Offer `json:"offers"`

	// CreatedAt is set once at creation and never mutated
	CreatedAt time.Time `json:"createdAt"`
}

// Offer is a single product or service attached to a brand. Names are
// not unique.
type Offer struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	CTAURL      string `json:"ctaUrl"`
}
