package brand

import "strings"

// Setup wizard steps, in order.
const (
	StepName = iota + 1
	StepCoreTone
	StepRefinedTone
	StepAudience
	StepValues
	StepOffers
)

// SetupDraft accumulates the answers of the brand setup wizard. The
// store itself does not validate; this is the caller-side check run
// before a draft is turned into a Brand.
type SetupDraft struct {
	Name                string            `json:"name"`
	CoreTones           []string          `json:"coreTones"`
	RefinedTone         string            `json:"refinedTone"`
	AudienceDescription string            `json:"audienceDescription"`
	AvatarValues        map[string]string `json:"avatarValues"`
	Offers              []Offer           `json:"offers"`
}

// ValidateStep checks a single wizard step and returns a user-facing
// problem message, or "" if the step is complete. The offers step has
// no requirement.
func (d SetupDraft) ValidateStep(step int) string {
	switch step {
	case StepName:
		if strings.TrimSpace(d.Name) == "" {
			return "please enter a brand name"
		}
	case StepCoreTone:
		if len(d.CoreTones) == 0 {
			return "please select at least one core tone"
		}
		for _, id := range d.CoreTones {
			if _, ok := CoreToneByID(id); !ok {
				return "unknown core tone: " + id
			}
		}
	case StepRefinedTone:
		if d.RefinedTone == "" {
			return "please select a refined tone style"
		}
		if _, ok := RefinedToneByID(d.CoreTones, d.RefinedTone); !ok {
			return "refined tone is not available for the selected core tones"
		}
	case StepAudience:
		if strings.TrimSpace(d.AudienceDescription) == "" {
			return "please describe your target audience"
		}
	case StepValues:
		if len(d.AvatarValues) < len(ValuePairs) {
			return "please make a selection for each value pair"
		}
		for pairID, key := range d.AvatarValues {
			pair, ok := ValuePairByID(pairID)
			if !ok {
				return "unknown value pair: " + pairID
			}
			if !pair.SideKey(key) {
				return "invalid selection for value pair " + pairID
			}
		}
	}
	return ""
}

// Validate runs every wizard step check and returns the problems found.
func (d SetupDraft) Validate() []string {
	var problems []string
	for step := StepName; step <= StepOffers; step++ {
		if msg := d.ValidateStep(step); msg != "" {
			problems = append(problems, msg)
		}
	}
	return problems
}

// Build assembles a Brand from a completed draft, denormalizing the
// refined tone's display name and rules from the catalog. ID and
// CreatedAt are left for the store to assign.
func (d SetupDraft) Build() Brand {
	b := Brand{
		Name:                d.Name,
		CoreTones:           d.CoreTones,
		RefinedTone:         d.RefinedTone,
		AudienceDescription: d.AudienceDescription,
		AvatarValues:        d.AvatarValues,
		Offers:              d.Offers,
	}
	if tone, ok := RefinedToneByID(d.CoreTones, d.RefinedTone); ok {
		b.RefinedToneName = tone.Name
		b.ToneRules = tone.Rules
	}
	return b
}
