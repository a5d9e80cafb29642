package brand

// The tone and value catalogs are static configuration data, not user
// data. A brand's RefinedTone must have been listed under one of its
// CoreTones at creation time.

// CoreTone is a broad voice category.
type CoreTone struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// RefinedTone is a specific style within a core tone.
type RefinedTone struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Example     string   `json:"example"`
	Rules       []string `json:"rules"`
}

// ValuePair is a binary forced-choice dimension describing audience
// values. Exactly one of the two sides is chosen per pair.
type ValuePair struct {
	ID    string    `json:"id"`
	Left  ValueSide `json:"leftValue"`
	Right ValueSide `json:"rightValue"`
}

// ValueSide is one side of a value pair.
type ValueSide struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// CoreTones lists the six broad voice categories.
var CoreTones = []CoreTone{
	{ID: "hard-hitting", Name: "Hard-hitting, no-nonsense", Icon: "💪", Description: "Direct, bold, and results-focused communication"},
	{ID: "polite-personal", Name: "Polite and personal", Icon: "🤝", Description: "Warm, approachable, and relationship-focused"},
	{ID: "polished-professional", Name: "Polished and professional", Icon: "👔", Description: "Refined, authoritative, and business-focused"},
	{ID: "authentic-storytelling", Name: "Authentic and storytelling", Icon: "📖", Description: "Narrative-driven, vulnerable, and human"},
	{ID: "raw-real", Name: "Raw and real", Icon: "🔥", Description: "Unfiltered, honest, and emotionally charged"},
	{ID: "hot-take", Name: "Hot take (provocative)", Icon: "⚡", Description: "Contrarian, debate-sparking, and attention-grabbing"},
}

// RefinedTones maps a core tone ID to its four refined styles.
var RefinedTones = map[string][]RefinedTone{
	"hard-hitting": {
		{
			ID:          "tactical-minimalist",
			Name:        "Tactical Minimalist",
			Description: "Zero fluff, maximum impact. Every word earns its place.",
			Example:     "Stop overthinking. Start doing. Results follow action, not analysis.",
			Rules:       []string{"rule_of_threes", "short_sentences", "action_verbs"},
		},
		{
			ID:          "results-commander",
			Name:        "Results Commander",
			Description: "Military precision meets business strategy. Orders, not suggestions.",
			Example:     "Execute the plan. Measure the outcome. Optimize and repeat.",
			Rules:       []string{"imperative_voice", "concrete_metrics", "urgency_triggers"},
		},
		{
			ID:          "truth-bomber",
			Name:        "Truth Bomber",
			Description: "Uncomfortable truths delivered with surgical precision.",
			Example:     "Your comfort zone is killing your potential. Time to get uncomfortable.",
			Rules:       []string{"contrarian_hooks", "reality_checks", "wake_up_calls"},
		},
		{
			ID:          "efficiency-expert",
			Name:        "Efficiency Expert",
			Description: "Streamlined communication for maximum productivity focus.",
			Example:     "Three steps. Five minutes. Done. Complexity is the enemy of execution.",
			Rules:       []string{"numbered_lists", "time_constraints", "simplification"},
		},
	},
	"polite-personal": {
		{
			ID:          "friendly-guide",
			Name:        "Friendly Guide",
			Description: "Like talking to your most supportive friend who always has your back.",
			Example:     "I know this feels overwhelming right now, but you've got this. Let's break it down together.",
			Rules:       []string{"empathy_first", "inclusive_language", "supportive_tone"},
		},
		{
			ID:          "warm-mentor",
			Name:        "Warm Mentor",
			Description: "Gentle wisdom with personal touches and encouraging guidance.",
			Example:     "Here's what I wish someone had told me when I was starting out...",
			Rules:       []string{"personal_anecdotes", "gentle_corrections", "encouragement"},
		},
		{
			ID:          "thoughtful-companion",
			Name:        "Thoughtful Companion",
			Description: "Considerate, patient, and always thinking of your best interests.",
			Example:     "Take your time with this. There's no rush, and I'll be here when you're ready.",
			Rules:       []string{"patience_signals", "consideration_markers", "availability_assurance"},
		},
		{
			ID:          "caring-coach",
			Name:        "Caring Coach",
			Description: "Combines gentle support with accountability and growth focus.",
			Example:     "I believe in you, and I also believe you can push yourself a little further.",
			Rules:       []string{"belief_statements", "gentle_challenges", "growth_mindset"},
		},
	},
	"polished-professional": {
		{
			ID:          "executive-advisor",
			Name:        "Executive Advisor",
			Description: "C-suite level insights delivered with authority and precision.",
			Example:     "Strategic implementation requires three critical components: vision alignment, resource allocation, and execution discipline.",
			Rules:       []string{"strategic_language", "executive_terminology", "structured_thinking"},
		},
		{
			ID:          "industry-expert",
			Name:        "Industry Expert",
			Description: "Deep expertise communicated with professional credibility.",
			Example:     "Based on fifteen years of market analysis, the data suggests a clear directional shift.",
			Rules:       []string{"credibility_markers", "data_references", "professional_terminology"},
		},
		{
			ID:          "thought-leader",
			Name:        "Thought Leader",
			Description: "Forward-thinking perspectives that shape industry conversations.",
			Example:     "The future of our industry hinges on this fundamental shift in approach.",
			Rules:       []string{"future_focus", "industry_shaping", "visionary_language"},
		},
		{
			ID:          "consultant-sage",
			Name:        "Consultant Sage",
			Description: "Wise counsel delivered with professional polish and proven frameworks.",
			Example:     "Our proprietary framework has consistently delivered measurable results across diverse market conditions.",
			Rules:       []string{"framework_references", "proven_methodologies", "results_focus"},
		},
	},
	"authentic-storytelling": {
		{
			ID:          "vulnerable-narrator",
			Name:        "Vulnerable Narrator",
			Description: "Raw honesty wrapped in compelling narrative structure.",
			Example:     "I remember sitting in my car after that meeting, hands shaking, wondering if I'd just made the biggest mistake of my life.",
			Rules:       []string{"emotional_honesty", "sensory_details", "moment_capture"},
		},
		{
			ID:          "journey-mapper",
			Name:        "Journey Mapper",
			Description: "Transforms experiences into relatable roadmaps for others.",
			Example:     "The path from where I was to where I am wasn't linear, but every detour taught me something essential.",
			Rules:       []string{"journey_metaphors", "lesson_extraction", "path_visualization"},
		},
		{
			ID:          "human-connector",
			Name:        "Human Connector",
			Description: "Finds universal truths in personal experiences.",
			Example:     "We all have that moment when we realize we're not as prepared as we thought we were.",
			Rules:       []string{"universal_experiences", "shared_humanity", "connection_bridges"},
		},
		{
			ID:          "wisdom-weaver",
			Name:        "Wisdom Weaver",
			Description: "Intertwines life lessons with practical insights through story.",
			Example:     "My grandmother used to say that the best lessons come disguised as problems. She was right.",
			Rules:       []string{"wisdom_integration", "generational_insights", "practical_application"},
		},
	},
	"raw-real": {
		{
			ID:          "unfiltered-truth",
			Name:        "Unfiltered Truth",
			Description: "No sugar-coating, no pretense, just straight-up reality.",
			Example:     "Let's cut through the BS. You're not failing because you don't know what to do. You're failing because you're not doing it.",
			Rules:       []string{"no_sugarcoating", "direct_confrontation", "reality_delivery"},
		},
		{
			ID:          "emotional-hurricane",
			Name:        "Emotional Hurricane",
			Description: "Intense feelings channeled into powerful, moving content.",
			Example:     "I'm angry. Angry at the systems that keep us small, angry at the voices that tell us to settle.",
			Rules:       []string{"emotion_leading", "intensity_maintenance", "passion_expression"},
		},
		{
			ID:          "rebel-voice",
			Name:        "Rebel Voice",
			Description: "Challenges conventions with fierce independence and authenticity.",
			Example:     "They told me to follow the rules. I decided to write my own.",
			Rules:       []string{"convention_challenging", "independence_assertion", "rule_breaking"},
		},
		{
			ID:          "warrior-spirit",
			Name:        "Warrior Spirit",
			Description: "Battles fought in public, scars worn with pride.",
			Example:     "Every scar tells a story. Every failure built strength. Every setback prepared me for this moment.",
			Rules:       []string{"battle_metaphors", "strength_through_struggle", "proud_resilience"},
		},
	},
	"hot-take": {
		{
			ID:          "contrarian-catalyst",
			Name:        "Contrarian Catalyst",
			Description: "Sparks debate by challenging popular assumptions.",
			Example:     "Everyone's talking about work-life balance. I think it's the biggest lie we tell ourselves.",
			Rules:       []string{"assumption_challenging", "debate_sparking", "popular_opinion_flipping"},
		},
		{
			ID:          "provocative-prophet",
			Name:        "Provocative Prophet",
			Description: "Delivers uncomfortable predictions with confident conviction.",
			Example:     "Mark my words: in five years, half the advice you're following today will be obsolete.",
			Rules:       []string{"prediction_making", "future_challenging", "conviction_statements"},
		},
		{
			ID:          "sacred-cow-slayer",
			Name:        "Sacred Cow Slayer",
			Description: "Takes aim at untouchable industry beliefs and practices.",
			Example:     "That strategy everyone swears by? It's keeping you exactly where you are.",
			Rules:       []string{"sacred_challenging", "industry_myth_busting", "status_quo_attacking"},
		},
		{
			ID:          "attention-magnet",
			Name:        "Attention Magnet",
			Description: "Crafts irresistible hooks that demand engagement.",
			Example:     "I'm about to tell you why everything you learned about success is wrong.",
			Rules:       []string{"hook_mastery", "curiosity_gaps", "engagement_magnets"},
		},
	},
}

// ValuePairs lists the four audience value dimensions.
var ValuePairs = []ValuePair{
	{
		ID:    "time_vs_money",
		Left:  ValueSide{Key: "time_over_money", Label: "Time > Money", Description: "Values efficiency and time freedom"},
		Right: ValueSide{Key: "money_over_time", Label: "Money > Time", Description: "Prioritizes financial growth and investment"},
	},
	{
		ID:    "authenticity_vs_professionalism",
		Left:  ValueSide{Key: "authenticity_first", Label: "Authenticity", Description: "Values genuine, real communication"},
		Right: ValueSide{Key: "professionalism_first", Label: "Professionalism", Description: "Prefers polished, business-focused approach"},
	},
	{
		ID:    "legacy_vs_monetization",
		Left:  ValueSide{Key: "legacy_building", Label: "Legacy-building", Description: "Focused on long-term impact and meaning"},
		Right: ValueSide{Key: "monetization_now", Label: "Monetization now", Description: "Prioritizes immediate revenue generation"},
	},
	{
		ID:    "expression_vs_optimization",
		Left:  ValueSide{Key: "self_expression", Label: "Self-expression", Description: "Values creative freedom and personal voice"},
		Right: ValueSide{Key: "market_optimization", Label: "Market optimization", Description: "Focuses on market-driven content strategy"},
	},
}

// CoreToneByID looks up a core tone in the catalog.
func CoreToneByID(id string) (CoreTone, bool) {
	for _, t := range CoreTones {
		if t.ID == id {
			return t, true
		}
	}
	return CoreTone{}, false
}

// RefinedTonesFor returns every refined tone available under the given
// core tones, in catalog order.
func RefinedTonesFor(coreTones []string) []RefinedTone {
	var out []RefinedTone
	for _, coreID := range coreTones {
		out = append(out, RefinedTones[coreID]...)
	}
	return out
}

// RefinedToneByID looks up a refined tone under the given core tones.
func RefinedToneByID(coreTones []string, id string) (RefinedTone, bool) {
	for _, t := range RefinedTonesFor(coreTones) {
		if t.ID == id {
			return t, true
		}
	}
	return RefinedTone{}, false
}

// ValuePairByID looks up a value pair in the catalog.
func ValuePairByID(id string) (ValuePair, bool) {
	for _, p := range ValuePairs {
		if p.ID == id {
			return p, true
		}
	}
	return ValuePair{}, false
}

// SideKey reports whether key names one of the pair's two sides.
func (p ValuePair) SideKey(key string) bool {
	return key == p.Left.Key || key == p.Right.Key
}
