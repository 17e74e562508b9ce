package config

// EmoteEntry is the config-level shape of one emote definition.
// The emotes package converts these into registry definitions; the
// world list stored on disk overrides them when present.
type EmoteEntry struct {
	ID        string
	Name      string
	ImagePath string
	OffsetX   float64
	OffsetY   float64
	Scale     float64
	Duration  float32 // seconds at full opacity
	FadeIn    float32 // seconds
	FadeOut   float32 // seconds
}

// EmoteConfig contains emote playback defaults
type EmoteConfig struct {
	Defaults []EmoteEntry

	// Fallback timings for stored definitions that omit them
	DefaultDuration float32
	DefaultFadeIn   float32
	DefaultFadeOut  float32
	DefaultScale    float64
}

var Emote EmoteConfig

func init() {
	Emote = EmoteConfig{
		DefaultDuration: 1.5,
		DefaultFadeIn:   0.2,
		DefaultFadeOut:  0.2,
		DefaultScale:    1.0,
		Defaults: []EmoteEntry{
			{ID: "heart", Name: "Heart", ImagePath: "emotes/heart.png"},
			{ID: "skull", Name: "Skull", ImagePath: "emotes/skull.png"},
			{ID: "laugh", Name: "Laugh", ImagePath: "emotes/laugh.png"},
			{ID: "question", Name: "Question", ImagePath: "emotes/question.png"},
			{ID: "exclaim", Name: "Exclamation", ImagePath: "emotes/exclaim.png"},
			{ID: "zzz", Name: "Sleep", ImagePath: "emotes/zzz.png"},
		},
	}

	for i := range Emote.Defaults {
		e := &Emote.Defaults[i]
		e.Duration = Emote.DefaultDuration
		e.FadeIn = Emote.DefaultFadeIn
		e.FadeOut = Emote.DefaultFadeOut
		e.Scale = Emote.DefaultScale
		e.OffsetY = 6
	}
}
