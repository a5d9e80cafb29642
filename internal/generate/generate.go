// Package generate is the simulated AI rewrite: a deterministic string
// transformation keyed on the brand's refined tone and the target
// platform, behind a fixed-plus-random delay. There is no real model
// and no cancellation support beyond the context.
package generate

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ewaldman/brandloom/internal/brand"
	"github.com/ewaldman/brandloom/internal/config"
	"github.com/ewaldman/brandloom/internal/content"
)

// Generator produces platform-shaped drafts. Zero delay and jitter
// make it synchronous, which is what tests use.
type Generator struct {
	Delay  time.Duration
	Jitter time.Duration
}

// New builds a Generator from config.
func New(cfg *config.Config) *Generator {
	return &Generator{
		Delay:  time.Duration(cfg.GenerateDelayMs) * time.Millisecond,
		Jitter: time.Duration(cfg.GenerateJitterMs) * time.Millisecond,
	}
}

// Draft rewrites the original content in the brand's voice for one
// platform. Concurrent drafts resolve independently; ordering between
// them is whatever the scheduler gives (last write wins at the caller).
func (g *Generator) Draft(ctx context.Context, original string, b brand.Brand, p content.Platform) (content.Variant, error) {
	if err := g.wait(ctx); err != nil {
		return content.Variant{}, err
	}

	text := Rewrite(original, b, p)

	return content.Variant{
		Content:        text,
		Platform:       p.Name,
		CharacterCount: utf8.RuneCountInString(text),
		MaxLength:      p.MaxLength,
	}, nil
}

// wait sleeps for the fixed delay plus random jitter, or until the
// context is done.
func (g *Generator) wait(ctx context.Context) error {
	d := g.Delay
	if g.Jitter > 0 {
		d += rand.N(g.Jitter)
	}
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Rewrite is the pure transformation behind Draft.
func Rewrite(original string, b brand.Brand, p content.Platform) string {
	text := original

	switch {
	case b.RefinedTone == "tactical-minimalist":
		// One bullet per sentence, fluff stripped.
		var bullets []string
		for _, sentence := range strings.Split(original, ".") {
			sentence = strings.TrimSpace(sentence)
			if sentence != "" {
				bullets = append(bullets, "• "+sentence+".")
			}
		}
		text = strings.Join(bullets, "\n")
	case b.RefinedTone == "friendly-guide":
		text = "Hey there! 👋\n\n" + original + "\n\nHope this helps! 💪"
	case p.ID == "instagram":
		text = original + "\n\n✨ What's your take on this?\n\n#contentcreation #solopreneur #growth"
	}

	return Truncate(text, p.MaxLength)
}

// Truncate caps text at max runes, replacing the tail with "...".
func Truncate(text string, max int) string {
	if utf8.RuneCountInString(text) <= max {
		return text
	}
	runes := []rune(text)
	return string(runes[:max-3]) + "..."
}
