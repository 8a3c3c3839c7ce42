package dto

import (
	"math"
	"strconv"
	"strings"

	"game-marketplace/internal/model"

	"github.com/shopspring/decimal"
)

// GameInput carries game fields the way a form submits them: numbers as text and
// tags either as a comma separated string or as a list. A nil field is "not provided".
type GameInput struct {
	Title       *string  `json:"title,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Price       *string  `json:"price,omitempty"`
	Rating      *string  `json:"rating,omitempty"`
	ImageURL    *string  `json:"imageUrl,omitempty"`
	Description *string  `json:"description,omitempty"`
	Tags        *string  `json:"tags,omitempty"` // "open world, rpg"
	TagList     []string `json:"-"`
	Developer   *string  `json:"developer,omitempty"`
	Publisher   *string  `json:"publisher,omitempty"`
	ReleaseDate *string  `json:"releaseDate,omitempty"`
	IsFree      *bool    `json:"isFree,omitempty"`
}

// NewGame builds a record for insertion. Price and rating that do not parse
// become 0.
func (in GameInput) NewGame(id int) model.Game {
	g := in.Merge(model.Game{})
	g.ID = id
	if g.Tags == nil {
		g.Tags = []string{}
	}
	return g
}

// Merge overrides the fields of existing that are set on the input. The id is
// never touched. Price and rating fall back to the existing value when the
// provided text does not parse.
func (in GameInput) Merge(existing model.Game) model.Game {
	g := existing.Clone()

	setString(&g.Title, in.Title)
	if in.Category != nil {
		g.Category = model.Category(*in.Category)
	}
	setString(&g.ImageURL, in.ImageURL)
	setString(&g.Description, in.Description)
	setString(&g.Developer, in.Developer)
	setString(&g.Publisher, in.Publisher)
	setString(&g.ReleaseDate, in.ReleaseDate)
	if in.IsFree != nil {
		g.IsFree = *in.IsFree
	}

	if in.Price != nil {
		g.Price = CoercePrice(*in.Price, existing.Price)
	}
	if in.Rating != nil {
		g.Rating = CoerceRating(*in.Rating, existing.Rating)
	}

	switch {
	case in.TagList != nil:
		g.Tags = normalizeTags(in.TagList)
	case in.Tags != nil:
		g.Tags = SplitTags(*in.Tags)
	}

	return g
}

// CoercePrice parses s as a non-negative amount.
func CoercePrice(s string, fallback decimal.Decimal) decimal.Decimal {
	p, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	if p.IsNegative() {
		return decimal.Zero
	}
	return p
}

// CoerceRating parses s and clamps it to [0,5]. NaN counts as unparsable.
func CoerceRating(s string, fallback float64) float64 {
	r, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(r) {
		return fallback
	}
	return min(max(r, 0), 5)
}

func SplitTags(s string) []string {
	return normalizeTags(strings.Split(s, ","))
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// ProfileUpdate lists the user fields editable from the profile page. Role,
// counters and wallet are not editable here.
type ProfileUpdate struct {
	DisplayName *string `json:"displayName,omitempty"`
	Email       *string `json:"email,omitempty"`
	AvatarURL   *string `json:"avatarUrl,omitempty"`
	Bio         *string `json:"bio,omitempty"`
	Location    *string `json:"location,omitempty"`
}

func (p ProfileUpdate) Apply(u model.User) model.User {
	setString(&u.DisplayName, p.DisplayName)
	setString(&u.Email, p.Email)
	setString(&u.AvatarURL, p.AvatarURL)
	setString(&u.Bio, p.Bio)
	setString(&u.Location, p.Location)
	return u
}

func (p ProfileUpdate) Empty() bool {
	return p.DisplayName == nil && p.Email == nil && p.AvatarURL == nil &&
		p.Bio == nil && p.Location == nil
}
