package domain

import "strings"

// RatingPolicyMode selects the privilege needed to change a movie rating.
type RatingPolicyMode string

const (
	// RatingPolicyVerified lets any requester known to the User service rate a movie.
	RatingPolicyVerified RatingPolicyMode = "verified"
	// RatingPolicyAdmin restricts rating changes to admins.
	RatingPolicyAdmin RatingPolicyMode = "admin"
)

// RatingPolicy decides how updateRating is gated.
type RatingPolicy struct {
	mode RatingPolicyMode
}

// NewRatingPolicy defaults to verified when mode is unknown.
func NewRatingPolicy(mode RatingPolicyMode) RatingPolicy {
	if mode != RatingPolicyAdmin {
		mode = RatingPolicyVerified
	}
	return RatingPolicy{mode: mode}
}

// ParseRatingPolicyMode normalises textual input into a supported mode.
func ParseRatingPolicyMode(value string) RatingPolicyMode {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case string(RatingPolicyAdmin):
		return RatingPolicyAdmin
	default:
		return RatingPolicyVerified
	}
}

func (p RatingPolicy) Mode() RatingPolicyMode {
	return p.mode
}

// RequiresAdmin indicates whether rating changes need admin rights.
func (p RatingPolicy) RequiresAdmin() bool {
	return p.mode == RatingPolicyAdmin
}
