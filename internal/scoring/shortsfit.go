package scoring

import "time"

// FitInput is the catalog metadata the production-fit score is computed from.
type FitInput struct {
	AudienceCount    int64
	Rating           float64
	FirstUploadAt    *time.Time // earliest known shorts upload for the title
	CopyrightWarning bool
	ChannelCount     int // channels already producing shorts for the title
	VerifiedSafe     bool
	ReleaseDate      *time.Time
}

// FitScore rates how suitable a title is as shorts source material on a
// 0-100 scale: popularity (30), quality (20), copyright history (30),
// competition (20), plus verification and recency bonuses.
func FitScore(in FitInput, now time.Time) int {
	score := 0

	// Popularity by theater audience; rating fallback for dramas that have
	// no admission figures.
	switch {
	case in.AudienceCount >= 10000000:
		score += 30
	case in.AudienceCount >= 5000000:
		score += 25
	case in.AudienceCount >= 3000000:
		score += 20
	case in.AudienceCount >= 1000000:
		score += 15
	case in.AudienceCount >= 500000:
		score += 10
	}
	if in.AudienceCount == 0 && in.Rating > 0 {
		switch {
		case in.Rating >= 8.5:
			score += 25
		case in.Rating >= 8.0:
			score += 20
		case in.Rating >= 7.5:
			score += 15
		case in.Rating >= 7.0:
			score += 10
		}
	}

	// Quality.
	switch {
	case in.Rating >= 9.0:
		score += 20
	case in.Rating >= 8.5:
		score += 18
	case in.Rating >= 8.0:
		score += 15
	case in.Rating >= 7.5:
		score += 12
	case in.Rating >= 7.0:
		score += 10
	case in.Rating >= 6.5:
		score += 5
	}

	// Copyright history: a surviving first upload earns points by age, a
	// known warning costs 20, no history at all gets a conservative 5.
	if in.FirstUploadAt != nil {
		if in.CopyrightWarning {
			score -= 20
		} else {
			months := int(monthsBetween(*in.FirstUploadAt, now))
			switch {
			case months >= 12:
				score += 30
			case months >= 6:
				score += 20
			case months >= 4:
				score += 10
			case months >= 3:
				score += 5
			}
		}
	} else {
		score += 5
	}

	// Competition: fewer existing producer channels is better.
	switch {
	case in.ChannelCount == 0:
		score += 20
	case in.ChannelCount < 5:
		score += 18
	case in.ChannelCount < 10:
		score += 15
	case in.ChannelCount < 30:
		score += 12
	case in.ChannelCount < 50:
		score += 8
	case in.ChannelCount < 100:
		score += 5
	}

	if in.VerifiedSafe {
		score += 10
	}
	if in.ReleaseDate != nil && in.ReleaseDate.Year() >= 2020 {
		score += 5
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// CopyrightTier summarizes a title's copyright exposure from its shorts
// upload history.
type CopyrightTier struct {
	Level string `json:"level"`
	Icon  string `json:"icon"`
}

// CopyrightSafety maps a title's history to a display tier. Admin
// recommendation trumps everything.
func CopyrightSafety(in FitInput, adminRecommended bool, now time.Time) CopyrightTier {
	if adminRecommended {
		return CopyrightTier{Level: "운영자인증", Icon: "👑"}
	}
	if in.CopyrightWarning {
		return CopyrightTier{Level: "위험", Icon: "🔴"}
	}
	if in.FirstUploadAt == nil {
		return CopyrightTier{Level: "미확인", Icon: "⚪"}
	}

	months := int(monthsBetween(*in.FirstUploadAt, now))
	switch {
	case months >= 12:
		return CopyrightTier{Level: "매우 안전", Icon: "🟢"}
	case months >= 6:
		return CopyrightTier{Level: "안전", Icon: "🟢"}
	case months >= 4:
		return CopyrightTier{Level: "주의", Icon: "🟡"}
	case months >= 3:
		return CopyrightTier{Level: "위험", Icon: "🟠"}
	default:
		return CopyrightTier{Level: "매우위험", Icon: "🔴"}
	}
}
