package models

// GenderDistribution partitions profiles by an exact-match controlled
// vocabulary. Anything that is not "man" or "woman" (including unset) lands
// in Other; the catch-all is intentional, not an error path.
type GenderDistribution struct {
	Male   int `json:"male"`
	Female int `json:"female"`
	Other  int `json:"other"`
}

// AgeDistribution holds four fixed, boundary-inclusive bands. Profiles under
// 18 fall into no band, so the band sum may be less than totalProfiles.
type AgeDistribution struct {
	Age18To25 int `json:"18-25"`
	Age26To35 int `json:"26-35"`
	Age36To45 int `json:"36-45"`
	Age45Plus int `json:"45+"`
}

// StatsSnapshot is the derived per-event statistics view. It is recomputed on
// demand and never persisted; freshness is the time of the fetch.
type StatsSnapshot struct {
	TotalProfiles      int                `json:"totalProfiles"`
	ActiveUsers        int                `json:"activeUsers"`
	TotalMatches       int                `json:"totalMatches"`
	TotalMessages      int                `json:"totalMessages"`
	EngagementRate     float64            `json:"engagementRate"`
	GenderDistribution GenderDistribution `json:"genderDistribution"`
	AgeDistribution    AgeDistribution    `json:"ageDistribution"`
}
