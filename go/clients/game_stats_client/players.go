package game_stats_client

import (
	"context"
	"fmt"
)

// UserInfoCard identifies a player account on one platform.
type UserInfoCard struct {
	MembershipID   string `json:"membershipId"`
	MembershipType int    `json:"membershipType"`
	DisplayName    string `json:"displayName"`
	IconPath       string `json:"iconPath"`
	IsPublic       bool   `json:"isPublic"`
}

type PGCRPlayer struct {
	DestinyUserInfo UserInfoCard `json:"destinyUserInfo"`
	CharacterClass  string       `json:"characterClass"`
	LightLevel      int          `json:"lightLevel"`
}

type PGCREntry struct {
	Standing    int                       `json:"standing"`
	CharacterID string                    `json:"characterId"`
	Player      PGCRPlayer                `json:"player"`
	Values      map[string]HistoricalStat `json:"values"`
}

type HistoricalStat struct {
	StatID string `json:"statId"`
	Basic  struct {
		Value        float64 `json:"value"`
		DisplayValue string  `json:"displayValue"`
	} `json:"basic"`
}

// PostGameCarnageReport holds the fields we need from a finished activity report.
type PostGameCarnageReport struct {
	Period          string `json:"period"`
	ActivityDetails struct {
		ReferenceID    int64  `json:"referenceId"`
		InstanceID     string `json:"instanceId"`
		Mode           int    `json:"mode"`
		MembershipType int    `json:"membershipType"`
	} `json:"activityDetails"`
	Entries []PGCREntry `json:"entries"`
}

// SearchPlayer looks up accounts by display name on a membership type
// (-1 searches every platform).
func (c *Client) SearchPlayer(ctx context.Context, membershipType int, displayName string) ([]UserInfoCard, error) {
	var cards []UserInfoCard
	_, err := c.RequestInto(ctx, EndpointSearchPlayer, Params{
		"membershipType": membershipType,
		"displayName":    displayName,
	}, &cards)
	if err != nil {
		return nil, fmt.Errorf("failed to search player: %w", err)
	}
	return cards, nil
}

// GetPostGameCarnageReport returns the report for an activity instance, or
// nil when the platform has none.
func (c *Client) GetPostGameCarnageReport(ctx context.Context, activityID string) (*PostGameCarnageReport, error) {
	var report PostGameCarnageReport
	found, err := c.RequestInto(ctx, EndpointGetPostGameCarnageReport, Params{"activityId": activityID}, &report)
	if err != nil {
		return nil, fmt.Errorf("failed to get post game carnage report: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &report, nil
}
