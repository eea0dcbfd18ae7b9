package game_stats_client

const (
	// Base URL
	BaseURL = "https://www.bungie.net"

	// Headers
	APIKeyHeader         = "X-API-Key"
	RequestedWithHeader  = "X-Requested-With"
	RequestedWithValue   = "XMLHttpRequest"
	AcceptLanguageHeader = "Accept-Language"
	AcceptLanguage       = "en-us"
	ConnectionHeader     = "Connection"
	KeepAlive            = "keep-alive"
	UserAgentHeader      = "User-Agent"
	UserAgent            = "gamestats-client/1.0 (+https://github.com/mcdev12/gamestats)"

	// Envelope status marker for a successful call
	SuccessStatus = "Success"
)

// Endpoint names
const (
	EndpointGetManifest              = "getManifest"
	EndpointGetEntityDefinition      = "getEntityDefinition"
	EndpointSearchPlayer             = "searchPlayer"
	EndpointGetProfile               = "getProfile"
	EndpointGetCharacter             = "getCharacter"
	EndpointGetItem                  = "getItem"
	EndpointGetAccountStats          = "getAccountStats"
	EndpointGetCharacterStats        = "getCharacterStats"
	EndpointGetActivityHistory       = "getActivityHistory"
	EndpointGetUniqueWeaponHistory   = "getUniqueWeaponHistory"
	EndpointGetAggregateActivity     = "getAggregateActivityStats"
	EndpointGetPostGameCarnageReport = "getPostGameCarnageReport"
	EndpointGetHistoricalStatsDefs   = "getHistoricalStatsDefinition"
	EndpointGetLeaderboards          = "getLeaderboards"
	EndpointGetClanLeaderboards      = "getClanLeaderboards"
	EndpointGetPublicMilestones      = "getPublicMilestones"
	EndpointGetMilestoneContent      = "getMilestoneContent"
	EndpointGetVendors               = "getVendors"
)

// endpointTable maps endpoint names to path templates relative to the API
// version root. `:name` tokens are substituted from request params.
var endpointTable = map[string]string{
	EndpointGetManifest:              "/Manifest/",
	EndpointGetEntityDefinition:      "/Manifest/:entityType/:hashIdentifier/",
	EndpointSearchPlayer:             "/SearchDestinyPlayer/:membershipType/:displayName/",
	EndpointGetProfile:               "/:membershipType/Profile/:membershipId/",
	EndpointGetCharacter:             "/:membershipType/Profile/:membershipId/Character/:characterId/",
	EndpointGetItem:                  "/:membershipType/Profile/:membershipId/Item/:itemInstanceId/",
	EndpointGetAccountStats:          "/:membershipType/Account/:membershipId/Stats/",
	EndpointGetCharacterStats:        "/:membershipType/Account/:membershipId/Character/:characterId/Stats/",
	EndpointGetActivityHistory:       "/:membershipType/Account/:membershipId/Character/:characterId/Stats/Activities/?mode=:mode",
	EndpointGetUniqueWeaponHistory:   "/:membershipType/Account/:membershipId/Character/:characterId/Stats/UniqueWeapons/",
	EndpointGetAggregateActivity:     "/:membershipType/Account/:membershipId/Character/:characterId/Stats/AggregateActivityStats/",
	EndpointGetPostGameCarnageReport: "/Stats/PostGameCarnageReport/:activityId/",
	EndpointGetHistoricalStatsDefs:   "/Stats/Definition/",
	EndpointGetLeaderboards:          "/:membershipType/Account/:membershipId/Stats/Leaderboards/",
	EndpointGetClanLeaderboards:      "/Stats/Leaderboards/Clans/:groupId/",
	EndpointGetPublicMilestones:      "/Milestones/",
	EndpointGetMilestoneContent:      "/Milestones/:milestoneHash/Content/",
	EndpointGetVendors:               "/:membershipType/Profile/:membershipId/Character/:characterId/Vendors/",
}

// LookupEndpoint returns the path template registered under name.
func LookupEndpoint(name string) (string, bool) {
	template, ok := endpointTable[name]
	return template, ok
}

// Endpoints returns a copy of the endpoint table.
func Endpoints() map[string]string {
	out := make(map[string]string, len(endpointTable))
	for name, template := range endpointTable {
		out[name] = template
	}
	return out
}
