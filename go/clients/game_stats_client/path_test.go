package game_stats_client

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPathRoot = "/Platform/Destiny2"

func TestResolvePath_AllEndpointsSubstituteEveryPlaceholder(t *testing.T) {
	for name, template := range Endpoints() {
		t.Run(name, func(t *testing.T) {
			params := Params{}
			for _, m := range placeholderPattern.FindAllStringSubmatch(template, -1) {
				params[m[1]] = "v a/l"
			}

			path, err := resolvePath(name, testPathRoot, params)
			require.NoError(t, err)

			assert.True(t, strings.HasPrefix(path, testPathRoot+"/"), path)
			assert.False(t, placeholderPattern.MatchString(path), "unresolved placeholder in %s", path)
			assert.NotContains(t, path, " ")
			if len(params) > 0 {
				assert.Contains(t, path, "v%20a%2Fl")
			}
		})
	}
}

func TestResolvePath_EncodesPathAndQueryPlaceholders(t *testing.T) {
	path, err := resolvePath(EndpointGetActivityHistory, testPathRoot, Params{
		"membershipType": 3,
		"membershipId":   "4611686018467284386",
		"characterId":    "2305843009261519028",
		"mode":           "a b",
	})
	require.NoError(t, err)
	assert.Equal(t,
		"/Platform/Destiny2/3/Account/4611686018467284386/Character/2305843009261519028/Stats/Activities/?mode=a%20b",
		path)

	path, err = resolvePath(EndpointSearchPlayer, testPathRoot, Params{
		"membershipType": -1,
		"displayName":    "Guardian #1/x",
	})
	require.NoError(t, err)
	assert.Equal(t, "/Platform/Destiny2/SearchDestinyPlayer/-1/Guardian%20%231%2Fx/", path)
}

func TestResolvePath_LeftoverParamsBecomeQuery(t *testing.T) {
	path, err := resolvePath(EndpointGetProfile, testPathRoot, Params{
		"membershipType": 2,
		"membershipId":   "123",
		"components":     []string{"100", "200"},
	})
	require.NoError(t, err)
	assert.Equal(t, "/Platform/Destiny2/2/Profile/123/?components=100&components=200", path)
}

func TestResolvePath_LeftoverParamsJoinEmbeddedQuery(t *testing.T) {
	path, err := resolvePath(EndpointGetActivityHistory, testPathRoot, Params{
		"membershipType": 1,
		"membershipId":   "9",
		"characterId":    "8",
		"mode":           5,
		"count":          25,
		"page":           0,
	})
	require.NoError(t, err)
	assert.Equal(t, "/Platform/Destiny2/1/Account/9/Character/8/Stats/Activities/?mode=5&count=25&page=0", path)
}

func TestResolvePath_MissingParameter(t *testing.T) {
	_, err := resolvePath(EndpointGetProfile, testPathRoot, Params{"membershipType": 2})
	require.Error(t, err)

	var missing *MissingParameterError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "membershipId", missing.Field)
	assert.Equal(t, EndpointGetProfile, missing.Endpoint)
	assert.Contains(t, err.Error(), "membershipId")
}

func TestResolvePath_NilValueIsMissing(t *testing.T) {
	_, err := resolvePath(EndpointGetPostGameCarnageReport, testPathRoot, Params{"activityId": nil})

	var missing *MissingParameterError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "activityId", missing.Field)
}

func TestResolvePath_UnknownNameIsLiteral(t *testing.T) {
	path, err := resolvePath("/Platform/User/GetBungieNetUserById/:id/", testPathRoot, Params{"a": "1", "b": "2"})
	require.NoError(t, err)

	base, rawQuery, found := strings.Cut(path, "?")
	require.True(t, found)
	assert.Equal(t, "/Platform/User/GetBungieNetUserById/:id/", base)

	query, err := url.ParseQuery(rawQuery)
	require.NoError(t, err)
	assert.Equal(t, url.Values{"a": {"1"}, "b": {"2"}}, query)
}

func TestResolvePath_LiteralWithQueryUsesAmpersand(t *testing.T) {
	path, err := resolvePath("/Stats/Leaderboards/?maxtop=5", testPathRoot, Params{"statid": "kills & deaths"})
	require.NoError(t, err)
	assert.Equal(t, "/Stats/Leaderboards/?maxtop=5&statid=kills+%26+deaths", path)
}

func TestResolvePath_LiteralWithoutParamsUnchanged(t *testing.T) {
	path, err := resolvePath("/GlobalAlerts/", testPathRoot, nil)
	require.NoError(t, err)
	assert.Equal(t, "/GlobalAlerts/", path)
}

func TestResolvePath_DoesNotMutateParams(t *testing.T) {
	params := Params{"membershipType": 2, "membershipId": "123", "components": "100"}

	_, err := resolvePath(EndpointGetProfile, testPathRoot, params)
	require.NoError(t, err)

	assert.Equal(t, Params{"membershipType": 2, "membershipId": "123", "components": "100"}, params)
}

func TestResolvePath_EscapesReservedCharactersInValues(t *testing.T) {
	path, err := resolvePath(EndpointGetPostGameCarnageReport, testPathRoot, Params{"activityId": ":membershipId"})
	require.NoError(t, err)
	assert.Equal(t, "/Platform/Destiny2/Stats/PostGameCarnageReport/%3AmembershipId/", path)
	assert.False(t, placeholderPattern.MatchString(path))

	path, err = resolvePath(EndpointGetActivityHistory, testPathRoot, Params{
		"membershipType": 1,
		"membershipId":   "a&b=c",
		"characterId":    "x+y$z@w",
		"mode":           "5&count=999",
	})
	require.NoError(t, err)
	assert.Equal(t,
		"/Platform/Destiny2/1/Account/a%26b%3Dc/Character/x%2By%24z%40w/Stats/Activities/?mode=5%26count%3D999",
		path)
}

func TestExpandTemplate_RepeatedPlaceholder(t *testing.T) {
	path, err := expandTemplate("compare", "/Compare/:membershipId/:membershipId/?other=:membershipId", Params{
		"membershipId": "42",
		"page":         1,
	})
	require.NoError(t, err)
	assert.Equal(t, "/Compare/42/42/?other=42&page=1", path)
}
