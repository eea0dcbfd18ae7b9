package clients

import "maps"

// APIVersion identifies a version of the platform API. Each version roots the
// shared endpoint table under its own path prefix.
type APIVersion string

const (
	APIVersionV1 APIVersion = "v1"
	APIVersionV2 APIVersion = "v2"

	DefaultAPIVersion = APIVersionV2
)

var apiPathRoots = map[APIVersion]string{
	APIVersionV1: "/Platform/Destiny",
	APIVersionV2: "/Platform/Destiny2",
}

// ValidateAPIVersion reports whether version is known.
func ValidateAPIVersion(version APIVersion) bool {
	_, ok := apiPathRoots[version]
	return ok
}

// APIPathRoot returns the path prefix endpoint templates are resolved under.
func APIPathRoot(version APIVersion) (string, bool) {
	root, ok := apiPathRoots[version]
	return root, ok
}

// APIVersions returns every known version with its path root.
func APIVersions() map[APIVersion]string {
	return maps.Clone(apiPathRoots)
}
