package game_stats_client

import (
	"fmt"
	"maps"
	"net/url"
	"regexp"
	"strings"
)

// Params carries placeholder values and query parameters for one request.
// Values are rendered with fmt.Sprint; a []string becomes a comma-separated
// path segment or a repeated query key.
type Params map[string]any

var placeholderPattern = regexp.MustCompile(`:([A-Za-z_][A-Za-z0-9_]*)`)

// resolvePath turns an endpoint name or literal path into a path with its
// query string. Names not in the endpoint table are used verbatim. The
// caller's params are never modified.
func resolvePath(endpoint, pathRoot string, params Params) (string, error) {
	template, ok := endpointTable[endpoint]
	if !ok {
		return appendQuery(endpoint, maps.Clone(params)), nil
	}
	return expandTemplate(endpoint, pathRoot+template, params)
}

// expandTemplate substitutes every placeholder in template and appends the
// params no placeholder consumed. A placeholder may appear more than once.
func expandTemplate(endpoint, template string, params Params) (string, error) {
	remaining := maps.Clone(params)

	var b strings.Builder
	last := 0
	for _, m := range placeholderPattern.FindAllStringSubmatchIndex(template, -1) {
		field := template[m[2]:m[3]]
		value, present := params[field]
		if !present || value == nil {
			return "", &MissingParameterError{Endpoint: endpoint, Field: field}
		}

		b.WriteString(template[last:m[0]])
		b.WriteString(escapeComponent(paramString(value)))
		last = m[1]
		delete(remaining, field)
	}
	b.WriteString(template[last:])

	return appendQuery(b.String(), remaining), nil
}

// escapeComponent percent-encodes everything but unreserved characters, so a
// substituted value can never introduce a separator or a placeholder token.
func escapeComponent(value string) string {
	return strings.ReplaceAll(url.QueryEscape(value), "+", "%20")
}

// appendQuery encodes params and appends them, joining with & when the path
// already carries a query fragment.
func appendQuery(path string, params Params) string {
	if len(params) == 0 {
		return path
	}

	values := make(url.Values, len(params))
	for key, value := range params {
		switch v := value.(type) {
		case []string:
			values[key] = append([]string(nil), v...)
		case nil:
			values.Set(key, "")
		default:
			values.Set(key, paramString(v))
		}
	}

	separator := "?"
	if strings.Contains(path, "?") {
		separator = "&"
	}
	return path + separator + values.Encode()
}

func paramString(value any) string {
	if list, ok := value.([]string); ok {
		return strings.Join(list, ",")
	}
	return fmt.Sprint(value)
}
