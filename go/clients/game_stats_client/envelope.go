package game_stats_client

import (
	"bytes"
	"encoding/json"
	"net/http"
)

// Envelope is the wrapper the platform puts around every response. Only the
// status marker, the error code and the payload are decoded; other envelope
// fields are kept raw so their shape never fails a response.
type Envelope struct {
	Response        json.RawMessage `json:"Response"`
	ErrorCode       ErrorCode       `json:"ErrorCode"`
	ErrorStatus     string          `json:"ErrorStatus"`
	Message         json.RawMessage `json:"Message"`
	MessageData     json.RawMessage `json:"MessageData"`
	ThrottleSeconds json.RawMessage `json:"ThrottleSeconds"`
}

var jsonNull = []byte("null")

// normalizeResponse classifies a raw response. A nil payload with a nil
// error is the logical empty result, which includes a success envelope whose
// Response is absent or null.
func normalizeResponse(statusCode int, body []byte) (json.RawMessage, error) {
	if statusCode == http.StatusNotFound {
		return nil, nil
	}
	if statusCode != http.StatusOK {
		return nil, &InvalidStatusCodeError{StatusCode: statusCode}
	}

	var envelope Envelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &MalformedResponseError{Body: string(body), Err: err}
	}

	if envelope.ErrorStatus != SuccessStatus {
		if envelope.ErrorCode.IsNoData() {
			return nil, nil
		}
		return nil, &RemoteError{
			Code:    envelope.ErrorCode,
			Status:  envelope.ErrorStatus,
			Message: string(body),
		}
	}

	if len(envelope.Response) == 0 || bytes.Equal(envelope.Response, jsonNull) {
		return nil, nil
	}
	return envelope.Response, nil
}
