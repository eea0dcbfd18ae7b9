package game_stats_client

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

// ErrorCode is the numeric code the platform embeds in every response envelope.
type ErrorCode int

const (
	ErrorCodeNone                       ErrorCode = 0
	ErrorCodeSuccess                    ErrorCode = 1
	ErrorCodeTransportException         ErrorCode = 2
	ErrorCodeUnhandledException         ErrorCode = 3
	ErrorCodeNotImplemented             ErrorCode = 4
	ErrorCodeSystemDisabled             ErrorCode = 5
	ErrorCodeParameterParseFailure      ErrorCode = 7
	ErrorCodeParameterInvalidRange      ErrorCode = 8
	ErrorCodeBadRequest                 ErrorCode = 9
	ErrorCodeAuthenticationInvalid      ErrorCode = 10
	ErrorCodeDataNotFound               ErrorCode = 11
	ErrorCodeThrottleLimitExceeded      ErrorCode = 36
	ErrorCodeDestinyNoData              ErrorCode = 1600
	ErrorCodeDestinyAccountNotFound     ErrorCode = 1601
	ErrorCodeDestinyCharacterNotFound   ErrorCode = 1620
	ErrorCodeDestinyItemNotFound        ErrorCode = 1623
	ErrorCodeDestinyPGCRNotFound        ErrorCode = 1653
	ErrorCodeDestinyPrivacyRestriction  ErrorCode = 1665
	ErrorCodeDestinyThrottledByGameSvc  ErrorCode = 1672
	ErrorCodeAPIKeyMissingFromRequest   ErrorCode = 2101
	ErrorCodeAPIInvalidOrExpiredKey     ErrorCode = 2102
	ErrorCodeAPIKeyDisabledOrRevoked    ErrorCode = 2107
	ErrorCodeAPIRequestsPerSecondExceed ErrorCode = 2110
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCodeNone:                       "None",
	ErrorCodeSuccess:                    "Success",
	ErrorCodeTransportException:         "TransportException",
	ErrorCodeUnhandledException:         "UnhandledException",
	ErrorCodeNotImplemented:             "NotImplemented",
	ErrorCodeSystemDisabled:             "SystemDisabled",
	ErrorCodeParameterParseFailure:      "ParameterParseFailure",
	ErrorCodeParameterInvalidRange:      "ParameterInvalidRange",
	ErrorCodeBadRequest:                 "BadRequest",
	ErrorCodeAuthenticationInvalid:      "AuthenticationInvalid",
	ErrorCodeDataNotFound:               "DataNotFound",
	ErrorCodeThrottleLimitExceeded:      "ThrottleLimitExceeded",
	ErrorCodeDestinyNoData:              "DestinyNoData",
	ErrorCodeDestinyAccountNotFound:     "DestinyAccountNotFound",
	ErrorCodeDestinyCharacterNotFound:   "DestinyCharacterNotFound",
	ErrorCodeDestinyItemNotFound:        "DestinyItemNotFound",
	ErrorCodeDestinyPGCRNotFound:        "DestinyPGCRNotFound",
	ErrorCodeDestinyPrivacyRestriction:  "DestinyPrivacyRestriction",
	ErrorCodeDestinyThrottledByGameSvc:  "DestinyThrottledByGameServer",
	ErrorCodeAPIKeyMissingFromRequest:   "ApiKeyMissingFromRequest",
	ErrorCodeAPIInvalidOrExpiredKey:     "ApiInvalidOrExpiredKey",
	ErrorCodeAPIKeyDisabledOrRevoked:    "ApiKeyDisabledOrRevoked",
	ErrorCodeAPIRequestsPerSecondExceed: "ApiRequestsPerSecondExceeded",
}

// noDataCodes mean the lookup succeeded and there is nothing to return.
var noDataCodes = map[ErrorCode]struct{}{
	ErrorCodeDestinyNoData:            {},
	ErrorCodeDestinyAccountNotFound:   {},
	ErrorCodeDestinyCharacterNotFound: {},
	ErrorCodeDestinyItemNotFound:      {},
	ErrorCodeDestinyPGCRNotFound:      {},
}

func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "ErrorCode(" + strconv.Itoa(int(c)) + ")"
}

// IsNoData reports whether code marks a correctly empty result rather than a failure.
func (c ErrorCode) IsNoData() bool {
	_, ok := noDataCodes[c]
	return ok
}

// ErrorKind discriminates the failures wrapped by AdapterError.
type ErrorKind string

const (
	KindMissingParameter  ErrorKind = "MissingParameter"
	KindMissingCredential ErrorKind = "MissingCredential"
	KindInvalidStatusCode ErrorKind = "InvalidStatusCode"
	KindMalformedResponse ErrorKind = "MalformedResponse"
	KindRemoteError       ErrorKind = "RemoteError"
	KindTransport         ErrorKind = "Transport"
)

var (
	// ErrAdapter matches every error returned by Client.Request via errors.Is.
	ErrAdapter = errors.New("game stats adapter error")

	// ErrMissingCredential is returned when a request is issued without an API key.
	ErrMissingCredential = errors.New("missing API key")
)

// MissingParameterError is returned before any network call when a template
// placeholder has no matching param.
type MissingParameterError struct {
	Endpoint string
	Field    string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing parameter %q for endpoint %q", e.Field, e.Endpoint)
}

// InvalidStatusCodeError is returned for any HTTP status other than 200 and 404.
type InvalidStatusCodeError struct {
	StatusCode int
}

func (e *InvalidStatusCodeError) Error() string {
	return fmt.Sprintf("invalid status code: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// MalformedResponseError is returned when the body is not a JSON envelope.
type MalformedResponseError struct {
	Body string
	Err  error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// RemoteError is a failure envelope whose code is not a no-data code.
// Message carries the raw response body.
type RemoteError struct {
	Code    ErrorCode
	Status  string
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote error %d (%s): %s", int(e.Code), e.Code, e.Message)
}

// AdapterError is the single error type surfaced by Client.Request. Kind
// names the failing stage; Code is the remote error code or HTTP status when
// one exists, otherwise zero.
type AdapterError struct {
	Kind    ErrorKind
	Code    int
	Message string
	Cause   error
}

func (e *AdapterError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("game stats %s (code %d): %s", e.Kind, e.Code, e.Message)
	}
	return fmt.Sprintf("game stats %s: %s", e.Kind, e.Message)
}

func (e *AdapterError) Unwrap() error {
	return e.Cause
}

func (e *AdapterError) Is(target error) bool {
	return target == ErrAdapter
}

// IsAdapterError reports whether err came out of the adapter.
func IsAdapterError(err error) bool {
	return errors.Is(err, ErrAdapter)
}

func newAdapterError(err error) *AdapterError {
	var adapterErr *AdapterError
	if errors.As(err, &adapterErr) {
		return adapterErr
	}

	wrapped := &AdapterError{Kind: KindTransport, Message: err.Error(), Cause: err}

	var (
		missingParam *MissingParameterError
		statusErr    *InvalidStatusCodeError
		malformed    *MalformedResponseError
		remote       *RemoteError
	)
	switch {
	case errors.As(err, &missingParam):
		wrapped.Kind = KindMissingParameter
	case errors.Is(err, ErrMissingCredential):
		wrapped.Kind = KindMissingCredential
	case errors.As(err, &statusErr):
		wrapped.Kind = KindInvalidStatusCode
		wrapped.Code = statusErr.StatusCode
	case errors.As(err, &malformed):
		wrapped.Kind = KindMalformedResponse
	case errors.As(err, &remote):
		wrapped.Kind = KindRemoteError
		wrapped.Code = int(remote.Code)
	}

	return wrapped
}
