package opendart

import "fmt"

// statusMessages maps non-success DART application status codes to the
// fixed user-facing messages.
var statusMessages = map[string]string{
	"010": "등록되지 않은 키입니다.",
	"011": "사용할 수 없는 키입니다.",
	"012": "접근할 수 없는 IP입니다.",
	"013": "조회된 데이터가 없습니다.",
	"020": "요청 제한을 초과하였습니다.",
	"100": "필드의 부적절한 값입니다.",
	"800": "시스템 점검 중입니다.",
	"900": "정의되지 않은 오류가 발생하였습니다.",
}

// StatusNoData is the DART status for an empty result set.
const StatusNoData = "013"

// TransportError reports a network-level failure calling the DART API:
// timeout, DNS, connection reset, or a non-2xx HTTP response.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("opendart: transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DomainError is a non-success application status returned by the DART
// API, carrying the upstream status code and its fixed message.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("opendart: status %s: %s", e.Code, e.Message)
}

// IsNoData reports whether the error is empty-result-set (status 013).
func (e *DomainError) IsNoData() bool { return e.Code == StatusNoData }

// DecodeError reports a malformed upstream response body.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("opendart: decode: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// domainError builds a DomainError for a status code, falling back to the
// upstream message when the code is not in the fixed table.
func domainError(code, upstreamMsg string) *DomainError {
	msg, ok := statusMessages[code]
	if !ok {
		msg = upstreamMsg
		if msg == "" {
			msg = "알 수 없는 오류"
		}
	}
	return &DomainError{Code: code, Message: msg}
}
