package errors

// ErrorCode is a stable machine-readable error identifier returned to clients.
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_ALREADY_EXISTS   ErrorCode = 1003
	ErrorCode_UNAUTHENTICATED  ErrorCode = 1004
	ErrorCode_FORBIDDEN        ErrorCode = 1005
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1006

	ErrorCode_AUTH_INVALID_TOKEN       ErrorCode = 2000
	ErrorCode_AUTH_TOKEN_EXPIRED       ErrorCode = 2001
	ErrorCode_AUTH_INVALID_CREDENTIALS ErrorCode = 2002
	ErrorCode_AUTH_USER_NOT_FOUND      ErrorCode = 2003
	ErrorCode_AUTH_USER_ALREADY_EXISTS ErrorCode = 2004

	ErrorCode_MEETING_NOT_FOUND     ErrorCode = 3000
	ErrorCode_MEETING_ENDED         ErrorCode = 3001
	ErrorCode_NOTE_TEXT_REQUIRED    ErrorCode = 3002
	ErrorCode_MOM_NOT_GENERATED     ErrorCode = 3003
	ErrorCode_SHARE_NOT_FOUND       ErrorCode = 3004
	ErrorCode_VERSION_NOT_FOUND     ErrorCode = 3005
	ErrorCode_NOT_ENOUGH_VERSIONS   ErrorCode = 3006
	ErrorCode_UNSUPPORTED_PLATFORM  ErrorCode = 3007
	ErrorCode_INVALID_HOOK_KEY      ErrorCode = 3008
	ErrorCode_ATTENDEE_REQUIRED     ErrorCode = 3009
	ErrorCode_FROM_EMAIL_REQUIRED   ErrorCode = 3010
	ErrorCode_JOB_NOT_FOUND         ErrorCode = 3011
	ErrorCode_EXPORT_FORMAT_INVALID ErrorCode = 3012

	ErrorCode_TRANSCRIPTION_ACTIVE     ErrorCode = 4000
	ErrorCode_TRANSCRIPTION_INACTIVE   ErrorCode = 4001
	ErrorCode_TRANSCRIPTION_NO_SESSION ErrorCode = 4002
	ErrorCode_SIMULATION_RUNNING       ErrorCode = 4003
	ErrorCode_CHUNK_TEXT_REQUIRED      ErrorCode = 4004
)

var codeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                  "OK",
	ErrorCode_INTERNAL:                 "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:         "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:           "ALREADY_EXISTS",
	ErrorCode_UNAUTHENTICATED:          "UNAUTHENTICATED",
	ErrorCode_FORBIDDEN:                "FORBIDDEN",
	ErrorCode_INVALID_PAYLOAD:          "INVALID_PAYLOAD",
	ErrorCode_AUTH_INVALID_TOKEN:       "AUTH_INVALID_TOKEN",
	ErrorCode_AUTH_TOKEN_EXPIRED:       "AUTH_TOKEN_EXPIRED",
	ErrorCode_AUTH_INVALID_CREDENTIALS: "AUTH_INVALID_CREDENTIALS",
	ErrorCode_AUTH_USER_NOT_FOUND:      "AUTH_USER_NOT_FOUND",
	ErrorCode_AUTH_USER_ALREADY_EXISTS: "AUTH_USER_ALREADY_EXISTS",
	ErrorCode_MEETING_NOT_FOUND:        "MEETING_NOT_FOUND",
	ErrorCode_MEETING_ENDED:            "MEETING_ENDED",
	ErrorCode_NOTE_TEXT_REQUIRED:       "NOTE_TEXT_REQUIRED",
	ErrorCode_MOM_NOT_GENERATED:        "MOM_NOT_GENERATED",
	ErrorCode_SHARE_NOT_FOUND:          "SHARE_NOT_FOUND",
	ErrorCode_VERSION_NOT_FOUND:        "VERSION_NOT_FOUND",
	ErrorCode_NOT_ENOUGH_VERSIONS:      "NOT_ENOUGH_VERSIONS",
	ErrorCode_UNSUPPORTED_PLATFORM:     "UNSUPPORTED_PLATFORM",
	ErrorCode_INVALID_HOOK_KEY:         "INVALID_HOOK_KEY",
	ErrorCode_ATTENDEE_REQUIRED:        "ATTENDEE_REQUIRED",
	ErrorCode_FROM_EMAIL_REQUIRED:      "FROM_EMAIL_REQUIRED",
	ErrorCode_JOB_NOT_FOUND:            "JOB_NOT_FOUND",
	ErrorCode_EXPORT_FORMAT_INVALID:    "EXPORT_FORMAT_INVALID",
	ErrorCode_TRANSCRIPTION_ACTIVE:     "TRANSCRIPTION_ACTIVE",
	ErrorCode_TRANSCRIPTION_INACTIVE:   "TRANSCRIPTION_INACTIVE",
	ErrorCode_TRANSCRIPTION_NO_SESSION: "TRANSCRIPTION_NO_SESSION",
	ErrorCode_SIMULATION_RUNNING:       "SIMULATION_RUNNING",
	ErrorCode_CHUNK_TEXT_REQUIRED:      "CHUNK_TEXT_REQUIRED",
}

// String returns the symbolic name of the code.
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
