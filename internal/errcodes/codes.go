// Package errcodes decodes the gateway's 6-digit error codes.
//
// A code is appCode(2) · errorType(2) · sequence(2). App codes identify the
// originating service (10 auth .. 99 common), error types the failure class
// (10 system, 20 auth, 30 business, 40 data, 50 network), and the sequence
// distinguishes codes within a class.
//
// A second, legacy scheme coexists on a few endpoints: bare 3-digit HTTP-like
// codes where 200 is the only success value. IsLegacy recognizes those; they
// never go through Classify.
package errcodes

// Reserved codes the client must recognize literally.
const (
	Success    = 200
	Fail       = 991001
	ParamError = 991002

	Unauthorized     = 102001
	TokenInvalid     = 102002
	TokenExpired     = 102003
	PermissionDenied = 102004
	AccountDisabled  = 102005

	UserNotFound      = 103001
	UserAlreadyExists = 103002
	PasswordError     = 103003
)

// Error type component values.
const (
	TypeSystem   = 10
	TypeAuth     = 20
	TypeBusiness = 30
	TypeData     = 40
	TypeNetwork  = 50
)

// App code component values.
const (
	AppAuth     = 10
	AppAccount  = 20
	AppTransfer = 30
	AppCurrency = 40
	AppUser     = 50
	AppMessage  = 60
	AppCommon   = 99
)

// Classification is the decomposition of a 6-digit code.
type Classification struct {
	AppCode     int
	ErrorType   int
	Sequence    int
	IsAuthError bool
}

// Classify decomposes a code into its components. It is total: out-of-range
// inputs produce out-of-range components, which callers must not treat as
// any reserved meaning.
func Classify(code int) Classification {
	errorType := (code / 100) % 100
	return Classification{
		AppCode:     code / 10000,
		ErrorType:   errorType,
		Sequence:    code % 100,
		IsAuthError: errorType == TypeAuth,
	}
}

// IsSuccess reports whether a gateway code denotes success. Both schemes
// share the single success value 200.
func IsSuccess(code int) bool {
	return code == Success
}

// IsAuthError reports whether the code belongs to the authentication error
// family (errorType 20). Under the legacy scheme only 401 qualifies.
func IsAuthError(code int) bool {
	if IsLegacy(code) {
		return code == 401
	}
	return Classify(code).ErrorType == TypeAuth
}

// IsLegacy reports whether the code comes from the old 3-digit scheme.
func IsLegacy(code int) bool {
	return code >= 0 && code < 1000
}

var messages = map[int]string{
	Fail:       "Request failed",
	ParamError: "Invalid request parameters",

	Unauthorized:     "Unauthorized",
	TokenInvalid:     "Session token is invalid",
	TokenExpired:     "Session token has expired",
	PermissionDenied: "Insufficient permissions",
	AccountDisabled:  "Account is disabled",

	UserNotFound:      "User not found",
	UserAlreadyExists: "User already exists",
	PasswordError:     "Incorrect password",
}

// Message returns the default human-readable message for a reserved code.
func Message(code int) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return "An error occurred"
}
