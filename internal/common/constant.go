package common

// HTTP header names used on outbound gateway requests.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-ID"
	ContentTypeHeaderName   = "Content-Type"
	AcceptHeaderName        = "Accept"
)

// BearerScheme prefixes the access token in the Authorization header.
const BearerScheme = "Bearer"

// JSONContentType is sent and expected on every API call.
const JSONContentType = "application/json"

// AppName is shown in prompts and the welcome banner.
const AppName = "Crammer+"
