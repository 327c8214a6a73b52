package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// MaxMessageLength is the upper bound, in characters, for a chat message body.
const MaxMessageLength = 2000
