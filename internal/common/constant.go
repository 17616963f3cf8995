package common

// AuthorizationHeaderName is the HTTP header that carries the session token
// on authenticated requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the token value in the authorization header.
const BearerPrefix = "Bearer "
