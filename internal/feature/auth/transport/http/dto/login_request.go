// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// LoginReq is the request body of /api/auth/login. The email format is not
// checked here; a malformed address fails the lookup like an unknown one.
type LoginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRes carries the signed token.
type LoginRes struct {
	JWT string `json:"jwt"`
}
