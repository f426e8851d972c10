package models

// Credentials are forwarded to the backend as-is and never stored by the gateway.
type Credentials struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}
