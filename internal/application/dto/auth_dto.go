package dto

// LoginRequest credenciales del dueño.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token de sesión emitido tras autenticar.
type LoginResponse struct {
	Token     string `json:"token"`
	SessionID string `json:"sessionId"`
	Username  string `json:"username"`
	ExpiresAt int64  `json:"expiresAt"`
}
