package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is the standard success envelope for mutations.
type messageResponse struct {
	Message string `json:"message"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// registerRequest bounds the password at 72 bytes, bcrypt's input limit.
type registerRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=72"`
}

// loginRequest carries no validation tags: a structurally odd login attempt
// gets the same "invalid credentials" answer as a wrong password.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
