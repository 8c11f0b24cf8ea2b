package user

type registerInput struct {
	Body struct {
		Username string `json:"username,omitempty" example:"johndoe" doc:"Desired username"`
		Email    string `json:"email,omitempty" example:"johndoe@example.com" doc:"User's email address"`
		Password string `json:"password,omitempty" doc:"User's password"`
	}
}

type registerOutput struct {
	Body MessageResponse
}

type loginInput struct {
	Body struct {
		Email    string `json:"email,omitempty" example:"johndoe@example.com"`
		Password string `json:"password,omitempty"`
	}
}

type loginOutput struct {
	Body LoginResponse
}

type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type profileOutput struct {
	Body ProfileResponse
}

// ProfileResponse is the account record as shown to its owner. The password
// hash is never returned.
type ProfileResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type updateProfileInput struct {
	Body struct {
		Email    string `json:"email,omitempty" doc:"Email of the record to update; must match the logged-in user"`
		Username string `json:"username,omitempty" doc:"Updated username"`
		Password string `json:"password,omitempty" doc:"Updated password"`
		Role     string `json:"role,omitempty" doc:"Updated role"`
	}
}

type updateProfileOutput struct {
	Body MessageResponse
}

type MessageResponse struct {
	Message string `json:"message"`
}
