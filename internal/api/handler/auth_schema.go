package handler

// --- Request / Response types ---

type registerRequest struct {
	Username    string `json:"username"     validate:"required"`
	Password    string `json:"password"     validate:"required"`
	Email       string `json:"email"        validate:"required,email"`
	Province    string `json:"province"`
	District    string `json:"district"`
	SubDistrict string `json:"sub_district"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// loginUser is the minimal public identity returned on login. Nothing
// password-derived ever appears here.
type loginUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type loginResponse struct {
	Token string    `json:"token"`
	User  loginUser `json:"user"`
}

type profileUpdateRequest struct {
	Email       string `json:"email"        validate:"required,email"`
	Province    string `json:"province"`
	District    string `json:"district"`
	SubDistrict string `json:"sub_district"`
}
