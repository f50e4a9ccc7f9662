package dto

// LoginInput authenticates an agency account.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginResult carries the issued access token.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	AgencyID    string `json:"agency_id"`
	AgencyName  string `json:"agency_name"`
}
