package model

// User is an account as returned by the backend.
type User struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	HouseNumber  string `json:"house_number,omitempty"`
	Municipality string `json:"municipality,omitempty"`
	Barangay     string `json:"barangay,omitempty"`
	ID           int    `json:"id"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the success body of POST /login.
type LoginResponse struct {
	AccessToken string `json:"access_token,omitempty"`
	TokenType   string `json:"token_type,omitempty"`
	User        User   `json:"user"`
}

// SignupRequest is the body of POST /signup.
type SignupRequest struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	HouseNumber  string `json:"house_number"`
	Municipality string `json:"municipality"`
	Barangay     string `json:"barangay"`
}

// CreateReportRequest is the body of POST /reports.
type CreateReportRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Location    string   `json:"location"`
	Status      Status   `json:"status"`
	PhotoURLs   []string `json:"photo_urls"`
	UserID      int      `json:"user_id"`
	IsAnonymous bool     `json:"is_anonymous"`
}

// StatusUpdate is the body of PATCH /reports/{id}.
type StatusUpdate struct {
	Status Status `json:"status"`
}
