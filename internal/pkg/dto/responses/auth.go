package responses

type Register struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

type Login struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}
