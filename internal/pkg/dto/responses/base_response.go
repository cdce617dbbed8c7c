package responses

// ResponseDTO is the envelope every endpoint returns, success or error.
// Error responses carry Success=false and a client-safe Message only.
type ResponseDTO struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination is attached to list endpoints. NextURL and PrevURL are omitted
// at the respective edges of the result set.
type Pagination struct {
	Total    int    `json:"total"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
	NextURL  string `json:"next_url,omitempty"`
	PrevURL  string `json:"prev_url,omitempty"`
}
