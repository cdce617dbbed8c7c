package responses

type ProfilePicture struct {
	URL string `json:"url"`
}
