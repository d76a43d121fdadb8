package responses

type ErrorResponse struct {
	Error string `json:"error"`
}
