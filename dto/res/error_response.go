package res

type ErrorResponse struct {
	Error string `json:"error"`
}
