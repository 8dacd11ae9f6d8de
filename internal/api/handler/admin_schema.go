package handler

type statusUpdateRequest struct {
	Status string `json:"status" validate:"required"`
}

type directoryRowResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Status    string `json:"status"`
}
