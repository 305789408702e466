package api

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// ResultResponse carries the outcome of a business-rule operation such as a
// password change or a check-in.
type ResultResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"old password is incorrect"`
}

func Result(err error) ResultResponse {
	if err != nil {
		return ResultResponse{Success: false, Message: err.Error()}
	}
	return ResultResponse{Success: true, Message: "ok"}
}
