package services

// Result is the uniform outcome of a mutation.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func ResultOf(err error) Result {
	if err != nil {
		return Result{Success: false, Error: err.Error()}
	}
	return Result{Success: true}
}
