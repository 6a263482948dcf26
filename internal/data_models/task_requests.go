package dto

type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"dueDate"`
}

// UpdateTaskRequest fields are pointers so an absent field can be told apart
// from one that was sent.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"dueDate"`
}

type ReorderTasksRequest struct {
	IDs []string `json:"ids"`
}
