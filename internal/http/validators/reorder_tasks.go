package validators

import (
	dto "task-list-service.com/task-list-service/internal/data_models"
	apperrors "task-list-service.com/task-list-service/internal/errors"
)

func ValidateReorderTasksRequest(r *dto.ReorderTasksRequest) error {
	if r.IDs == nil {
		return apperrors.ErrIDsRequired
	}
	return nil
}
