package http

import "taskdesk/internal/model"

// taskResp is the client-facing task shape.
type taskResp struct {
	ID           string `json:"id"`
	OwnerID      string `json:"ownerId"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	CreatedAtUtc string `json:"createdAtUtc"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:           t.ID,
		OwnerID:      t.OwnerID,
		Name:         t.Name,
		Description:  t.Description,
		CreatedAtUtc: t.CreatedAtUtc,
	}
}

func newTaskListResp(tasks []model.Task) []taskResp {
	resp := make([]taskResp, len(tasks))
	for i, t := range tasks {
		resp[i] = newTaskResp(t)
	}
	return resp
}
