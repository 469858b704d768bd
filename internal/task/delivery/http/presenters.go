package http

import (
	"checklist-sync/internal/checklist"
	"checklist-sync/internal/model"
	"checklist-sync/internal/task"
	"checklist-sync/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Title           string `json:"title"            binding:"max=255"`
	Description     string `json:"description"`
	Status          string `json:"status"`
	PercentComplete *int   `json:"percent_complete" binding:"omitempty,min=0,max=100"`
}

func (r createReq) validate() error {
	_, err := parseOptionalStatus(r.Status)
	return err
}

func (r createReq) toInput() task.CreateInput {
	status, _ := parseOptionalStatus(r.Status)
	return task.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		Status:      status,
		Percent:     r.PercentComplete,
	}
}

// ---

type listReq struct {
	Status string `form:"status"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r listReq) validate() error {
	_, err := parseOptionalStatus(r.Status)
	return err
}

func (r listReq) toInput() task.ListInput {
	status, _ := parseOptionalStatus(r.Status)
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return task.ListInput{
		Status: status,
		Limit:  limit,
		Offset: r.Offset,
	}
}

// ---

type descriptionReq struct {
	ID          string `json:"-"` // populated from URI param
	Description string `json:"description"`
}

func (r descriptionReq) toInput() task.UpdateDescriptionInput {
	return task.UpdateDescriptionInput{
		ID:          r.ID,
		Description: r.Description,
	}
}

// ---

type addItemReq struct {
	ID      string `json:"-"`
	Label   string `json:"label"   binding:"required"`
	Checked bool   `json:"checked"`
}

func (r addItemReq) toInput() task.AddItemInput {
	return task.AddItemInput{
		ID:      r.ID,
		Label:   r.Label,
		Checked: r.Checked,
	}
}

// ---

type toggleItemReq struct {
	ID      string `json:"-"`
	Index   int    `json:"-"` // populated from URI param
	Checked *bool  `json:"checked" binding:"required"`
}

func (r toggleItemReq) toInput() task.ToggleItemInput {
	return task.ToggleItemInput{
		ID:      r.ID,
		Index:   r.Index,
		Checked: *r.Checked,
	}
}

// ---

type statusReq struct {
	ID     string `json:"-"`
	Status string `json:"status" binding:"required"`
}

func (r statusReq) validate() error {
	_, err := model.ParseTaskStatus(r.Status)
	return err
}

func (r statusReq) toInput() task.SetStatusInput {
	status, _ := model.ParseTaskStatus(r.Status)
	return task.SetStatusInput{
		ID:     r.ID,
		Status: status,
	}
}

// ---

type modeReq struct {
	ID        string `json:"-"`
	Checklist *bool  `json:"checklist" binding:"required"`
}

func (r modeReq) toInput() task.SwitchModeInput {
	return task.SwitchModeInput{
		ID:        r.ID,
		Checklist: *r.Checklist,
	}
}

func parseOptionalStatus(raw string) (*model.TaskStatus, error) {
	if raw == "" {
		return nil, nil
	}
	status, err := model.ParseTaskStatus(raw)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// --- Response DTOs ---

type taskResp struct {
	ID              string            `json:"id"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	Status          string            `json:"status,omitempty"`
	PercentComplete *int              `json:"percent_complete,omitempty"`
	Checklist       bool              `json:"checklist"`
	Items           []checklist.Item  `json:"items,omitempty"`
	CreatedAt       response.DateTime `json:"created_at"`
	UpdatedAt       response.DateTime `json:"updated_at"`
}

func newTaskResp(out task.TaskOutput) taskResp {
	resp := taskResp{
		ID:              out.Task.ID,
		Title:           out.Task.Title,
		Description:     out.Task.Description,
		PercentComplete: out.Task.PercentComplete,
		Checklist:       out.Checklist,
		Items:           out.Items,
		CreatedAt:       response.DateTime(out.Task.CreatedAt),
		UpdatedAt:       response.DateTime(out.Task.UpdatedAt),
	}
	if out.Task.Status != nil {
		resp.Status = out.Task.Status.String()
	}
	return resp
}

type mutationResp struct {
	Task    taskResp `json:"task"`
	Changed bool     `json:"changed"`
}

func (h *handler) newMutationResp(out task.TaskOutput) mutationResp {
	return mutationResp{Task: newTaskResp(out), Changed: out.Changed}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(out task.TaskOutput) detailResp {
	return detailResp{Task: newTaskResp(out)}
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{
		Tasks:  tasks,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type rowsResp struct {
	Rows []checklist.Row `json:"rows"`
}

func (h *handler) newRowsResp(rows []checklist.Row) rowsResp {
	return rowsResp{Rows: rows}
}
