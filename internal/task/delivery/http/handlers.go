package http

import (
	"github.com/gin-gonic/gin"

	"checklist-sync/internal/task"
	"checklist-sync/pkg/response"
)

// Create godoc
// @Summary     Create a task
// @Description Creates a task. A checklist description has its progress derived before it is stored.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     200  {object} mutationResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newMutationResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Returns a paginated list of tasks, newest first, with an optional status filter.
// @Tags        Tasks
// @Produce     json
// @Param       status query string false "Filter by status (needs_action/in_process/completed/cancelled)"
// @Param       limit  query int    false "Page size (default: 20)"
// @Param       offset query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get task detail
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// UpdateDescription godoc
// @Summary     Replace the task description
// @Description Stores new description text. When it is a checklist, status and percent complete are re-derived. Sending the current text is a no-op.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string         true "Task ID"
// @Param       body body descriptionReq true "New description"
// @Success     200 {object} mutationResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/description [PUT]
func (h *handler) UpdateDescription(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDescriptionReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.UpdateDescription(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateDescription: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newMutationResp(output))
}

// AddItem godoc
// @Summary     Append a checklist item
// @Description Appends an item. An empty description becomes a new checklist.
// @Tags        Checklist Items
// @Accept      json
// @Produce     json
// @Param       id   path string     true "Task ID"
// @Param       body body addItemReq true "Item"
// @Success     200 {object} mutationResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Description is not a checklist"
// @Router      /api/v1/tasks/{id}/items [POST]
func (h *handler) AddItem(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddItemReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.AddItem(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AddItem: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newMutationResp(output))
}

// ToggleItem godoc
// @Summary     Check or uncheck a checklist item
// @Tags        Checklist Items
// @Accept      json
// @Produce     json
// @Param       id    path string        true "Task ID"
// @Param       index path int           true "Item index (0-based)"
// @Param       body  body toggleItemReq true "Checked state"
// @Success     200 {object} mutationResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Description is not a checklist"
// @Router      /api/v1/tasks/{id}/items/{index} [PATCH]
func (h *handler) ToggleItem(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processToggleItemReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ToggleItem(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ToggleItem: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newMutationResp(output))
}

// RemoveItem godoc
// @Summary     Remove a checklist item
// @Tags        Checklist Items
// @Produce     json
// @Param       id    path string true "Task ID"
// @Param       index path int    true "Item index (0-based)"
// @Success     200 {object} mutationResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Description is not a checklist"
// @Router      /api/v1/tasks/{id}/items/{index} [DELETE]
func (h *handler) RemoveItem(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}
	index, err := parseIndex(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.RemoveItem(ctx, task.RemoveItemInput{ID: id, Index: index})
	if err != nil {
		h.l.Errorf(ctx, "uc.RemoveItem: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newMutationResp(output))
}

// SetStatus godoc
// @Summary     Set the task status by hand
// @Description Sets the status without touching the description. A cancelled task keeps its status while checklist edits update the percent.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body statusReq true "Status"
// @Success     200 {object} mutationResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/status [PUT]
func (h *handler) SetStatus(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processStatusReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SetStatus(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SetStatus: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newMutationResp(output))
}

// SwitchMode godoc
// @Summary     Switch between checklist and plain text
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string  true "Task ID"
// @Param       body body modeReq true "Target mode"
// @Success     200 {object} mutationResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/mode [PUT]
func (h *handler) SwitchMode(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processModeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SwitchMode(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SwitchMode: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newMutationResp(output))
}

// Rows godoc
// @Summary     Editor rows
// @Description Returns one row per checklist item followed by an empty placeholder row.
// @Tags        Checklist Items
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} rowsResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/rows [GET]
func (h *handler) Rows(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	rows, err := h.uc.Rows(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Rows: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newRowsResp(rows))
}
