package http

import (
	"github.com/gin-gonic/gin"

	"checklist-sync/pkg/response"
)

// Parse godoc
// @Summary     Parse checklist text
// @Description Reports whether the text is a checklist and returns its items and editor rows.
// @Tags        Checklist
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Text"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/checklist/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}
	response.OK(c, h.newParseResp(req.Text))
}

// Serialize godoc
// @Summary     Serialize checklist items
// @Tags        Checklist
// @Accept      json
// @Produce     json
// @Param       body body serializeReq true "Items"
// @Success     200 {object} serializeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/checklist/serialize [POST]
func (h *handler) Serialize(c *gin.Context) {
	var req serializeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}
	response.OK(c, serializeResp{Text: h.svc.Serialize(req.Items, req.Checklist)})
}

// Progress godoc
// @Summary     Derive checklist progress
// @Description Derives percent and status from the text and lists which of the given current values a store should overwrite.
// @Tags        Checklist
// @Accept      json
// @Produce     json
// @Param       body body progressReq true "Text and current values"
// @Success     200 {object} progressResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/checklist/progress [POST]
func (h *handler) Progress(c *gin.Context) {
	var req progressReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}
	if err := req.validate(); err != nil {
		h.l.Debugf(c.Request.Context(), "checklist.Progress: %v", err)
		response.Error(c, err, nil)
		return
	}
	response.OK(c, h.newProgressResp(req))
}
