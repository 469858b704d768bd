package http

import (
	"checklist-sync/internal/checklist"
	"checklist-sync/internal/model"
)

type parseReq struct {
	Text string `json:"text"`
}

type parseResp struct {
	Checklist          bool             `json:"checklist"`
	LooksLikeChecklist bool             `json:"looks_like_checklist"`
	Items              []checklist.Item `json:"items"`
	Rows               []checklist.Row  `json:"rows"`
}

func (h *handler) newParseResp(text string) parseResp {
	doc := h.svc.Parse(text)
	items := doc.Items
	if items == nil {
		items = []checklist.Item{}
	}
	return parseResp{
		Checklist:          h.svc.IsChecklist(text),
		LooksLikeChecklist: h.svc.LooksLikeChecklist(text),
		Items:              items,
		Rows:               h.svc.Rows(text),
	}
}

// ---

type serializeReq struct {
	Items     []checklist.Item `json:"items"`
	Checklist bool             `json:"checklist"`
}

type serializeResp struct {
	Text string `json:"text"`
}

// ---

type progressReq struct {
	Text            string `json:"text"`
	Status          string `json:"status"`
	PercentComplete *int   `json:"percent_complete" binding:"omitempty,min=0,max=100"`
}

func (r progressReq) validate() error {
	if r.Status == "" {
		return nil
	}
	_, err := model.ParseTaskStatus(r.Status)
	return err
}

func (r progressReq) current() checklist.Fields {
	fields := checklist.Fields{Percent: r.PercentComplete}
	if r.Status != "" {
		status, _ := model.ParseTaskStatus(r.Status)
		fields.Status = &status
	}
	return fields
}

type progressValues struct {
	Percent int    `json:"percent"`
	Status  string `json:"status"`
}

// writesResp lists the fields a store should overwrite; absent means leave
// untouched.
type writesResp struct {
	Status          string `json:"status,omitempty"`
	PercentComplete *int   `json:"percent_complete,omitempty"`
}

type progressResp struct {
	Checklist bool            `json:"checklist"`
	Derived   *progressValues `json:"derived,omitempty"`
	Writes    writesResp      `json:"writes"`
}

func (h *handler) newProgressResp(req progressReq) progressResp {
	var resp progressResp
	if !h.svc.IsChecklist(req.Text) {
		return resp
	}
	resp.Checklist = true

	items := h.svc.Parse(req.Text).Items
	progress, ok := h.svc.Derive(items)
	if !ok {
		return resp
	}
	resp.Derived = &progressValues{Percent: progress.Percent, Status: progress.Status.String()}

	writes := h.svc.Apply(req.current(), items)
	if writes.Status != nil {
		resp.Writes.Status = writes.Status.String()
	}
	resp.Writes.PercentComplete = writes.Percent
	return resp
}
