package request

type ActivateTaxRequest struct {
	Percent int64 `json:"percent" binding:"min=0,max=100"`
}
