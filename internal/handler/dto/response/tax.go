package response

type TaxResponse struct {
	Percent int64 `json:"percent"`
}
