package request

type CreateFundRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
