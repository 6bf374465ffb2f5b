package handlers

// SuccessResponse wraps the payload of a successful ops request
type SuccessResponse struct {
	Data interface{} `json:"data,omitempty"`
	Meta interface{} `json:"meta,omitempty"`
}

// PageMeta describes one page of a paginated listing
type PageMeta struct {
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
	Total  int64 `json:"total"`
}
