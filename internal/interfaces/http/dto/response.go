package dto

// Response is the envelope every endpoint returns.
type Response struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Message    string      `json:"message,omitempty"`
	Error      string      `json:"error,omitempty"`
	Pagination *PageInfo   `json:"pagination,omitempty"`
}

// PageInfo describes the page a list response was cut from.
type PageInfo struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// NewPageInfo computes the derived pagination fields. A total of zero
// yields zero pages.
func NewPageInfo(page, limit int, total int64) *PageInfo {
	totalPages := int(total) / limit
	if int(total)%limit > 0 {
		totalPages++
	}
	return &PageInfo{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// NewSuccessResponse wraps data in a success envelope.
func NewSuccessResponse(data interface{}) Response {
	return Response{Success: true, Data: data}
}

// NewMessageResponse wraps a human-readable confirmation.
func NewMessageResponse(message string) Response {
	return Response{Success: true, Message: message}
}

// NewListResponse wraps a page of data with its pagination block.
func NewListResponse(data interface{}, page, limit int, total int64) Response {
	return Response{
		Success:    true,
		Data:       data,
		Pagination: NewPageInfo(page, limit, total),
	}
}

// NewErrorResponse wraps a failure message.
func NewErrorResponse(message string) Response {
	return Response{Success: false, Error: message}
}

// NewValidationErrorResponse carries per-field messages in the data
// slot next to a fixed top-level error.
func NewValidationErrorResponse(fields map[string][]string) Response {
	return Response{
		Success: false,
		Error:   "Validation failed",
		Data:    fields,
	}
}

// Page size bounds shared by the public storefront and the admin
// panel. Requests outside the bounds are clamped, never rejected.
const (
	PublicPageSize = 12
	AdminPageSize  = 20
	MaxPageSize    = 100
)

// PageQuery carries the pagination query parameters.
type PageQuery struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// Normalize clamps the query into valid bounds, falling back to
// defaultLimit when no limit was supplied.
func (q PageQuery) Normalize(defaultLimit int) (page, limit int) {
	page = q.Page
	if page < 1 {
		page = 1
	}
	limit = q.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return page, limit
}
