package request

// ByIDRequest is a common struct for endpoints that require a UUID path parameter.
type ByIDRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// Validate performs custom validation for ByIDRequest.
func (r *ByIDRequest) Validate() error {
	return nil
}

// ListParams holds common pagination query parameters.
type ListParams struct {
	Page     int `form:"page,default=1" binding:"min=1"`
	PageSize int `form:"page_size,default=20" binding:"min=1,max=100"`
}

// Offset returns the zero-based index of the first item on the page.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}
