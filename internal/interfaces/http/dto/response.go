package dto

import "net/http"

// Response is the wire envelope every endpoint answers with. The field
// set and casing are a compatibility contract with existing consumers
// and must not change.
type Response struct {
	Data       any      `json:"data"`
	Success    bool     `json:"success"`
	IsSuccess  bool     `json:"isSuccess"`
	StatusCode int      `json:"statusCode"`
	Message    *string  `json:"message"`
	Exception  *string  `json:"exception"`
	Errors     []string `json:"errors"`
}

// PagedResponse extends the envelope with pagination fields, flattened
// alongside the base ones.
type PagedResponse struct {
	Response
	Page            int   `json:"page"`
	PageSize        int   `json:"pageSize"`
	Total           int64 `json:"total"`
	TotalPages      int   `json:"totalPages"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
	HasNextPage     bool  `json:"hasNextPage"`
}

// NewSuccessResponse builds a success envelope around data
func NewSuccessResponse(statusCode int, data any) Response {
	return Response{
		Data:       data,
		Success:    true,
		IsSuccess:  true,
		StatusCode: statusCode,
		Errors:     []string{},
	}
}

// NewNotFoundResponse builds the missing-resource envelope. Consumers
// treat absence as a successful lookup with empty data, so success stays
// true while the status code reports 404.
func NewNotFoundResponse(message string) Response {
	return Response{
		Data:       nil,
		Success:    true,
		IsSuccess:  true,
		StatusCode: http.StatusNotFound,
		Message:    &message,
		Errors:     []string{},
	}
}

// NewErrorResponse builds a failure envelope. The errors list carries
// the individual failures when there are several.
func NewErrorResponse(statusCode int, message string, errs []string) Response {
	if errs == nil {
		errs = []string{}
	}
	return Response{
		Data:       nil,
		Success:    false,
		IsSuccess:  false,
		StatusCode: statusCode,
		Message:    &message,
		Errors:     errs,
	}
}

// NewPagedResponse builds a success envelope with pagination fields
func NewPagedResponse(data any, total int64, page, pageSize, totalPages int) PagedResponse {
	return PagedResponse{
		Response:        NewSuccessResponse(http.StatusOK, data),
		Page:            page,
		PageSize:        pageSize,
		Total:           total,
		TotalPages:      totalPages,
		HasPreviousPage: page > 1,
		HasNextPage:     page < totalPages,
	}
}
