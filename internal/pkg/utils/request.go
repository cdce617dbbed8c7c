package utils

import (
	"medibook-service/internal/pkg/dto/requests"
	"net/http"
	"strconv"
)

func BuildQueryParamsRequest(r *http.Request) *requests.QueryParams {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page <= 0 {
		page = 1
	}

	pageSize, err := strconv.Atoi(r.URL.Query().Get("page_size"))
	if err != nil || pageSize <= 0 {
		pageSize = 10
	}

	return &requests.QueryParams{
		Page:     page,
		PageSize: pageSize,
	}
}
