package utils

import (
	"net/http"
	"practicare-service/internal/pkg/constvars"
	"practicare-service/internal/pkg/dto/requests"
	"strconv"
)

func ParseQueryParams(r *http.Request) *requests.QueryParams {
	page, _ := strconv.Atoi(r.URL.Query().Get(constvars.URLQueryParamPage))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(r.URL.Query().Get(constvars.URLQueryParamPageSize))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return &requests.QueryParams{
		Page:     page,
		PageSize: pageSize,
		Search:   r.URL.Query().Get(constvars.URLQueryParamSearch),
	}
}
