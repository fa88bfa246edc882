// Shared data conventions for services in the spanclient family.
package models

import (
	"golang.org/x/xerrors"
	"strconv"
)

// Interface for objects that can set string values by key, such as url.Values or
// http.Header.
type valueSetter interface {
	Set(key string, value string)
}

// Interface for objects that can fetch string values by key.
type valueFetcher interface {
	Get(key string) string
}

// PagingReq is the paging window a client requests from a service.
type PagingReq struct {
	// How far to offset the page.
	Offset int
	// Maximum item count to return. Values of 0 or less mean "service default"
	// and are not transmitted.
	Limit int
}

// ToParams writes the paging window to outgoing request URL params.
func (paging *PagingReq) ToParams(params valueSetter) {
	params.Set("paging-offset", strconv.Itoa(paging.Offset))
	if paging.Limit > 0 {
		params.Set("paging-limit", strconv.Itoa(paging.Limit))
	}
}

// PagingResp is the paging metadata a service reports back through response
// headers. Count fields are -1 when the service did not report them.
type PagingResp struct {
	*PagingReq
	TotalItems  int
	TotalPages  int
	CurrentPage int
	Next        string
	Previous    string
}

func fetchInt(
	values valueFetcher, fieldName string, defaultValue int,
) (int, error) {
	value := values.Get(fieldName)
	if value == "" {
		return defaultValue, nil
	}

	valueInt, err := strconv.Atoi(value)
	if err != nil {
		return 0, xerrors.New(fieldName + " is not int")
	}
	return valueInt, nil
}

// PagingReqFromParams rebuilds a paging window from request params, falling back
// to defaultLimit when no limit was sent.
func PagingReqFromParams(
	params valueFetcher, defaultLimit int,
) (*PagingReq, error) {
	offset, err := fetchInt(params, "paging-offset", 0)
	if err != nil {
		return nil, err
	}

	limit, err := fetchInt(params, "paging-limit", defaultLimit)
	if err != nil {
		return nil, err
	}

	return &PagingReq{Offset: offset, Limit: limit}, nil
}

// PagingRespFromHeaders rebuilds paging metadata from response headers.
func PagingRespFromHeaders(
	headers valueFetcher, defaultLimit int,
) (*PagingResp, error) {
	pagingReq, err := PagingReqFromParams(headers, defaultLimit)
	if err != nil {
		return nil, err
	}

	pagingResp := &PagingResp{
		PagingReq: pagingReq,
		Next:      headers.Get("paging-next"),
		Previous:  headers.Get("paging-previous"),
	}

	// Use -1 to flag count fields the service did not report.
	counts := []struct {
		field    string
		receiver *int
	}{
		{"paging-total-items", &pagingResp.TotalItems},
		{"paging-total-pages", &pagingResp.TotalPages},
		{"paging-current-page", &pagingResp.CurrentPage},
	}
	for _, count := range counts {
		*count.receiver, err = fetchInt(headers, count.field, -1)
		if err != nil {
			return nil, err
		}
	}

	return pagingResp, nil
}
