package handler

import (
	"net/url"
	"strconv"

	"appointments-api/internal/appointment/service"
	dErrors "appointments-api/pkg/domain-errors"
)

// parseListRequest maps the listing query string onto the service request.
// Unknown order keys are tolerated (the resolver defaults them); malformed
// numerics and booleans are not.
func parseListRequest(companyNumber string, q url.Values) (service.ListRequest, error) {
	req := service.ListRequest{
		CompanyNumber: companyNumber,
		ActiveOnly:    q.Get("filter") == "eligible",
		RegisterType:  q.Get("register_type"),
		OrderBy:       q.Get("order_by"),
	}

	registerView, err := parseBool(q, "register_view")
	if err != nil {
		return service.ListRequest{}, err
	}
	req.RegisterView = registerView

	req.StartIndex, err = parseInt(q, "start_index")
	if err != nil {
		return service.ListRequest{}, err
	}
	req.ItemsPerPage, err = parseInt(q, "items_per_page")
	if err != nil {
		return service.ListRequest{}, err
	}
	return req, nil
}

func parseBool(q url.Values, key string) (bool, error) {
	raw := q.Get(key)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, dErrors.New(dErrors.CodeBadRequest, key+" must be a boolean")
	}
	return v, nil
}

func parseInt(q url.Values, key string) (int, error) {
	raw := q.Get(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, dErrors.New(dErrors.CodeBadRequest, key+" must be an integer")
	}
	return v, nil
}
