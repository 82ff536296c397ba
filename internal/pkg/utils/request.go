package utils

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/r-weda/my-afya-link/internal/pkg/exceptions"
)

func DecodeJSONBody(r *http.Request, destination interface{}) error {
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(destination); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}
