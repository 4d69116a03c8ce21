package utils

import (
	"medora-portal/internal/pkg/constvars"
	"medora-portal/internal/pkg/dto/requests"
	"medora-portal/internal/pkg/exceptions"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/mitchellh/mapstructure"
)

// DecodeRequest fills dst from a JSON body or from form values, depending on
// the request content type. Form fields are matched on the json tag names
// and empty form values are dropped, so optional fields stay unset.
func DecodeRequest(r *http.Request, dst interface{}) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get(constvars.HeaderContentType))
	if mediaType == constvars.MIMEApplicationJSON {
		if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
			return exceptions.ErrCannotParseJSON(err)
		}
		return nil
	}

	if err := r.ParseForm(); err != nil {
		return exceptions.ErrCannotParseForm(err)
	}
	return DecodeMap(FormValues(r), dst)
}

// DecodeValues reads the submitted fields as a flat map from either a JSON
// object or form values. Blank values are dropped.
func DecodeValues(r *http.Request) (map[string]interface{}, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get(constvars.HeaderContentType))
	if mediaType == constvars.MIMEApplicationJSON {
		raw := make(map[string]interface{})
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			return nil, exceptions.ErrCannotParseJSON(err)
		}
		values := make(map[string]interface{}, len(raw))
		for key, value := range raw {
			if value == nil {
				continue
			}
			if text, ok := value.(string); ok && strings.TrimSpace(text) == "" {
				continue
			}
			values[key] = value
		}
		return values, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, exceptions.ErrCannotParseForm(err)
	}
	return FormValues(r), nil
}

// DecodeMap fills dst from values, matching on json tag names and
// converting strings to numbers where the field asks for one.
func DecodeMap(values map[string]interface{}, dst interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           dst,
	})
	if err != nil {
		return exceptions.ErrCannotParseForm(err)
	}
	if err := decoder.Decode(values); err != nil {
		return exceptions.ErrCannotParseForm(err)
	}
	return nil
}

// QueryParams flattens the query string to its first value per key.
func QueryParams(r *http.Request) map[string]string {
	query := r.URL.Query()
	params := make(map[string]string, len(query))
	for key := range query {
		if value := strings.TrimSpace(query.Get(key)); value != "" {
			params[key] = value
		}
	}
	return params
}

// FormValues flattens the parsed form to its first non-blank value per key.
func FormValues(r *http.Request) map[string]interface{} {
	values := make(map[string]interface{}, len(r.Form))
	for key, all := range r.Form {
		for _, value := range all {
			if strings.TrimSpace(value) != "" {
				values[key] = value
				break
			}
		}
	}
	return values
}

func BuildPaginationRequest(r *http.Request, defaultPerPage int) *requests.Pagination {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	perPage, err := strconv.Atoi(r.URL.Query().Get("per_page"))
	if err != nil || perPage < 1 {
		perPage = defaultPerPage
	}
	return &requests.Pagination{
		Page:    page,
		PerPage: perPage,
	}
}

// WantsJSON reports a client that asked for JSON rather than a page.
func WantsJSON(r *http.Request) bool {
	accept := r.Header.Get(constvars.HeaderAccept)
	return strings.Contains(accept, constvars.MIMEApplicationJSON) && !strings.Contains(accept, constvars.MIMETextHTML)
}
