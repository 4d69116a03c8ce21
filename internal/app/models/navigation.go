package models

// NavigationState is what the navigation controller currently shows.
// Generation grows on every page switch and session reset; a loader result
// is only applied if the generation it started under is still current.
type NavigationState struct {
	Page       Page              `json:"page"`
	Generation uint64            `json:"generation"`
	Params     map[string]string `json:"params,omitempty"`
	Data       interface{}       `json:"data,omitempty"`
	Loaded     bool              `json:"loaded"`
	Failure    string            `json:"failure,omitempty"`
}

func (s NavigationState) IsAuthenticatedView() bool {
	return s.Page != PageUnauthenticated
}
