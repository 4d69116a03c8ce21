package models

type Notification struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}
