package storage

import (
	"fmt"
	"medora-portal/internal/pkg/constvars"
)

func TokenKey(clientID string) string {
	return fmt.Sprintf("%s:%s", constvars.StorageTokenKeyPrefix, clientID)
}

func UserKey(clientID string) string {
	return fmt.Sprintf("%s:%s", constvars.StorageUserKeyPrefix, clientID)
}
