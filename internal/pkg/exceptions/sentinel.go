package exceptions

import "errors"

var (
	ErrPermissionDenied = errors.New("permission denied")
	ErrUnauthenticated  = errors.New("not authenticated")
	ErrPortalDisposed   = errors.New("portal disposed")
)
