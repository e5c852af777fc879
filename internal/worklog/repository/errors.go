package repository

import "errors"

var (
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToList   = errors.New("failed to list records")
	ErrFailedToSearch = errors.New("failed to search tickets")
	ErrFailedToSubmit = errors.New("failed to submit worklog")
	ErrFailedToDelete = errors.New("failed to delete worklog")
)
