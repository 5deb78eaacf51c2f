package domain

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrOutfitNotFound = errors.New("outfit not found")
)
