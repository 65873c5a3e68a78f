package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid       = errors.New("invalid parameter")
	ErrEmptyText          = errors.New("empty text")
	ErrInvalidGroup       = errors.New("invalid group")
	ErrUserNotFound       = errors.New("user not found")
	ErrGroupNotFound      = errors.New("group not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrGroupSlugTaken     = errors.New("group slug already taken")
	ErrMissingCredentials = errors.New("missing login credentials")
	ErrPasswordIncorrect  = errors.New("incorrect password")
	ErrNotPostAuthor      = errors.New("only the author may modify a post")
	ErrFileNotSupported   = errors.New("unsupported file type")
	ErrFileNotExist       = errors.New("file does not exist")
	UnauthorizedError     = errors.New("authentication required")
	UnExpectedError       = errors.New("unexpected error, please retry later")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:       BadRequest,
	ErrEmptyText:          BadRequest,
	ErrInvalidGroup:       BadRequest,
	ErrUserNotFound:       NotFound,
	ErrGroupNotFound:      NotFound,
	ErrPostNotFound:       NotFound,
	ErrUsernameTaken:      BadRequest,
	ErrGroupSlugTaken:     BadRequest,
	ErrMissingCredentials: Unauthorized,
	ErrPasswordIncorrect:  Unauthorized,
	ErrNotPostAuthor:      Forbidden,
	ErrFileNotSupported:   BadRequest,
	ErrFileNotExist:       NotFound,
	UnauthorizedError:     Unauthorized,
	UnExpectedError:       InternalServerError,
}
