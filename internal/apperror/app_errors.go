package apperror

import "errors"

var (
	ErrInvalidCell     = errors.New("invalid cell index")
	ErrInvalidMove     = errors.New("invalid move index")
	ErrEmptyHistory    = errors.New("history is empty")
	ErrInvalidStep     = errors.New("invalid script step")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrInvalidArgument = errors.New("invalid command argument")
)
