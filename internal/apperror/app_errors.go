package apperror

import "errors"

var (
	ErrInvalidLength      = errors.New("encoding is longer than 9 symbols")
	ErrInvalidSymbol      = errors.New("symbol is not X, O or empty")
	ErrIllegalMoveBalance = errors.New("mark counts violate turn order")
)
