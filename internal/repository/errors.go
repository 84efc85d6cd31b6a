package repository

import "errors"

// ErrDuplicateID возвращается при попытке добавить запись с уже занятым id.
var ErrDuplicateID = errors.New("record with this id already exists")
