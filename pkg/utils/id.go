package utils

import "github.com/google/uuid"

// NewID 记录主键
func NewID() string { return uuid.NewString() }
