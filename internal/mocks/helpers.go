package mocks

import (
	"github.com/stretchr/testify/mock"
)

// maxLogFields covers the widest log call in the codebase
const maxLogFields = 8

// NewPermissiveLogger returns a Logger mock that accepts any log call
func NewPermissiveLogger(t interface {
	mock.TestingT
	Cleanup(func())
}) *Logger {
	logger := NewLogger(t)
	for fields := 0; fields <= maxLogFields; fields++ {
		args := make([]interface{}, fields)
		for i := range args {
			args[i] = mock.Anything
		}
		logger.EXPECT().Debug(mock.Anything, args...).Maybe()
		logger.EXPECT().Info(mock.Anything, args...).Maybe()
		logger.EXPECT().Warn(mock.Anything, args...).Maybe()
		logger.EXPECT().Error(mock.Anything, args...).Maybe()
	}
	return logger
}
