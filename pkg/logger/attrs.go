package logger

import (
	"os"

	"github.com/google/uuid"
)

// NewInstanceID возвращает "<hostname>-<8 hex>" для Config.InstanceID
func NewInstanceID() string {
	hn, _ := os.Hostname()
	uid := uuid.New().String()[:8]
	return hn + "-" + uid
}
