package utils

import (
	"github.com/google/uuid"

	"github.com/r-weda/my-afya-link/internal/pkg/constvars"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}
