package get_directory

import (
	"context"

	"github.com/Andrez18/lummoo-core/internal/service/directory/models"
)

type DirectoryService interface {
	List(ctx context.Context) (*models.DirectoryResponse, error)
	Search(ctx context.Context, term string) (*models.DirectoryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
