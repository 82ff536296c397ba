package contracts

import (
	"github.com/r-weda/my-afya-link/internal/pkg/dto/responses"
)

// TriageUsecase is deliberately context-free: classification is a pure
// in-process computation with no I/O.
type TriageUsecase interface {
	Classify(symptoms []string) *responses.Recommendation
	Catalog() []string
}
