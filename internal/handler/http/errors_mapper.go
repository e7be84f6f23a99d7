package http

import (
	"errors"
	"net/http"

	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/service"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/store"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/models"
)

var errorStatusMap = map[error]int{
	service.ErrUnsupportedBatchOp:      http.StatusBadRequest,
	service.ErrUnknownKind:             http.StatusBadRequest,
	service.ErrInvalidIdentity:         http.StatusBadRequest,
	service.ErrValidationNoTenant:      http.StatusBadRequest,
	service.ErrValidationNoOps:         http.StatusBadRequest,
	service.ErrValidationTooManyOps:    http.StatusRequestEntityTooLarge,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	models.ErrIdentityMismatch: http.StatusUnprocessableEntity,

	store.ErrUnknownKind:      http.StatusBadRequest,
	store.ErrInvalidPayload:   http.StatusBadRequest,
	store.ErrDocumentNotFound: http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
