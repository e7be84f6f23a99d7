package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/logger"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/internal/utils"
	"github.com/tysonmwilliams-source/lineageweaverty-sub001/models"
)

// maxBodyBytes bounds request bodies; a full batch of large codex entries
// stays well below it.
const maxBodyBytes = 32 << 20

func (h *Handler) listDocuments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	tenant, kind := chi.URLParam(r, "tenant"), models.Kind(chi.URLParam(r, "kind"))

	if r.URL.Query().Get("exists") != "" {
		exists, err := h.services.DocumentService.Exists(ctx, tenant, kind)
		if err != nil {
			log.Err(err).Str("func", "*Handler.listDocuments").Str("kind", kind.String()).Msg("error probing collection")
			utils.WriteError(w, err.Error(), statusFromError(err))
			return
		}
		utils.WriteJSON(w, models.ExistsResponse{Exists: exists}, http.StatusOK)
		return
	}

	docs, err := h.services.DocumentService.List(ctx, tenant, kind)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listDocuments").Str("kind", kind.String()).Msg("error listing documents")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	response := make([]models.Payload, 0, len(docs))
	for _, doc := range docs {
		response = append(response, doc.Flatten())
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) getDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	tenant, kind, id, ok := documentKey(w, r)
	if !ok {
		return
	}

	doc, err := h.services.DocumentService.Get(ctx, tenant, kind, id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getDocument").Str("kind", kind.String()).Int64("id", id).Msg("error getting document")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, doc.Flatten(), http.StatusOK)
}

func (h *Handler) setDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	tenant, kind, id, ok := documentKey(w, r)
	if !ok {
		return
	}

	payload, ok := decodePayload(w, r)
	if !ok {
		return
	}

	if err := h.services.DocumentService.Set(ctx, tenant, kind, id, payload); err != nil {
		log.Err(err).Str("func", "*Handler.setDocument").Str("kind", kind.String()).Int64("id", id).Msg("error setting document")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) updateDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	tenant, kind, id, ok := documentKey(w, r)
	if !ok {
		return
	}

	patch, ok := decodePayload(w, r)
	if !ok {
		return
	}

	if err := h.services.DocumentService.Update(ctx, tenant, kind, id, patch); err != nil {
		log.Err(err).Str("func", "*Handler.updateDocument").Str("kind", kind.String()).Int64("id", id).Msg("error updating document")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	tenant, kind, id, ok := documentKey(w, r)
	if !ok {
		return
	}

	if err := h.services.DocumentService.Delete(ctx, tenant, kind, id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteDocument").Str("kind", kind.String()).Int64("id", id).Msg("error deleting document")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) applyBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	tenant := chi.URLParam(r, "tenant")

	var request models.BatchRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.applyBatch").Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.DocumentService.ApplyBatch(ctx, tenant, request.Ops); err != nil {
		log.Err(err).Str("func", "*Handler.applyBatch").Int("ops", len(request.Ops)).Msg("error applying batch")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	log.Debug().Int("ops", len(request.Ops)).Msg("batch applied")
	w.WriteHeader(http.StatusNoContent)
}

// documentKey reads {tenant}, {kind} and {id} from the route. It answers 400
// itself when id is not an integer.
func documentKey(w http.ResponseWriter, r *http.Request) (string, models.Kind, int64, bool) {
	rawID := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("id", rawID).Msg("invalid document id")
		utils.WriteError(w, ErrInvalidDocumentID.Error(), http.StatusBadRequest)
		return "", "", 0, false
	}

	return chi.URLParam(r, "tenant"), models.Kind(chi.URLParam(r, "kind")), id, true
}

func decodePayload(w http.ResponseWriter, r *http.Request) (models.Payload, bool) {
	var payload models.Payload
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&payload); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return nil, false
	}
	if payload == nil {
		payload = models.Payload{}
	}
	return payload, true
}
