package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/passvault/internal/vault/domain"
	"github.com/aussiebroadwan/passvault/internal/vault/service"
	"github.com/aussiebroadwan/passvault/pkg/httpx"
	"github.com/aussiebroadwan/passvault/pkg/vaultsdk"
)

// crud serves the five standard endpoints of a resource. T is the stored
// entity, P its patch, C and U the create and update request bodies and R
// the public view of T.
type crud[T any, P domain.Patch[T], C, U, R any] struct {
	svc  *service.Resource[T, P]
	errs errorWriter

	fromCreate func(req C) (T, error)
	fromUpdate func(req U) (P, error)
	view       func(v *T) R
	secret     func(v *T) any

	// deleted is the confirmation message returned by delete.
	deleted string
	// cascade enables the ?cascade= query parameter on delete.
	cascade bool
}

func (h *crud[T, P, C, U, R]) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		h.errs.write(w, r, err)
		return
	}

	out := make([]R, len(items))
	for i := range items {
		out[i] = h.view(&items[i])
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *crud[T, P, C, U, R]) get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	v, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, h.view(&v))
}

func (h *crud[T, P, C, U, R]) create(w http.ResponseWriter, r *http.Request) {
	var req C
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	v, err := h.fromCreate(req)
	if err != nil {
		h.errs.write(w, r, err)
		return
	}

	created, err := h.svc.Create(r.Context(), v)
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, h.view(&created))
}

func (h *crud[T, P, C, U, R]) update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req U
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}

	patch, err := h.fromUpdate(req)
	if err != nil {
		h.errs.write(w, r, err)
		return
	}

	updated, err := h.svc.Update(r.Context(), id, patch)
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, h.view(&updated))
}

func (h *crud[T, P, C, U, R]) remove(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var opts service.DeleteOptions
	if h.cascade {
		if raw := r.URL.Query().Get("cascade"); raw != "" {
			cascade, err := strconv.ParseBool(raw)
			if err != nil {
				badRequest(w, fmt.Sprintf("invalid cascade %q: must be a boolean", raw))
				return
			}
			opts.Cascade = cascade
		}
	}

	if err := h.svc.Delete(r.Context(), id, opts); err != nil {
		h.errs.write(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, vaultsdk.MessageResponse{Detail: h.deleted})
}

func (h *crud[T, P, C, U, R]) reveal(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	v, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, h.secret(&v))
}

// pathID parses the {id} path segment, writing a 400 when it is not an
// integer.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		badRequest(w, fmt.Sprintf("invalid id %q: must be an integer", raw))
		return 0, false
	}
	return id, true
}

// parseDate converts an optional YYYY-MM-DD request field.
func parseDate(field string, s *string) (*domain.Date, error) {
	if s == nil {
		return nil, nil
	}
	d, err := domain.ParseDate(*s)
	if err != nil {
		return nil, service.Invalid(field, err.Error())
	}
	return &d, nil
}

func formatDate(d *domain.Date) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}
