// Package http provides http transport for crack
package http

import (
	stdhttp "net/http"

	"cryptokit/internal/modkit/httpkit"
	"cryptokit/internal/services/crack/domain"
)

// Register mounts crack endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	// score text against the dictionary
	httpkit.PostJSON(r, "/detect", h.detect)

	// brute force searches
	httpkit.PostJSON(r, "/shift", h.shift)
	httpkit.PostJSON(r, "/vigenere", h.vigenere)
}

type handlers struct{ svc domain.ServicePort }

// @Summary Score text against the dictionary
// @Tags Crack
// @Accept json
// @Produce json
// @Param payload body domain.DetectInput true "Text to score"
// @Success 200 {object} domain.DetectResult "ok"
// @Router /crack/detect [post]
func (h *handlers) detect(r *stdhttp.Request, in domain.DetectInput) (any, error) {
	return h.svc.Detect(r.Context(), in)
}

// @Summary Brute force a shift cipher
// @Tags Crack
// @Accept json
// @Produce json
// @Param payload body domain.ShiftInput true "Ciphertext"
// @Success 200 {object} domain.ShiftResult "ok"
// @Failure 404 {object} httpkit.Envelope "message could not be decoded"
// @Router /crack/shift [post]
func (h *handlers) shift(r *stdhttp.Request, in domain.ShiftInput) (any, error) {
	return h.svc.Shift(r.Context(), in)
}

// the search stops when the client goes away or the request times out
//
// @Summary Brute force a Vigenère cipher
// @Tags Crack
// @Accept json
// @Produce json
// @Param payload body domain.VigenereInput true "Ciphertext and optional key limit"
// @Success 200 {object} domain.VigenereResult "ok"
// @Failure 404 {object} httpkit.Envelope "message could not be decoded"
// @Failure 503 {object} httpkit.Envelope "search cancelled"
// @Router /crack/vigenere [post]
func (h *handlers) vigenere(r *stdhttp.Request, in domain.VigenereInput) (any, error) {
	return h.svc.Vigenere(r.Context(), in)
}
