package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"

	"geo_i18n/internal/adapters/observability"
	"geo_i18n/internal/app"
	"geo_i18n/internal/domain"
)

type Handlers struct{ Q *app.QueryService }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/{kind}", h.listPlaces)
	s.mux.Get("/v1/{kind}/{name}", h.getPlace)
}

// Supported response languages; the first one is the fallback.
var supported = []language.Tag{language.English, language.German, language.French, language.Dutch, language.Spanish}

var matcher = language.NewMatcher(supported)

// selectLang picks a language from ?lang= first, then Accept-Language.
func selectLang(r *http.Request) string {
	if q := strings.TrimSpace(r.URL.Query().Get("lang")); q != "" {
		if tag, err := language.Parse(q); err == nil {
			return tag.String()
		}
	}
	tags, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	if err != nil || len(tags) == 0 {
		return supported[0].String()
	}
	_, idx, _ := matcher.Match(tags...)
	return supported[idx].String()
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	return `W/"` + hex.EncodeToString(sum[:]) + `"`, body
}

func writeJSON(w http.ResponseWriter, r *http.Request, lang string, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Language", lang)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

func kindParam(w http.ResponseWriter, r *http.Request) (domain.Kind, bool) {
	kind, ok := domain.ParseKind(chi.URLParam(r, "kind"))
	if !ok {
		writeProblem(w, http.StatusNotFound, "Not Found", "unknown place kind")
	}
	return kind, ok
}

// nameParam returns the decoded {name} segment. chi matches on URL.Path,
// which is already decoded, unless the request needed URL.RawPath (an
// escaped "/" for instance); only then is the segment still escaped.
func nameParam(r *http.Request) (string, error) {
	name := chi.URLParam(r, "name")
	if r.URL.RawPath == "" {
		return name, nil
	}
	return url.PathUnescape(name)
}

func (h *Handlers) getPlace(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindParam(w, r)
	if !ok {
		return
	}
	name, err := nameParam(r)
	if err != nil || name == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid name", "name must be a path segment")
		return
	}
	lang := selectLang(r)

	resp, err := h.Q.GetPlace(r.Context(), kind, name, lang)
	if errors.Is(err, domain.ErrNotFound) {
		writeProblem(w, http.StatusNotFound, "Not Found", string(kind)+" not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("err_type", observability.LabelErr(err)).
			Str("kind", string(kind)).Str("name", name).Msg("get place failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	writeJSON(w, r, resp.Language, resp)
}

func (h *Handlers) listPlaces(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindParam(w, r)
	if !ok {
		return
	}

	limit := 50
	if ls := r.URL.Query().Get("limit"); ls != "" {
		l, err := strconv.Atoi(ls)
		if err != nil || l <= 0 || l > 200 {
			writeProblem(w, http.StatusBadRequest, "Invalid limit", "limit must be an integer between 1 and 200")
			return
		}
		limit = l
	}
	lang := selectLang(r)

	out, err := h.Q.ListPlaces(r.Context(), domain.PlacesQuery{Kind: kind, Lang: lang, Limit: limit})
	if err != nil {
		log.Error().Err(err).Str("err_type", observability.LabelErr(err)).
			Str("kind", string(kind)).Msg("list places failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	writeJSON(w, r, lang, out)
}
