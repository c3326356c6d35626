package server

import (
	"bytes"
	"encoding/json"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"math"
	"net/http"
	"pricecomparator/internal/alert"
	"pricecomparator/internal/model"
	"strconv"
	"strings"
)

var validate = validator.New()

// flexFloat accepts a JSON number or a string holding one.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		b = []byte(strings.TrimSpace(s))
	}
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return errors.Wrapf(err, "invalid number: %s", b)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errors.Errorf("invalid number: %s", b)
	}
	*f = flexFloat(v)
	return nil
}

func (s Server) refreshAlertGauge() {
	alertsActive.Set(float64(len(s.Alerts.List("", true))))
}

func (s Server) alertCreate() http.HandlerFunc {
	type request struct {
		ProductID   string     `json:"product_id" validate:"required"`
		Store       *string    `json:"store"`
		TargetPrice *flexFloat `json:"target_price" validate:"required,gte=0"`
		UserID      string     `json:"user_id"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		req := request{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.Logger.Debugf("alertCreate: Error decoding JSON, err: %v", err)
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		req.ProductID = strings.TrimSpace(req.ProductID)
		if err := validate.Struct(req); err != nil {
			s.Logger.Debugf("alertCreate: Invalid request: %+v, err: %v", req, err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if req.Store != nil && strings.TrimSpace(*req.Store) == "" {
			req.Store = nil
		}

		a := s.Alerts.Create(req.ProductID, req.Store, float64(*req.TargetPrice), strings.TrimSpace(req.UserID))
		if !a.IsActive {
			alertsTriggered.Inc()
		}
		s.refreshAlertGauge()
		s.writeJsonResponse(w, a, http.StatusCreated)
	}
}

func (s Server) alertList() http.HandlerFunc {
	type response []model.PriceAlert
	return func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.URL.Query().Get("user_id"))
		activeOnly := false
		if v := r.URL.Query().Get("active_only"); v != "" {
			var err error
			if activeOnly, err = strconv.ParseBool(v); err != nil {
				s.Logger.Debugf("alertList: Bad active_only: %q, err: %v", v, err)
				http.Error(w, "invalid active_only: "+v, http.StatusBadRequest)
				return
			}
		}
		s.writeJsonResponse(w, response(s.Alerts.List(userID, activeOnly)), http.StatusOK)
	}
}

func (s Server) alertGetOne() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
		if err != nil {
			s.Logger.Debugf("alertGetOne: Bad alert ID, err: %v", err)
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}
		a, err := s.Alerts.Get(id)
		if err != nil {
			if errors.Is(err, alert.ErrNotFound) {
				s.Logger.Debugf("alertGetOne: %v", err)
				http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
				return
			}
			s.Logger.Errorf("alertGetOne: Error getting PriceAlert, err: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		s.writeJsonResponse(w, a, http.StatusOK)
	}
}

func (s Server) alertDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
		if err != nil {
			s.Logger.Debugf("alertDelete: Bad alert ID, err: %v", err)
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}
		if err = s.Alerts.Delete(id); err != nil {
			if errors.Is(err, alert.ErrNotFound) {
				s.Logger.Debugf("alertDelete: %v", err)
				http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
				return
			}
			s.Logger.Errorf("alertDelete: Error deleting PriceAlert, err: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		s.refreshAlertGauge()
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s Server) alertCheck() http.HandlerFunc {
	type response []model.PriceAlert
	return func(w http.ResponseWriter, r *http.Request) {
		triggered := s.Alerts.CheckAll()
		alertsTriggered.Add(float64(len(triggered)))
		s.refreshAlertGauge()
		s.Logger.Debugf("alertCheck: %d alert(s) triggered", len(triggered))
		s.writeJsonResponse(w, response(triggered), http.StatusOK)
	}
}
