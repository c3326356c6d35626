package server

import (
	"encoding/json"
	"github.com/gorilla/mux"
	"io"
	"net/http"
	"pricecomparator/internal/model"
	"strings"
)

func (s Server) productList() http.HandlerFunc {
	type response []model.Product
	return func(w http.ResponseWriter, r *http.Request) {
		store := r.URL.Query().Get("store")
		category := r.URL.Query().Get("category")
		s.writeCachedJsonResponse(w, r, cacheKey(r), func() any {
			return response(s.Query.Products(store, category))
		})
	}
}

func (s Server) productBestDiscounts() http.HandlerFunc {
	type response []model.Product
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := limitParam(r)
		if err != nil {
			s.Logger.Debugf("productBestDiscounts: Bad request, err: %v", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.writeCachedJsonResponse(w, r, cacheKey(r), func() any {
			return response(s.Query.BestDiscounts(limit))
		})
	}
}

func (s Server) productBestValue() http.HandlerFunc {
	type response []model.Product
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := limitParam(r)
		if err != nil {
			s.Logger.Debugf("productBestValue: Bad request, err: %v", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		category := r.URL.Query().Get("category")
		s.writeCachedJsonResponse(w, r, cacheKey(r), func() any {
			return response(s.Query.BestValuePerUnit(category, limit))
		})
	}
}

func (s Server) productCompare() http.HandlerFunc {
	type response map[string]model.Product
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimSpace(r.URL.Query().Get("product_name"))
		if name == "" {
			s.Logger.Debug("productCompare: product_name not supplied")
			http.Error(w, "missing required parameter: product_name", http.StatusBadRequest)
			return
		}
		date, err := dateParam(r, "date", false)
		if err != nil {
			s.Logger.Debugf("productCompare: Bad request, err: %v", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.writeCachedJsonResponse(w, r, cacheKey(r), func() any {
			return response(s.Query.CompareProductPrices(name, date))
		})
	}
}

func (s Server) productPriceHistory() http.HandlerFunc {
	type response map[string]float64
	return func(w http.ResponseWriter, r *http.Request) {
		productID := mux.Vars(r)["productID"]
		store := r.URL.Query().Get("store")
		s.writeCachedJsonResponse(w, r, cacheKey(r), func() any {
			resp := response{}
			for _, pp := range s.Query.PriceHistory(productID, store) {
				resp[pp.Date.Format(model.DateLayout)] = pp.Price
			}
			return resp
		})
	}
}

func (s Server) productOptimizeBasket() http.HandlerFunc {
	type request []string
	type response map[string]float64
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			s.Logger.Debugf("productOptimizeBasket: Error reading body, err: %v", err)
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		req := request{}
		if err = json.Unmarshal(body, &req); err != nil {
			s.Logger.Debugf("productOptimizeBasket: Error decoding JSON, err: %v", err)
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		date, err := dateParam(r, "date", false)
		if err != nil {
			s.Logger.Debugf("productOptimizeBasket: Bad request, err: %v", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		reqJSON, err := json.Marshal(req)
		if err != nil {
			s.Logger.Errorf("productOptimizeBasket: Error marshalling request, err: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		s.writeCachedJsonResponse(w, r, cacheKey(r)+" "+string(reqJSON), func() any {
			return response(s.Query.OptimizeBasket(req, date))
		})
	}
}

func (s Server) productNewDiscounts() http.HandlerFunc {
	type response []model.Product
	return func(w http.ResponseWriter, r *http.Request) {
		since, err := dateParam(r, "since", true)
		if err != nil {
			s.Logger.Debugf("productNewDiscounts: Bad request, err: %v", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.writeCachedJsonResponse(w, r, cacheKey(r), func() any {
			return response(s.Query.NewDiscountedProducts(since))
		})
	}
}
