package server

import (
	"github.com/gorilla/mux"
	"net/http"
	"pricecomparator/internal/model"
	"strings"
)

func (s Server) discountList() http.HandlerFunc {
	type response []model.Discount
	return func(w http.ResponseWriter, r *http.Request) {
		s.writeCachedJsonResponse(w, r, cacheKey(r), func() any {
			return response(s.Query.AllDiscounts())
		})
	}
}

func (s Server) discountByStore() http.HandlerFunc {
	type response []model.Discount
	return func(w http.ResponseWriter, r *http.Request) {
		store := mux.Vars(r)["store"]
		s.writeCachedJsonResponse(w, r, cacheKey(r), func() any {
			return response(s.Query.DiscountsByStore(store))
		})
	}
}

func (s Server) discountActive() http.HandlerFunc {
	type response []model.Discount
	return func(w http.ResponseWriter, r *http.Request) {
		date, err := dateParam(r, "date", false)
		if err != nil {
			s.Logger.Debugf("discountActive: Bad request, err: %v", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if date.IsZero() {
			date = today()
		}
		key := cacheKey(r) + " " + date.Format(model.DateLayout)
		s.writeCachedJsonResponse(w, r, key, func() any {
			return response(s.Query.ActiveDiscounts(date))
		})
	}
}

func (s Server) discountActiveForProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID := mux.Vars(r)["productID"]
		store := strings.TrimSpace(r.URL.Query().Get("store"))
		if store == "" {
			s.Logger.Debug("discountActiveForProduct: store not supplied")
			http.Error(w, "missing required parameter: store", http.StatusBadRequest)
			return
		}
		date, err := dateParam(r, "date", false)
		if err != nil {
			s.Logger.Debugf("discountActiveForProduct: Bad request, err: %v", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if date.IsZero() {
			date = today()
		}

		d, ok := s.Query.ActiveDiscountForProduct(productID, store, date)
		if !ok {
			s.Logger.Debugf("discountActiveForProduct: No active Discount for ProductID: %s, store: %s, date: %s",
				productID, store, date.Format(model.DateLayout))
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}
		s.writeJsonResponse(w, d, http.StatusOK)
	}
}

func (s Server) discountNew() http.HandlerFunc {
	type response []model.Discount
	return func(w http.ResponseWriter, r *http.Request) {
		since, err := dateParam(r, "since", true)
		if err != nil {
			s.Logger.Debugf("discountNew: Bad request, err: %v", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.writeCachedJsonResponse(w, r, cacheKey(r), func() any {
			return response(s.Query.NewDiscounts(since))
		})
	}
}

func (s Server) discountByCategory() http.HandlerFunc {
	type response []model.Discount
	return func(w http.ResponseWriter, r *http.Request) {
		category := mux.Vars(r)["category"]
		s.writeCachedJsonResponse(w, r, cacheKey(r), func() any {
			return response(s.Query.DiscountsByCategory(category))
		})
	}
}

func (s Server) discountForProduct() http.HandlerFunc {
	type response []model.Discount
	return func(w http.ResponseWriter, r *http.Request) {
		productID := mux.Vars(r)["productID"]
		s.writeCachedJsonResponse(w, r, cacheKey(r), func() any {
			return response(s.Query.DiscountsForProduct(productID))
		})
	}
}

func (s Server) discountBest() http.HandlerFunc {
	type response []model.Discount
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := limitParam(r)
		if err != nil {
			s.Logger.Debugf("discountBest: Bad request, err: %v", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.writeCachedJsonResponse(w, r, cacheKey(r), func() any {
			return response(s.Query.BestDiscountOffers(limit))
		})
	}
}

func (s Server) discountBestProducts() http.HandlerFunc {
	type response []model.Product
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := limitParam(r)
		if err != nil {
			s.Logger.Debugf("discountBestProducts: Bad request, err: %v", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.writeCachedJsonResponse(w, r, cacheKey(r), func() any {
			return response(s.Query.ProductsWithBestDiscounts(limit))
		})
	}
}

func (s Server) discountHistory() http.HandlerFunc {
	type response map[string]int
	return func(w http.ResponseWriter, r *http.Request) {
		productID := mux.Vars(r)["productID"]
		store := r.URL.Query().Get("store")
		s.writeCachedJsonResponse(w, r, cacheKey(r), func() any {
			resp := response{}
			for _, dp := range s.Query.DiscountHistory(productID, store) {
				resp[dp.Date.Format(model.DateLayout)] = dp.Percentage
			}
			return resp
		})
	}
}
