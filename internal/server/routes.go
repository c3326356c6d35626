package server

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
)

func (s Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.loggingMw, s.maxBytesMw)
	r.NotFoundHandler = s.loggingMw(s.notFoundHandler())

	r.HandleFunc("/healthz", s.healthz()).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	productAPI := api.PathPrefix("/products").Subrouter()
	productAPI.HandleFunc("", s.productList()).Methods(http.MethodGet)
	productAPI.HandleFunc("/best-discounts", s.productBestDiscounts()).Methods(http.MethodGet)
	productAPI.HandleFunc("/best-value", s.productBestValue()).Methods(http.MethodGet)
	productAPI.HandleFunc("/compare", s.productCompare()).Methods(http.MethodGet)
	productAPI.HandleFunc("/price-history/{productID}", s.productPriceHistory()).Methods(http.MethodGet)
	productAPI.HandleFunc("/optimize-basket", s.productOptimizeBasket()).Methods(http.MethodPost)
	productAPI.HandleFunc("/new-discounts", s.productNewDiscounts()).Methods(http.MethodGet)
	productAPI.PathPrefix("").Handler(s.notFoundHandler())

	discountAPI := api.PathPrefix("/discounts").Subrouter()
	discountAPI.HandleFunc("", s.discountList()).Methods(http.MethodGet)
	discountAPI.HandleFunc("/store/{store}", s.discountByStore()).Methods(http.MethodGet)
	discountAPI.HandleFunc("/active", s.discountActive()).Methods(http.MethodGet)
	discountAPI.HandleFunc("/active/{productID}", s.discountActiveForProduct()).Methods(http.MethodGet)
	discountAPI.HandleFunc("/new", s.discountNew()).Methods(http.MethodGet)
	discountAPI.HandleFunc("/category/{category}", s.discountByCategory()).Methods(http.MethodGet)
	discountAPI.HandleFunc("/product/{productID}", s.discountForProduct()).Methods(http.MethodGet)
	discountAPI.HandleFunc("/best", s.discountBest()).Methods(http.MethodGet)
	discountAPI.HandleFunc("/best-products", s.discountBestProducts()).Methods(http.MethodGet)
	discountAPI.HandleFunc("/history/{productID}", s.discountHistory()).Methods(http.MethodGet)
	discountAPI.PathPrefix("").Handler(s.notFoundHandler())

	alertAPI := api.PathPrefix("/alerts").Subrouter()
	alertAPI.HandleFunc("", s.alertCreate()).Methods(http.MethodPost)
	alertAPI.HandleFunc("", s.alertList()).Methods(http.MethodGet)
	alertAPI.HandleFunc("/check", s.alertCheck()).Methods(http.MethodPost)
	alertAPI.HandleFunc("/{id:[0-9]+}", s.alertGetOne()).Methods(http.MethodGet)
	alertAPI.HandleFunc("/{id:[0-9]+}", s.alertDelete()).Methods(http.MethodDelete)
	alertAPI.PathPrefix("").Handler(s.notFoundHandler())

	return r
}

func (s Server) healthz() http.HandlerFunc {
	type response struct {
		Status    string `json:"status"`
		Products  int    `json:"products"`
		Discounts int    `json:"discounts"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		s.writeJsonResponse(w, response{
			Status:    "ok",
			Products:  s.Query.Catalog.ProductCount(),
			Discounts: s.Query.Catalog.DiscountCount(),
		}, http.StatusOK)
	}
}
