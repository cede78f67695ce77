package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ads-optimizer-api/infrastructure/repository"
	"github.com/vfg2006/ads-optimizer-api/pkg/log"
)

const defaultRunsLimit = 10

// GetLatestRecommendations retorna a última execução de otimização
// persistida para a conta
func GetLatestRecommendations(runRepo repository.OptimizationRunRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("account_id", id).Info("recommendations: fetching latest optimization run")

		run, err := runRepo.GetLatestByAccountID(id)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Error("recommendations: failed to get latest run from database")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		if run == nil {
			logger.WithField("account_id", id).Info("recommendations: no run found for account")

			http.Error(w, "no optimization run found for account", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(run); err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Error("recommendations: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// ListRecommendations retorna as execuções mais recentes da conta,
// limitadas pelo parâmetro limit
func ListRecommendations(runRepo repository.OptimizationRunRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		limit := defaultRunsLimit
		if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
			parsed, err := strconv.Atoi(limitParam)
			if err != nil || parsed <= 0 {
				logger.WithFields(log.Fields{
					"account_id": id,
					"limit":      limitParam,
				}).Warn("recommendations: invalid limit parameter")

				http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
				return
			}
			limit = parsed
		}

		logger.WithFields(log.Fields{
			"account_id": id,
			"limit":      limit,
		}).Info("recommendations: listing optimization runs")

		runs, err := runRepo.ListByAccountID(id, limit)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Error("recommendations: failed to list runs from database")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(runs); err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Error("recommendations: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
