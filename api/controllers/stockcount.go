package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stocktrack/stockcount-backend/api/responses"
	"github.com/stocktrack/stockcount-backend/api/validators"
	stockcountsvc "github.com/stocktrack/stockcount-backend/internal/stockcount"
	pkgerrors "github.com/stocktrack/stockcount-backend/pkg/errors"
	"github.com/stocktrack/stockcount-backend/pkg/logger"
)

// Query parameter names kept for wire compatibility with existing readers.
const (
	queryLocationID   = "LocationId"
	queryCategoryCode = "CategoryCode"
)

// GetStockCount returns one in-progress count by id.
func GetStockCount(svc stockcountsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "stock count service unavailable"))
			return
		}

		id, err := validators.ParsePathInt(chi.URLParam(r, "stockCountId"), "stockCountId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		count, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, count)
	}
}

// FindStockCounts lists in-progress counts, optionally narrowed by location
// and category. An empty result is a 200 with an empty array.
func FindStockCounts(svc stockcountsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "stock count service unavailable"))
			return
		}

		locationID, err := validators.ParseOptionalQueryInt(r, queryLocationID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		categoryCode := validators.ParseOptionalQueryString(r, queryCategoryCode)

		counts, err := svc.Find(r.Context(), stockcountsvc.Filter{
			LocationID:   locationID,
			CategoryCode: categoryCode,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, counts)
	}
}

type startStockCountRequest struct {
	// pointer so a supplied location_id of 0 still reaches the reference
	// lookup instead of failing the presence check
	LocationID          *int   `json:"location_id" validate:"required"`
	ProductCategoryCode string `json:"product_category_code" validate:"required"`
}

// StartStockCount opens a new count against seeded reference data and
// responds 202 with the assigned id.
func StartStockCount(svc stockcountsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "stock count service unavailable"))
			return
		}

		var payload startStockCountRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := svc.Start(r.Context(), stockcountsvc.StartInput{
			LocationID:   *payload.LocationID,
			CategoryCode: payload.ProductCategoryCode,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusAccepted, id)
	}
}

type reportStockTakeRequest struct {
	LocationID *int             `json:"location_id,omitempty"`
	WorkArea   string           `json:"work_area"`
	Tags       []tagReadRequest `json:"tags" validate:"omitempty,dive"`
}

type tagReadRequest struct {
	Hex string `json:"hex" validate:"required,hexadecimal"`
}

// ReportStockTake appends the submitted tag reads to the first matching
// in-progress count. The 202 payload is always the literal 0; readers in the
// field depend on that shape, so it stays.
func ReportStockTake(svc stockcountsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "stock count service unavailable"))
			return
		}

		var payload reportStockTakeRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		tags := make([]stockcountsvc.TagRead, 0, len(payload.Tags))
		for _, tag := range payload.Tags {
			tags = append(tags, stockcountsvc.TagRead{Hex: tag.Hex})
		}

		if _, err := svc.Report(r.Context(), stockcountsvc.StockTake{
			LocationID: payload.LocationID,
			WorkArea:   payload.WorkArea,
			Tags:       tags,
		}); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusAccepted, 0)
	}
}
