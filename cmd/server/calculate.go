package main

import (
	"net/http"

	"github.com/Simplici0/landedcost/internal/catalog"
	"github.com/Simplici0/landedcost/internal/pricing"
	"github.com/Simplici0/landedcost/internal/scenario"
)

func (s *server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var in pricing.PricingInput
	if err := decodeJSON(w, r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}

	breakdown, err := pricing.CalculateChecked(in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.recordHistory(r, in, breakdown)
	writeJSON(w, http.StatusOK, breakdown)
}

// recordHistory is best-effort: a failed write never fails the calculation.
func (s *server) recordHistory(r *http.Request, in pricing.PricingInput, breakdown pricing.CostBreakdown) {
	ctx := r.Context()

	settings, err := s.catalog.Load(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("load catalog for history entry")
		settings = catalog.Settings{}
	}

	var supplierName, customerName string
	if sup, ok := settings.Supplier(in.SupplierID); ok {
		supplierName = sup.Name
	}
	if c, ok := settings.Customer(in.CustomerID); ok {
		customerName = c.Name
	}

	entry := scenario.NewHistoryEntry(supplierName, customerName, in, breakdown)
	if err := s.scenarios.AddHistory(ctx, entry, s.historyLimit); err != nil {
		s.log.Warn().Err(err).Msg("record calculation history")
	}
}

type marginRequest struct {
	LandedCostLb float64 `json:"landedCostLb"`
	Price        float64 `json:"price"`
}

func (s *server) handleMargin(w http.ResponseWriter, r *http.Request) {
	var req marginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := pricing.CheckedMargin(req.LandedCostLb, req.Price)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *server) handleDefaultInput(w http.ResponseWriter, r *http.Request) {
	settings, err := s.catalog.Load(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, settings.DefaultInput())
}

// handleGetCurrentInput returns the saved working input, or the catalog
// default when nothing has been saved.
func (s *server) handleGetCurrentInput(w http.ResponseWriter, r *http.Request) {
	in, ok, err := s.scenarios.CurrentInput(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if ok {
		writeJSON(w, http.StatusOK, in)
		return
	}
	s.handleDefaultInput(w, r)
}

// handlePutCurrentInput stores the form state as-is; a half-filled input is
// valid working state and is only checked when calculated.
func (s *server) handlePutCurrentInput(w http.ResponseWriter, r *http.Request) {
	var in pricing.PricingInput
	if err := decodeJSON(w, r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.scenarios.SaveCurrentInput(r.Context(), in); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, in)
}

// applyRequest carries the picker selections to resolve into an input. Only
// the selections that are present are applied, in field order.
type applyRequest struct {
	Input           pricing.PricingInput   `json:"input"`
	SupplierID      *string                `json:"supplierId"`
	CustomerID      *string                `json:"customerId"`
	DestinationPort *string                `json:"destinationPort"`
	ContainerSize   *pricing.ContainerSize `json:"containerSize"`
	Thickness       *string                `json:"thickness"`
}

func (s *server) handleApplyInput(w http.ResponseWriter, r *http.Request) {
	var req applyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	settings, err := s.catalog.Load(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	in := req.Input
	if req.SupplierID != nil {
		in = settings.ApplySupplier(in, *req.SupplierID)
	}
	if req.CustomerID != nil {
		in = settings.ApplyCustomer(in, *req.CustomerID)
	}
	if req.DestinationPort != nil {
		in = settings.ApplyDestinationPort(in, *req.DestinationPort)
	}
	if req.ContainerSize != nil {
		switch *req.ContainerSize {
		case pricing.Container20ft, pricing.Container40ft:
		default:
			s.writeError(w, r, badRequest("unknown container size %q", *req.ContainerSize))
			return
		}
		in = settings.ApplyContainerSize(in, *req.ContainerSize)
	}
	if req.Thickness != nil {
		var ok bool
		if in, ok = settings.ApplyThickness(in, *req.Thickness); !ok {
			s.writeError(w, r, badRequest("unknown thickness %q", *req.Thickness))
			return
		}
	}

	writeJSON(w, http.StatusOK, in)
}
