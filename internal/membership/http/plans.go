package http

import (
	"net/http"

	"github.com/lubana/membership/internal/membership/service"
	"github.com/lubana/membership/pkg/httpx"
	"github.com/lubana/membership/pkg/membersdk"
)

// PlansHandler lists the plan catalogue with quoted prices.
//
//	@Summary		List plans
//	@Description	Every membership type and duration with its discounted price.
//	@Tags			Plans
//	@Produce		json
//	@Success		200	{object}	membersdk.ListPlansResponse
//	@Router			/v1/plans [get].
func PlansHandler() http.HandlerFunc {
	catalogue := service.Catalogue()
	resp := membersdk.ListPlansResponse{Plans: make([]membersdk.PlanResponse, len(catalogue))}
	for i, p := range catalogue {
		resp.Plans[i] = toPlan(p)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, resp)
	}
}
