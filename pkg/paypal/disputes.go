package paypal

import (
	"context"

	"github.com/harun/paypal-agent-toolkit/pkg/payload"
)

const disputesPath = "/v1/customer/disputes"

// DisputeStates are the filter values accepted by list_disputes.
var DisputeStates = []string{
	"REQUIRED_ACTION",
	"REQUIRED_OTHER_PARTY_ACTION",
	"UNDER_PAYPAL_REVIEW",
	"RESOLVED",
	"OPEN_INQUIRIES",
	"APPEALABLE",
}

type ListDisputesParams struct {
	DisputeState string `json:"disputeState,omitempty"`
	PageSize     int    `json:"pageSize"`
}

type DisputeIDParams struct {
	DisputeID string `json:"disputeId"`
}

type AcceptClaimParams struct {
	DisputeID string `json:"disputeId"`
	Note      string `json:"note"`
}

// ListDisputes lists disputes, optionally filtered by state.
func (c *Client) ListDisputes(ctx context.Context, p ListDisputesParams) (interface{}, error) {
	var state interface{}
	if p.DisputeState != "" {
		state = p.DisputeState
	}

	query := payload.Query(
		payload.P("dispute_state", state),
		payload.P("page_size", p.PageSize),
	)
	return c.get(ctx, withQuery(disputesPath, query))
}

// GetDispute returns one dispute.
func (c *Client) GetDispute(ctx context.Context, p DisputeIDParams) (interface{}, error) {
	return c.get(ctx, disputesPath+"/"+escape(p.DisputeID))
}

// AcceptDisputeClaim accepts liability for a dispute.
func (c *Client) AcceptDisputeClaim(ctx context.Context, p AcceptClaimParams) (interface{}, error) {
	body := map[string]string{"note": p.Note}
	return c.post(ctx, disputesPath+"/"+escape(p.DisputeID)+"/accept-claim", body)
}
