package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"mentortools-mcp/internal/contracts"
	"mentortools-mcp/internal/providers"
)

func (r *Registry) orderTools() []ToolSpec {
	return []ToolSpec{
		bind(ToolSpec{
			Name:  Prefix + "create_order",
			Title: "Create Order (IPN Payment)",
			Description: `Create an order from an external payment and unlock courses for the buyer.
The buyer account is created when the email is unknown.

Args:
  - marketplace_buyer (object, required): {email (required), first_name, last_name, phone_number,
    address {street_and_number, city, postal_code, country}}
  - course_ids (array of numbers, required): Courses to unlock (at least one)
  - id (string, optional): External order ID (prefixed with the portal ID)
  - transaction (object, optional): {amount (positive decimal, required), id (string, optional)}

Returns: External order and transaction IDs`,
			OpenWorld: true,
		}, contracts.IpnOrderPayment, func(ctx context.Context, in contracts.IpnOrderPaymentInput) (string, error) {
			raw, err := r.lms.Execute(ctx, providers.Request{Method: http.MethodPost, Endpoint: "/orders/v1/ipn/payment", Body: in})
			if err != nil {
				return "", err
			}
			return orderText(raw), nil
		}),
	}
}

// orderText never fails: by the time it runs the order exists remotely.
func orderText(raw json.RawMessage) string {
	ids := pick(raw, "external_order_id", "external_transaction_id")
	if len(ids) > 0 {
		return fmt.Sprintf("Order created successfully!\n\nExternal Order ID: %v\nExternal Transaction ID: %v",
			orderID(ids["external_order_id"]), orderID(ids["external_transaction_id"]))
	}
	if details, err := renderJSON(raw); err == nil {
		return "Order created successfully!\n\n" + details
	}
	return "Order created successfully!\n\n" + scalar(raw)
}

func orderID(v any) any {
	if v == nil {
		return "-"
	}
	return v
}
