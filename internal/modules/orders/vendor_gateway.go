package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"vendee/internal/models"
	"vendee/pkg/geo"
)

// GatewayInterface asks a moving vendor whether it will take a delivery
// request. The answer may come from a remote vendor-agent service or from
// the built-in simulation.
type GatewayInterface interface {
	RequestDelivery(ctx context.Context, vendor *models.Vendor, req models.MovingVendorRequest) (*models.MovingVendorResponse, error)
}

// httpGateway forwards the request to a remote vendor-agent endpoint.
// Every response is untrusted input: Success is validated before any other
// field is read, and a refusal is surfaced to the caller rather than
// treated as a transport error.
type httpGateway struct {
	client  *http.Client
	baseURL string
}

func NewHTTPGateway(baseURL string) GatewayInterface {
	return &httpGateway{
		client:  &http.Client{Timeout: 5 * time.Second},
		baseURL: baseURL,
	}
}

func (g *httpGateway) RequestDelivery(ctx context.Context, vendor *models.Vendor, req models.MovingVendorRequest) (*models.MovingVendorResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("gateway.RequestDelivery: encode: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/vendor-agent/delivery-request", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("gateway.RequestDelivery: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gateway.RequestDelivery: %w: %v", models.ErrNetwork, err)
	}
	defer resp.Body.Close()

	var out models.MovingVendorResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("gateway.RequestDelivery: %w: %v", models.ErrBadPayload, err)
	}

	if !out.Success {
		// A failed agent call carries only error and suggestions; do not
		// read the delivery fields.
		return &models.MovingVendorResponse{
			Success:     false,
			Error:       out.Error,
			Suggestions: out.Suggestions,
		}, nil
	}
	return &out, nil
}

// simulatedGateway answers locally: a coin flip decides acceptance and the
// ETA is a rough three minutes per kilometer.
type simulatedGateway struct {
	accept func() bool
}

func NewSimulatedGateway() GatewayInterface {
	return &simulatedGateway{accept: func() bool { return rand.Intn(2) == 0 }}
}

func (g *simulatedGateway) RequestDelivery(ctx context.Context, vendor *models.Vendor, req models.MovingVendorRequest) (*models.MovingVendorResponse, error) {
	distance := geo.Round2(geo.DistanceKm(
		req.Location.Latitude, req.Location.Longitude,
		vendor.Location.Latitude, vendor.Location.Longitude,
	))
	etaMinutes := int(distance * 3)

	if !g.accept() {
		return &models.MovingVendorResponse{
			Success:        true,
			VendorAccepted: false,
			Message:        fmt.Sprintf("%s is currently busy and cannot accept your request. Would you like me to find another moving vendor?", vendor.Name),
		}, nil
	}

	return &models.MovingVendorResponse{
		Success:               true,
		VendorAccepted:        true,
		VendorName:            vendor.Name,
		Phone:                 vendor.Phone,
		EstimatedDeliveryTime: fmt.Sprintf("%d minutes", etaMinutes),
		DistanceKm:            distance,
		Message:               fmt.Sprintf("Great! %s has accepted your delivery request. They will arrive in approximately %d minutes.", vendor.Name, etaMinutes),
	}, nil
}
