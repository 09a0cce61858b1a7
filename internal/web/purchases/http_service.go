package purchases

import (
	"context"
	"time"

	"devil2devil.org/economy-web/internal/web/apiclient"
)

// HTTPService implements Service against the economy REST backend.
type HTTPService struct {
	client *apiclient.Client
}

// NewHTTPService constructs a Service backed by the backend purchases endpoint.
func NewHTTPService(client *apiclient.Client) *HTTPService {
	return &HTTPService{client: client}
}

// MyPurchases fetches the visitor's purchase history, newest first.
func (s *HTTPService) MyPurchases(ctx context.Context, token string) ([]Purchase, error) {
	var payload struct {
		Purchases []Purchase `json:"purchases"`
	}
	if err := s.client.GetJSON(ctx, "/api/my-purchases", token, &payload); err != nil {
		return nil, err
	}
	if payload.Purchases == nil {
		payload.Purchases = []Purchase{}
	}
	return payload.Purchases, nil
}

// StaticService returns fixed purchase history for tests and local work.
type StaticService struct {
	Purchases []Purchase
}

// NewStaticService returns a StaticService with representative history rows.
func NewStaticService() *StaticService {
	now := time.Now()
	return &StaticService{Purchases: []Purchase{
		{
			ID:          10,
			ProductName: "Sparky Plush",
			ProductType: "physical",
			PointsSpent: 750,
			Timestamp:   now.Add(-48 * time.Hour),
			Status:      "completed",
		},
		{
			ID:          11,
			ProductName: "Pitchfork Skin",
			ProductType: "minecraft_skin",
			PointsSpent: 400,
			Timestamp:   now.Add(-2 * time.Hour),
			Status:      "completed",
			DownloadURL: "/static/skins/pitchfork.png",
		},
	}}
}

// MyPurchases returns the configured history.
func (s *StaticService) MyPurchases(ctx context.Context, token string) ([]Purchase, error) {
	return append([]Purchase(nil), s.Purchases...), nil
}
