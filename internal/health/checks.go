package health

import (
	"context"
	"fmt"
	"time"

	"github.com/anishsharma/fashion-storefront-service/internal/config"
	"github.com/anishsharma/fashion-storefront-service/pkg/commerce"
	"github.com/hellofresh/health-go/v5"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
)

type Endpoints struct {
	CommerceClient commerce.Client
}

func NewHealthHandler(cfg *config.Config, endpoints *Endpoints) (*health.Health, error) {

	h, err := health.New(
		health.WithComponent(health.Component{

			Name:    "fashion-storefront-service",
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(
			health.Config{
				Name:      "redis",
				Timeout:   2 * time.Second,
				SkipOnErr: false,
				Check: healthRedis.New(
					healthRedis.Config{
						DSN: cfg.RedisConnect.GetDSN(),
					},
				),
			},
			health.Config{
				Name:      "commerce-api",
				Timeout:   5 * time.Second,
				SkipOnErr: false,
				Check: func(ctx context.Context) error {
					if endpoints.CommerceClient == nil {
						return fmt.Errorf("commerce client is not initialized")
					}

					if err := endpoints.CommerceClient.Ping(ctx); err != nil {
						return fmt.Errorf("failed to reach commerce API: %w", err)
					}

					return nil
				},
			},
		),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
