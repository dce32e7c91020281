package services

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/UdayPS-4o/tradewithus/internal/models"
	"github.com/UdayPS-4o/tradewithus/internal/repository"
)

const feedLookupConcurrency = 8

// UnknownSellerName is shown for products whose seller profile is missing.
const UnknownSellerName = "Unknown Seller"

// FeedService assembles the home feed: every product with its seller profile
// attached. Seller lookups run concurrently; a failed or dangling lookup
// degrades that one item to a placeholder seller instead of failing the feed.
type FeedService struct {
	products repository.ProductRepository
	profiles repository.ProfileRepository
	log      *zap.Logger
}

func NewFeedService(products repository.ProductRepository, profiles repository.ProfileRepository, logger *zap.Logger) *FeedService {
	return &FeedService{products: products, profiles: profiles, log: logger}
}

func (s *FeedService) GetHomeFeed(ctx context.Context) ([]models.FeedItem, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]models.FeedItem, len(products))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(feedLookupConcurrency)

	for i, p := range products {
		i, p := i, p
		g.Go(func() error {
			seller, err := s.profiles.FindByProfileID(gctx, p.SellerID)
			if err != nil {
				// Dangling sellerId or a transient lookup failure only
				// degrades this item, never the whole feed.
				s.log.Warn("seller lookup failed, using placeholder",
					zap.String("productId", p.ProductID),
					zap.String("sellerId", p.SellerID),
					zap.Error(err))
				seller = &models.Profile{
					ProfileID:    p.SellerID,
					BusinessName: UnknownSellerName,
				}
			}
			items[i] = models.FeedItem{Product: p, Seller: seller}
			return nil
		})
	}

	// Lookup errors are absorbed above, so Wait only synchronizes.
	_ = g.Wait()
	return items, nil
}
