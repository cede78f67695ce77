package play

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-optimizer-api/infrastructure/integrator/play/playclient"
	"github.com/vfg2006/ads-optimizer-api/internal/config"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
)

// PlayIntegrator implementa a fonte de avaliações do Google Play consumida
// pelo pipeline de otimização
type PlayIntegrator struct {
	cfg    *config.Config
	Client playclient.Client
}

func New(cfg *config.Config, client playclient.Client) *PlayIntegrator {
	return &PlayIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// GetRecentReviews retorna as avaliações mais recentes do aplicativo
func (s *PlayIntegrator) GetRecentReviews(packageName string) ([]domain.PlayReview, error) {
	response, err := s.Client.GetReviews(packageName, s.cfg.GooglePlay.MaxReviews)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"package_name": packageName,
			"error":        err.Error(),
		}).Error("play: failed to get reviews from API")
		return nil, err
	}

	reviews := make([]domain.PlayReview, 0, len(response.Reviews))
	for _, review := range response.Reviews {
		playReview := domain.PlayReview{ReviewID: review.ReviewID}

		for _, comment := range review.Comments {
			if comment.UserComment != nil && comment.UserComment.StarRating != nil {
				playReview.Rating = comment.UserComment.StarRating
				break
			}
		}

		reviews = append(reviews, playReview)
	}

	return reviews, nil
}
