package playclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-optimizer-api/internal/config"
)

type Client interface {
	GetReviews(packageName string, maxResults int) (*ReviewsResponse, error)
}

type PlayClient struct {
	Cfg *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &PlayClient{Cfg: cfg}
}

// ReviewsResponse é a resposta do endpoint de reviews do androidpublisher
type ReviewsResponse struct {
	Reviews []Review `json:"reviews"`
}

type Review struct {
	ReviewID string    `json:"reviewId"`
	Comments []Comment `json:"comments"`
}

type Comment struct {
	UserComment *UserComment `json:"userComment"`
}

type UserComment struct {
	Text       string `json:"text"`
	StarRating *int   `json:"starRating"`
}

// GetReviews busca as avaliações mais recentes do aplicativo
func (c *PlayClient) GetReviews(packageName string, maxResults int) (*ReviewsResponse, error) {
	url := fmt.Sprintf("%s/applications/%s/reviews?maxResults=%d", c.Cfg.GooglePlay.BaseURL, packageName, maxResults)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+c.Cfg.GooglePlay.AccessToken)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("erro na resposta da API. Status: %d, Corpo: %s", resp.StatusCode, string(body))
	}

	var response ReviewsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return &response, nil
}
