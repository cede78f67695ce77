package gadsclient

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	gadsdomain "github.com/vfg2006/ads-optimizer-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-optimizer-api/internal/config"
)

// errTokenRefreshed sinaliza que o access token expirou e foi renovado; a
// requisição deve ser repetida uma vez
var errTokenRefreshed = errors.New("token expirado e renovado, por favor tente novamente")

type Client interface {
	GetCampaignMetrics(customerID, startDate, endDate string) ([]gadsdomain.SearchRow, error)
	GetAssetMetrics(customerID, startDate, endDate string, assetIDs []int64) ([]gadsdomain.SearchRow, error)
	GetActiveAssets(customerID string) ([]gadsdomain.SearchRow, error)
	GetCustomerMetadata(customerID string) (*gadsdomain.Customer, error)
	EnsureValidToken() error
	HandleResponse(resp *http.Response) ([]byte, error)
}

type GoogleAdsClient struct {
	Cfg          *config.Config
	TokenManager *TokenManager
}

func NewClient(cfg *config.Config, tokenManager *TokenManager) Client {
	client := &GoogleAdsClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
	}
	return client
}

// EnsureValidToken verifica se o token atual é válido e tenta renová-lo se necessário
func (c *GoogleAdsClient) EnsureValidToken() error {
	return c.TokenManager.EnsureValidToken()
}

// HandleResponse manipula a resposta HTTP e verifica erros de token expirado
func (c *GoogleAdsClient) HandleResponse(resp *http.Response) ([]byte, error) {
	return c.TokenManager.HandleResponse(resp)
}

type searchRequest struct {
	Query     string `json:"query"`
	PageToken string `json:"pageToken,omitempty"`
}

// search executa uma consulta GAQL no endpoint googleAds:search acumulando
// todas as páginas do resultado
func (c *GoogleAdsClient) search(customerID, query string) ([]gadsdomain.SearchRow, error) {
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	url := fmt.Sprintf("%s/customers/%s/googleAds:search", c.Cfg.GoogleAds.URL, customerID)

	rows := make([]gadsdomain.SearchRow, 0)
	pageToken := ""

	for {
		response, err := c.searchPage(url, query, pageToken)
		if err != nil {
			// Se o token foi renovado durante a chamada, tentar a página novamente
			if errors.Is(err, errTokenRefreshed) {
				response, err = c.searchPage(url, query, pageToken)
			}
			if err != nil {
				return nil, err
			}
		}

		rows = append(rows, response.Results...)

		if response.NextPageToken == "" {
			break
		}
		pageToken = response.NextPageToken
	}

	return rows, nil
}

func (c *GoogleAdsClient) searchPage(url, query, pageToken string) (*gadsdomain.SearchResponse, error) {
	payload, err := json.Marshal(searchRequest{Query: query, PageToken: pageToken})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", url, bytes.NewReader(payload))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.TokenManager.AccessToken())
	req.Header.Set("developer-token", c.Cfg.GoogleAds.DeveloperToken)
	if c.Cfg.GoogleAds.LoginCustomer != "" {
		req.Header.Set("login-customer-id", c.Cfg.GoogleAds.LoginCustomer)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := c.HandleResponse(resp)
	if err != nil {
		return nil, err
	}

	var response gadsdomain.SearchResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return &response, nil
}
