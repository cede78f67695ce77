package gadsclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	gadsdomain "github.com/vfg2006/ads-optimizer-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-optimizer-api/internal/config"
)

const oauthTokenURL = "https://oauth2.googleapis.com/token"

// TokenManager gerencia o access token OAuth da API do Google Ads a partir
// do refresh token de longa duração configurado
type TokenManager struct {
	cfg               *config.Config
	TokenRefreshMutex sync.Mutex

	accessToken    string
	tokenExpiresAt time.Time
}

// NewTokenManager cria uma nova instância do gerenciador de tokens
func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		cfg:               cfg,
		TokenRefreshMutex: sync.Mutex{},
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// AccessToken retorna o access token corrente
func (tm *TokenManager) AccessToken() string {
	tm.TokenRefreshMutex.Lock()
	defer tm.TokenRefreshMutex.Unlock()

	return tm.accessToken
}

// RefreshToken troca o refresh token por um novo access token
func (tm *TokenManager) RefreshToken() error {
	tm.TokenRefreshMutex.Lock()
	defer tm.TokenRefreshMutex.Unlock()

	return tm.refreshTokenInternal()
}

func (tm *TokenManager) refreshTokenInternal() error {
	logrus.Info("Renovando access token do Google Ads...")

	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("client_id", tm.cfg.GoogleAds.ClientID)
	form.Set("client_secret", tm.cfg.GoogleAds.ClientSecret)
	form.Set("refresh_token", tm.cfg.GoogleAds.RefreshToken)

	resp, err := http.PostForm(oauthTokenURL, form)
	if err != nil {
		return fmt.Errorf("erro ao chamar o endpoint de token: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("erro ao ler resposta do endpoint de token: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if strings.Contains(string(body), "invalid_grant") {
			// Refresh token revogado ou expirado: requer reautorização manual
			return fmt.Errorf("refresh token inválido, é necessário reautorizar o aplicativo: %s", string(body))
		}
		return fmt.Errorf("erro na resposta do endpoint de token. Status: %d, Corpo: %s", resp.StatusCode, string(body))
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return fmt.Errorf("erro ao decodificar resposta do endpoint de token: %w", err)
	}

	tm.accessToken = token.AccessToken
	// Renova um pouco antes da expiração real
	tm.tokenExpiresAt = time.Now().Add(time.Duration(token.ExpiresIn-60) * time.Second)

	logrus.Infof("Access token do Google Ads renovado com sucesso. Expira em: %s",
		tm.tokenExpiresAt.Format(time.RFC3339))

	return nil
}

// EnsureValidToken verifica se o token atual é válido e o renova se necessário
func (tm *TokenManager) EnsureValidToken() error {
	tm.TokenRefreshMutex.Lock()
	defer tm.TokenRefreshMutex.Unlock()

	if tm.accessToken == "" || time.Now().After(tm.tokenExpiresAt) {
		return tm.refreshTokenInternal()
	}

	return nil
}

// ParseErrorResponse tenta parsear um erro da API do Google Ads
func ParseErrorResponse(body []byte) (*gadsdomain.ErrorResponse, error) {
	var errorResp gadsdomain.ErrorResponse
	err := json.Unmarshal(body, &errorResp)
	if err != nil {
		return nil, err
	}
	return &errorResp, nil
}

// HandleResponse manipula a resposta HTTP e verifica erros de token expirado
func (tm *TokenManager) HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	errorResp, parseErr := ParseErrorResponse(body)
	if parseErr == nil && errorResp.IsTokenExpired() {
		logrus.Warnf("Token expirado detectado pela API do Google Ads. Status: %s", errorResp.Error.Status)

		if refreshErr := tm.RefreshToken(); refreshErr != nil {
			return nil, fmt.Errorf("erro ao renovar token expirado: %w", refreshErr)
		}

		return nil, errTokenRefreshed
	}

	return nil, fmt.Errorf("erro na resposta da API. Status: %d, Corpo: %s", resp.StatusCode, string(body))
}
