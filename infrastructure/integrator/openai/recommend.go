package openai

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
	"github.com/vfg2006/ads-optimizer-api/pkg/utils"
)

// GenerateRecommendations envia o payload ao modelo e retorna as linhas
// candidatas. Tenta com backoff linear; quem decide degradar para vazio em
// caso de falha definitiva é o chamador.
func (s *OpenAIIntegrator) GenerateRecommendations(payload *domain.Payload) (*domain.GeneratorResponse, error) {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar payload: %w", err)
	}

	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.Debug(utils.PrettyJson(payloadJSON))
	}

	request := chatRequest{
		Model:       s.cfg.OpenAI.Model,
		Temperature: s.cfg.OpenAI.Temperature,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: string(payloadJSON)},
		},
		Functions: []function{{
			Name:        recommendFunctionName,
			Description: "Registra as recomendações de otimização geradas",
			Parameters:  recommendFunctionSchema,
		}},
		FunctionCall: map[string]string{"name": recommendFunctionName},
	}

	maxRetries := s.cfg.OpenAI.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 1
	}

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		response, err := s.createChatCompletion(request)
		if err == nil {
			generatorResponse, parseErr := parseGeneratorResponse(response)
			if parseErr == nil {
				return generatorResponse, nil
			}
			err = parseErr
		}

		lastErr = err
		logrus.WithFields(logrus.Fields{
			"attempt": attempt,
			"error":   err.Error(),
		}).Warn("Erro na chamada ao gerador de recomendações")

		if attempt < maxRetries {
			time.Sleep(time.Duration(attempt) * 2 * time.Second)
		}
	}

	return nil, lastErr
}

// parseGeneratorResponse extrai a resposta estruturada dos argumentos da
// function call, caindo para o conteúdo da mensagem quando o modelo ignora
// a função e responde com JSON puro
func parseGeneratorResponse(response *chatResponse) (*domain.GeneratorResponse, error) {
	if len(response.Choices) == 0 {
		return nil, errors.New("resposta do modelo sem choices")
	}

	message := response.Choices[0].Message

	raw := ""
	if message.FunctionCall != nil {
		raw = message.FunctionCall.Arguments
	} else if message.Content != "" {
		raw = extractJSONObject(message.Content)
	}

	if raw == "" {
		return nil, errors.New("resposta do modelo sem function call nem conteúdo JSON")
	}

	var generatorResponse domain.GeneratorResponse
	if err := json.Unmarshal([]byte(raw), &generatorResponse); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta do modelo: %w", err)
	}

	if generatorResponse.GoogleAds == nil {
		generatorResponse.GoogleAds = []string{}
	}
	if generatorResponse.GooglePlay == nil {
		generatorResponse.GooglePlay = []string{}
	}

	return &generatorResponse, nil
}

// extractJSONObject recorta o primeiro objeto JSON do texto (o modelo às
// vezes envolve a resposta em cercas de código)
func extractJSONObject(content string) string {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return ""
	}
	return content[start : end+1]
}
