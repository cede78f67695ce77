package utils

import "math"

const microsPerUnit = 1_000_000

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// SafeDivide divide numerador por denominador retornando nil quando o
// denominador é zero (razão indefinida, nunca 0 ou Inf)
func SafeDivide(numerator, denominator float64) *float64 {
	if denominator == 0 {
		return nil
	}

	result := numerator / denominator

	return &result
}

// MicrosToUnit converte um valor monetário em micros para a unidade da moeda
func MicrosToUnit(micros int64) float64 {
	return float64(micros) / microsPerUnit
}
