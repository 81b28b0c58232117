package output

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trabalhista/calculadora/internal/domain"
)

func sampleResult() *domain.CalculationResult {
	result := &domain.CalculationResult{}
	result.AddEarning("Salário bruto", decimal.NewFromInt(3000), "")
	result.AddEarning("Salário-família", decimal.NewFromInt(130), "2 quota(s)")
	result.AddDeduction("INSS", decimal.RequireFromString("253.41"), "")
	result.AddDeduction("IRRF", decimal.RequireFromString("23.83"), "")
	result.Finalize()
	return result
}

func TestGetFormatterByName(t *testing.T) {
	assert.Equal(t, "console", GetFormatterByName("console").Name())
	assert.Equal(t, "json", GetFormatterByName("JSON").Name())
	assert.Equal(t, "csv", GetFormatterByName("csv").Name())
	assert.Nil(t, GetFormatterByName("pdf"))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "R$ 2722.76", FormatCurrency(decimal.RequireFromString("2722.76")))
	assert.Equal(t, "R$ -10.00", FormatCurrency(decimal.NewFromInt(-10)))
}

func TestConsoleFormatter(t *testing.T) {
	data, err := (ConsoleFormatter{}).Format(sampleResult())
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "PROVENTOS")
	assert.Contains(t, text, "DESCONTOS")
	assert.Contains(t, text, "Salário bruto")
	assert.Contains(t, text, "Salário-família (2 quota(s))")
	assert.Contains(t, text, "R$ 253.41")
	assert.Contains(t, text, "Valor líquido:")
	assert.Contains(t, text, "R$ 2852.76")
}

func TestConsoleFormatterMetadata(t *testing.T) {
	result := sampleResult()
	deposit := decimal.RequireFromString("365.42")
	result.Metadata.NoticeDays = 48
	result.Metadata.FGTSMonthDeposit = &deposit
	result.Metadata.UnemploymentInsurance = true

	data, err := (ConsoleFormatter{}).Format(result)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "INFORMATIVO")
	assert.Contains(t, text, "Aviso prévio: 48 dia(s)")
	assert.Contains(t, text, "Depósito FGTS do mês: R$ 365.42")
	assert.Contains(t, text, "seguro-desemprego")
}

func TestJSONFormatterRoundTrip(t *testing.T) {
	data, err := (JSONFormatter{}).Format(sampleResult())
	require.NoError(t, err)

	var decoded domain.CalculationResult
	require.NoError(t, json.Unmarshal(data, &decoded))

	require.Len(t, decoded.Earnings, 2)
	assert.Equal(t, "Salário bruto", decoded.Earnings[0].Label)
	assert.True(t, decoded.Totals.Net.Equal(decimal.RequireFromString("2852.76")))
}

func TestCSVFormatter(t *testing.T) {
	data, err := (CSVFormatter{}).Format(sampleResult())
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)

	// Header + 2 earnings + 2 deductions + 3 totals.
	require.Len(t, rows, 8)
	assert.Equal(t, []string{"tipo", "descricao", "detalhe", "valor"}, rows[0])
	assert.Equal(t, "provento", rows[1][0])
	assert.Equal(t, "desconto", rows[3][0])

	last := rows[len(rows)-1]
	assert.Equal(t, "Valor líquido", last[1])
	assert.Equal(t, "2852.76", last[3])

	for _, row := range rows {
		assert.False(t, strings.Contains(row[3], "R$"),
			"CSV carries raw amounts, not formatted currency")
	}
}
