package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/trabalhista/calculadora/internal/domain"
)

// Formatter renders a CalculationResult for one output medium. The core
// never formats currency; that responsibility lives here.
type Formatter interface {
	Name() string
	Format(result *domain.CalculationResult) ([]byte, error)
}

// GetFormatterByName returns the formatter registered under name, or nil.
func GetFormatterByName(name string) Formatter {
	switch strings.ToLower(name) {
	case "console":
		return ConsoleFormatter{}
	case "json":
		return JSONFormatter{}
	case "csv":
		return CSVFormatter{}
	}
	return nil
}

// FormatCurrency renders a decimal amount as a BRL string.
func FormatCurrency(amount decimal.Decimal) string {
	return "R$ " + amount.StringFixed(2)
}

// ConsoleFormatter renders a plain-text settlement statement.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(result *domain.CalculationResult) ([]byte, error) {
	var b strings.Builder

	b.WriteString("PROVENTOS\n")
	b.WriteString(strings.Repeat("=", 60) + "\n")
	for _, li := range result.Earnings {
		writeLine(&b, li)
	}

	b.WriteString("\nDESCONTOS\n")
	b.WriteString(strings.Repeat("=", 60) + "\n")
	for _, li := range result.Deductions {
		writeLine(&b, li)
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "%-40s %s\n", "Total de proventos:", FormatCurrency(result.Totals.Gross))
	fmt.Fprintf(&b, "%-40s %s\n", "Total de descontos:", FormatCurrency(result.Totals.Deductions))
	fmt.Fprintf(&b, "%-40s %s\n", "Valor líquido:", FormatCurrency(result.Totals.Net))

	if md := metadataLines(result.Metadata); len(md) > 0 {
		b.WriteString("\nINFORMATIVO\n")
		b.WriteString(strings.Repeat("-", 60) + "\n")
		for _, line := range md {
			b.WriteString(line + "\n")
		}
	}

	return []byte(b.String()), nil
}

func writeLine(b *strings.Builder, li domain.LineItem) {
	label := li.Label
	if li.Detail != "" {
		label = fmt.Sprintf("%s (%s)", li.Label, li.Detail)
	}
	fmt.Fprintf(b, "%-40s %s\n", label, FormatCurrency(li.Amount))
}

func metadataLines(md domain.Metadata) []string {
	var lines []string
	if md.EntitledVacationDays > 0 {
		lines = append(lines, fmt.Sprintf("Dias de férias adquiridos: %d", md.EntitledVacationDays))
	}
	if md.YearsOfService > 0 {
		lines = append(lines, fmt.Sprintf("Anos de serviço: %d", md.YearsOfService))
	}
	if md.NoticeDays > 0 {
		lines = append(lines, fmt.Sprintf("Aviso prévio: %d dia(s)", md.NoticeDays))
	}
	if md.ProjectedEndDate != nil {
		lines = append(lines, "Projeção do contrato: "+md.ProjectedEndDate.Format("2006-01-02"))
	}
	if md.FirstInstallment != nil && md.SecondInstallment != nil {
		lines = append(lines, "1ª parcela: "+FormatCurrency(*md.FirstInstallment))
		lines = append(lines, "2ª parcela: "+FormatCurrency(*md.SecondInstallment))
	}
	if md.FGTSMonthDeposit != nil {
		lines = append(lines, "Depósito FGTS do mês: "+FormatCurrency(*md.FGTSMonthDeposit))
	}
	if md.UnemploymentInsurance {
		lines = append(lines, "Elegível ao seguro-desemprego")
	}
	return lines
}

// JSONFormatter renders the result as indented JSON for the export layer.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(result *domain.CalculationResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}

// CSVFormatter renders one row per line item plus the totals rows.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(result *domain.CalculationResult) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"tipo", "descricao", "detalhe", "valor"}); err != nil {
		return nil, err
	}
	for _, li := range result.Earnings {
		if err := w.Write([]string{"provento", li.Label, li.Detail, li.Amount.StringFixed(2)}); err != nil {
			return nil, err
		}
	}
	for _, li := range result.Deductions {
		if err := w.Write([]string{"desconto", li.Label, li.Detail, li.Amount.StringFixed(2)}); err != nil {
			return nil, err
		}
	}
	totals := [][]string{
		{"total", "Total de proventos", "", result.Totals.Gross.StringFixed(2)},
		{"total", "Total de descontos", "", result.Totals.Deductions.StringFixed(2)},
		{"total", "Valor líquido", "", result.Totals.Net.StringFixed(2)},
	}
	for _, row := range totals {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
